package bitly

import "strconv"

// Unit is the time unit for metrics queries.
type Unit string

const (
	UnitMinute Unit = "minute"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
	UnitWeek   Unit = "week"
	UnitMonth  Unit = "month"
)

// Switch is a tri-state filter.
type Switch string

const (
	SwitchOn   Switch = "on"
	SwitchOff  Switch = "off"
	SwitchBoth Switch = "both"
)

// Sort orders a group's bitlinks.
type Sort string

const SortClicks Sort = "clicks"

// UnitQuery selects the time window of a metrics request. Zero fields take
// the API defaults: unit day, units -1 (all time), size 50.
type UnitQuery struct {
	Unit Unit
	// Units is the number of units to report; -1 means all.
	Units int
	// UnitReference is an ISO-8601 timestamp the window ends at.
	UnitReference string
	Size          int
}

// Params returns the query as an ordered key-value list.
func (q UnitQuery) Params() []string {
	unit := q.Unit
	if unit == "" {
		unit = UnitDay
	}
	units := q.Units
	if units == 0 {
		units = -1
	}
	size := q.Size
	if size == 0 {
		size = 50
	}

	params := []string{"unit", string(unit), "units", strconv.Itoa(units)}
	if q.UnitReference != "" {
		params = append(params, "unit_reference", q.UnitReference)
	}
	return append(params, "size", strconv.Itoa(size))
}

// BitlinkQuery filters the bitlinks of a group.
type BitlinkQuery struct {
	Size    int
	Page    int
	Keyword string
	Query   string
	// CreatedBefore, CreatedAfter and ModifiedAfter are unix timestamps.
	CreatedBefore   int64
	CreatedAfter    int64
	ModifiedAfter   int64
	Archived        Switch
	Deeplinks       Switch
	DomainDeeplinks Switch
	CustomBitlink   Switch
	CampaignGUID    string
	ChannelGUID     string
	Tags            []string
	EncodingLogin   []string
}

// Params returns the query as an ordered key-value list; tags and
// encoding_login repeat once per value.
func (q BitlinkQuery) Params() []string {
	size := q.Size
	if size == 0 {
		size = 50
	}
	page := q.Page
	if page == 0 {
		page = 1
	}

	params := []string{"size", strconv.Itoa(size), "page", strconv.Itoa(page)}
	params = appendIf(params, "keyword", q.Keyword)
	params = appendIf(params, "query", q.Query)
	params = appendTime(params, "created_before", q.CreatedBefore)
	params = appendTime(params, "created_after", q.CreatedAfter)
	params = appendTime(params, "modified_after", q.ModifiedAfter)
	params = append(params,
		"archived", string(orSwitch(q.Archived, SwitchOff)),
		"deeplinks", string(orSwitch(q.Deeplinks, SwitchBoth)),
		"domain_deeplinks", string(orSwitch(q.DomainDeeplinks, SwitchBoth)),
		"custom_bitlink", string(orSwitch(q.CustomBitlink, SwitchBoth)),
	)
	params = appendIf(params, "campaign_guid", q.CampaignGUID)
	params = appendIf(params, "channel_guid", q.ChannelGUID)
	for _, tag := range q.Tags {
		params = append(params, "tags", tag)
	}
	for _, login := range q.EncodingLogin {
		params = append(params, "encoding_login", login)
	}
	return params
}

func appendIf(params []string, key, value string) []string {
	if value == "" {
		return params
	}
	return append(params, key, value)
}

func appendTime(params []string, key string, ts int64) []string {
	if ts <= 0 {
		return params
	}
	return append(params, key, strconv.FormatInt(ts, 10))
}

func orSwitch(s, def Switch) Switch {
	if s == "" {
		return def
	}
	return s
}
