package bitly

import "context"

// BitlinksService shortens, expands and reports on bitlinks.
type BitlinksService struct {
	client *Client
}

// ShortenRequest is the body of POST /v4/shorten.
type ShortenRequest struct {
	LongURL   string `json:"long_url"`
	Domain    string `json:"domain,omitempty"`
	GroupGUID string `json:"group_guid,omitempty"`
}

// ShortenResponse is returned by Shorten.
type ShortenResponse struct {
	Bitlink
}

// ExpandRequest is the body of POST /v4/expand.
type ExpandRequest struct {
	BitlinkID string `json:"bitlink_id"`
}

// ExpandResponse is returned by Expand.
type ExpandResponse struct {
	ID        string `json:"id"`
	Link      string `json:"link"`
	LongURL   string `json:"long_url"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CreateBitlinkRequest is the body of POST /v4/bitlinks.
type CreateBitlinkRequest struct {
	LongURL   string     `json:"long_url"`
	Domain    string     `json:"domain,omitempty"`
	GroupGUID string     `json:"group_guid,omitempty"`
	Title     string     `json:"title,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Deeplinks []Deeplink `json:"deeplinks,omitempty"`
}

// UpdateBitlinkRequest is the body of PATCH /v4/bitlinks/{id}. Only set
// fields are sent.
type UpdateBitlinkRequest struct {
	Title     string     `json:"title,omitempty"`
	Archived  *bool      `json:"archived,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
	Deeplinks []Deeplink `json:"deeplinks,omitempty"`
	Domain    string     `json:"domain,omitempty"`
	GroupGUID string     `json:"group_guid,omitempty"`
	LongURL   string     `json:"long_url,omitempty"`
}

// ClicksResponse is the per-unit click history of a bitlink.
type ClicksResponse struct {
	Units
	LinkClicks []LinkClicks `json:"link_clicks"`
}

// ClicksSummaryResponse is the total click count of a bitlink.
type ClicksSummaryResponse struct {
	Units
	TotalClicks int `json:"total_clicks"`
}

// MetricsResponse is a click breakdown by one facet.
type MetricsResponse struct {
	Units
	Facet   string   `json:"facet,omitempty"`
	Metrics []Metric `json:"metrics"`
}

// ReferrersByDomainResponse groups referrers by network.
type ReferrersByDomainResponse struct {
	Units
	Facet             string             `json:"facet,omitempty"`
	ReferrersByDomain []NetworkReferrers `json:"referrers_by_domain"`
}

// QRCodeResponse carries a base64 data URI of the bitlink's QR code.
type QRCodeResponse struct {
	ID     string `json:"id"`
	Link   string `json:"link"`
	QRCode string `json:"qr_code"`
}

// Shorten shortens longURL in the default group.
func (s *BitlinksService) Shorten(ctx context.Context, longURL string) (*ShortenResponse, error) {
	return s.ShortenWith(ctx, ShortenRequest{LongURL: longURL})
}

// ShortenWith shortens with an explicit domain or group.
func (s *BitlinksService) ShortenWith(ctx context.Context, req ShortenRequest) (*ShortenResponse, error) {
	if err := required("long_url", req.LongURL); err != nil {
		return nil, err
	}
	return post[ShortenResponse](ctx, s.client, "/v4/shorten", req)
}

// Expand returns the long URL for a bitlink such as "bit.ly/abc".
func (s *BitlinksService) Expand(ctx context.Context, id string) (*ExpandResponse, error) {
	if err := required("bitlink_id", id); err != nil {
		return nil, err
	}
	return post[ExpandResponse](ctx, s.client, "/v4/expand", ExpandRequest{BitlinkID: id})
}

// Create creates a bitlink with optional title, tags and deeplinks.
func (s *BitlinksService) Create(ctx context.Context, req CreateBitlinkRequest) (*Bitlink, error) {
	if err := required("long_url", req.LongURL); err != nil {
		return nil, err
	}
	return post[Bitlink](ctx, s.client, "/v4/bitlinks", req)
}

// Get returns a bitlink.
func (s *BitlinksService) Get(ctx context.Context, id string) (*Bitlink, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return get[Bitlink](ctx, s.client, "/v4/bitlinks/"+id)
}

// Update patches a bitlink.
func (s *BitlinksService) Update(ctx context.Context, id string, req UpdateBitlinkRequest) (*Bitlink, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return patch[Bitlink](ctx, s.client, "/v4/bitlinks/"+id, req)
}

// Clicks returns clicks per unit.
func (s *BitlinksService) Clicks(ctx context.Context, id string, q UnitQuery) (*ClicksResponse, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return get[ClicksResponse](ctx, s.client, "/v4/bitlinks/"+id+"/clicks", q.Params()...)
}

// ClicksSummary returns the total clicks in the window.
func (s *BitlinksService) ClicksSummary(ctx context.Context, id string, q UnitQuery) (*ClicksSummaryResponse, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return get[ClicksSummaryResponse](ctx, s.client, "/v4/bitlinks/"+id+"/clicks/summary", q.Params()...)
}

// MetricsByCountries breaks clicks down by country.
func (s *BitlinksService) MetricsByCountries(ctx context.Context, id string, q UnitQuery) (*MetricsResponse, error) {
	return s.metrics(ctx, id, "countries", q)
}

// MetricsByReferrers breaks clicks down by referrer.
func (s *BitlinksService) MetricsByReferrers(ctx context.Context, id string, q UnitQuery) (*MetricsResponse, error) {
	return s.metrics(ctx, id, "referrers", q)
}

// MetricsByReferringDomains breaks clicks down by referring domain.
func (s *BitlinksService) MetricsByReferringDomains(ctx context.Context, id string, q UnitQuery) (*MetricsResponse, error) {
	return s.metrics(ctx, id, "referring_domains", q)
}

// MetricsByReferrersByDomain groups referrers under their network.
func (s *BitlinksService) MetricsByReferrersByDomain(ctx context.Context, id string, q UnitQuery) (*ReferrersByDomainResponse, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return get[ReferrersByDomainResponse](ctx, s.client, "/v4/bitlinks/"+id+"/referrers_by_domains", q.Params()...)
}

// QRCode returns the QR code of a bitlink.
func (s *BitlinksService) QRCode(ctx context.Context, id string) (*QRCodeResponse, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return get[QRCodeResponse](ctx, s.client, "/v4/bitlinks/"+id+"/qr")
}

func (s *BitlinksService) metrics(ctx context.Context, id, facet string, q UnitQuery) (*MetricsResponse, error) {
	if err := required("bitlink", id); err != nil {
		return nil, err
	}
	return get[MetricsResponse](ctx, s.client, "/v4/bitlinks/"+id+"/"+facet, q.Params()...)
}
