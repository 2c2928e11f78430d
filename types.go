package bitly

// Deeplink routes a bitlink into a mobile app.
type Deeplink struct {
	Bitlink     string `json:"bitlink,omitempty"`
	GUID        string `json:"guid,omitempty"`
	OS          string `json:"os,omitempty"`
	Created     string `json:"created,omitempty"`
	Modified    string `json:"modified,omitempty"`
	AppURIPath  string `json:"app_uri_path,omitempty"`
	InstallType string `json:"install_type,omitempty"`
	InstallURL  string `json:"install_url,omitempty"`
	AppID       string `json:"app_id,omitempty"`
	AppGUID     string `json:"app_guid,omitempty"`
	BrandGUID   string `json:"brand_guid,omitempty"`
}

// Bitlink is a shortened link.
type Bitlink struct {
	ID             string            `json:"id"`
	Link           string            `json:"link"`
	Title          string            `json:"title,omitempty"`
	LongURL        string            `json:"long_url"`
	Archived       bool              `json:"archived"`
	CreatedAt      string            `json:"created_at,omitempty"`
	CreatedBy      string            `json:"created_by,omitempty"`
	ClientID       string            `json:"client_id,omitempty"`
	CustomBitlinks []string          `json:"custom_bitlinks,omitempty"`
	Tags           []string          `json:"tags,omitempty"`
	Deeplinks      []Deeplink        `json:"deeplinks,omitempty"`
	References     map[string]string `json:"references,omitempty"`
}

// BitlinkHistory is one past target of a custom bitlink.
type BitlinkHistory struct {
	Hash         string `json:"hash"`
	UUID         string `json:"uuid,omitempty"`
	Keyword      string `json:"keyword,omitempty"`
	Created      string `json:"created,omitempty"`
	Deactivated  string `json:"deactivated,omitempty"`
	BSD          string `json:"bsd,omitempty"`
	Login        string `json:"login,omitempty"`
	GroupGUID    string `json:"group_guid,omitempty"`
	FirstCreated string `json:"first_created,omitempty"`
	IsActive     bool   `json:"is_active"`
	LongURL      string `json:"long_url,omitempty"`
}

// CustomBitlink is a keyword on a branded short domain.
type CustomBitlink struct {
	CustomBitlink  string           `json:"custom_bitlink"`
	Bitlink        *Bitlink         `json:"bitlink,omitempty"`
	BitlinkHistory []BitlinkHistory `json:"bitlink_history,omitempty"`
}

// Group contains bitlinks and belongs to an organization.
type Group struct {
	GUID             string            `json:"guid"`
	Name             string            `json:"name"`
	OrganizationGUID string            `json:"organization_guid,omitempty"`
	BSDs             []string          `json:"bsds,omitempty"`
	Role             string            `json:"role,omitempty"`
	IsActive         bool              `json:"is_active"`
	Created          string            `json:"created,omitempty"`
	Modified         string            `json:"modified,omitempty"`
	References       map[string]string `json:"references,omitempty"`
}

// GroupPreferences holds a group's default short domain.
type GroupPreferences struct {
	GroupGUID        string `json:"group_guid,omitempty"`
	DomainPreference string `json:"domain_preference"`
}

// Organization owns groups.
type Organization struct {
	GUID            string            `json:"guid"`
	Name            string            `json:"name"`
	Tier            string            `json:"tier,omitempty"`
	TierFamily      string            `json:"tier_family,omitempty"`
	TierDisplayName string            `json:"tier_display_name,omitempty"`
	Role            string            `json:"role,omitempty"`
	BSDs            []string          `json:"bsds,omitempty"`
	IsActive        bool              `json:"is_active"`
	Created         string            `json:"created,omitempty"`
	Modified        string            `json:"modified,omitempty"`
	References      map[string]string `json:"references,omitempty"`
}

// Email is an address on a user account.
type Email struct {
	Email      string `json:"email"`
	IsPrimary  bool   `json:"is_primary"`
	IsVerified bool   `json:"is_verified"`
}

// User is the authenticated account.
type User struct {
	Login            string  `json:"login"`
	Name             string  `json:"name"`
	DefaultGroupGUID string  `json:"default_group_guid,omitempty"`
	Emails           []Email `json:"emails,omitempty"`
	IsActive         bool    `json:"is_active"`
	IsSSOUser        bool    `json:"is_sso_user"`
	Is2FAEnabled     bool    `json:"is_2fa_enabled"`
	Created          string  `json:"created,omitempty"`
	Modified         string  `json:"modified,omitempty"`
}

// Campaign groups channels for tracking.
type Campaign struct {
	GUID        string            `json:"guid"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	GroupGUID   string            `json:"group_guid,omitempty"`
	CreatedBy   string            `json:"created_by,omitempty"`
	Created     string            `json:"created,omitempty"`
	Modified    string            `json:"modified,omitempty"`
	References  map[string]string `json:"references,omitempty"`
}

// CampaignBitlink attaches a bitlink to a campaign.
type CampaignBitlink struct {
	BitlinkID    string `json:"bitlink_id"`
	CampaignGUID string `json:"campaign_guid,omitempty"`
}

// Channel is a campaign distribution channel.
type Channel struct {
	GUID       string            `json:"guid"`
	Name       string            `json:"name"`
	GroupGUID  string            `json:"group_guid,omitempty"`
	Bitlinks   []CampaignBitlink `json:"bitlinks,omitempty"`
	Created    string            `json:"created,omitempty"`
	Modified   string            `json:"modified,omitempty"`
	References map[string]string `json:"references,omitempty"`
}

// Webhook delivers events to a URL.
type Webhook struct {
	GUID             string            `json:"guid"`
	Name             string            `json:"name"`
	URL              string            `json:"url"`
	Event            string            `json:"event,omitempty"`
	Status           string            `json:"status,omitempty"`
	IsActive         bool              `json:"is_active"`
	OrganizationGUID string            `json:"organization_guid,omitempty"`
	GroupGUID        string            `json:"group_guid,omitempty"`
	ModifiedBy       string            `json:"modified_by,omitempty"`
	Created          string            `json:"created,omitempty"`
	Modified         string            `json:"modified,omitempty"`
	Deactivated      string            `json:"deactivated,omitempty"`
	References       map[string]string `json:"references,omitempty"`
}

// OAuthApp is a registered OAuth client.
type OAuthApp struct {
	Name        string `json:"name"`
	Link        string `json:"link,omitempty"`
	Description string `json:"description,omitempty"`
	ClientID    string `json:"client_id"`
}

// Pagination is attached to paged list responses.
type Pagination struct {
	Total int    `json:"total"`
	Size  int    `json:"size"`
	Page  int    `json:"page"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// Units describes the window a metrics response covers.
type Units struct {
	Unit          string `json:"unit"`
	Units         int    `json:"units"`
	UnitReference string `json:"unit_reference,omitempty"`
}

// LinkClicks is the click count for one unit of time.
type LinkClicks struct {
	Date   string `json:"date"`
	Clicks int    `json:"clicks"`
}

// Metric is a click count for one value of a facet.
type Metric struct {
	Value  string `json:"value"`
	Clicks int    `json:"clicks"`
}

// Referrer is a referring URL seen on a network.
type Referrer struct {
	Key    string `json:"key,omitempty"`
	Value  string `json:"value"`
	Clicks int    `json:"clicks,omitempty"`
}

// NetworkReferrers groups referrers by network.
type NetworkReferrers struct {
	Network   string     `json:"network"`
	Referrers []Referrer `json:"referrers"`
}
