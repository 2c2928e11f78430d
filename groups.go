package bitly

import "context"

// GroupsService manages groups and lists their bitlinks.
type GroupsService struct {
	client *Client
}

// UpdateGroupRequest is the body of PATCH /v4/groups/{guid}.
type UpdateGroupRequest struct {
	Name             string   `json:"name,omitempty"`
	OrganizationGUID string   `json:"organization_guid,omitempty"`
	BSDs             []string `json:"bsds,omitempty"`
}

// GroupsResponse lists groups.
type GroupsResponse struct {
	Groups []Group `json:"groups"`
}

// BitlinksResponse is one page of a group's bitlinks.
type BitlinksResponse struct {
	Links      []Bitlink  `json:"links"`
	Pagination Pagination `json:"pagination"`
}

// SortedLink pairs a bitlink with its click count.
type SortedLink struct {
	ID     string `json:"id"`
	Clicks int    `json:"clicks"`
}

// SortedBitlinksResponse is a group's bitlinks ordered by a sort key.
type SortedBitlinksResponse struct {
	Links       []Bitlink    `json:"links"`
	SortedLinks []SortedLink `json:"sorted_links"`
}

// Get returns a group.
func (s *GroupsService) Get(ctx context.Context, groupGUID string) (*Group, error) {
	if err := required("group_guid", groupGUID); err != nil {
		return nil, err
	}
	return get[Group](ctx, s.client, "/v4/groups/"+groupGUID)
}

// List returns the groups visible to the user, optionally restricted to an
// organization.
func (s *GroupsService) List(ctx context.Context, organizationGUID string) (*GroupsResponse, error) {
	var query []string
	if organizationGUID != "" {
		query = []string{"organization_guid", organizationGUID}
	}
	return get[GroupsResponse](ctx, s.client, "/v4/groups", query...)
}

// Update patches a group.
func (s *GroupsService) Update(ctx context.Context, groupGUID string, req UpdateGroupRequest) (*Group, error) {
	if err := required("group_guid", groupGUID); err != nil {
		return nil, err
	}
	return patch[Group](ctx, s.client, "/v4/groups/"+groupGUID, req)
}

// Delete removes a group.
func (s *GroupsService) Delete(ctx context.Context, groupGUID string) error {
	if err := required("group_guid", groupGUID); err != nil {
		return err
	}
	return del(ctx, s.client, "/v4/groups/"+groupGUID)
}

// Preferences returns the group's domain preference.
func (s *GroupsService) Preferences(ctx context.Context, groupGUID string) (*GroupPreferences, error) {
	if err := required("group_guid", groupGUID); err != nil {
		return nil, err
	}
	return get[GroupPreferences](ctx, s.client, "/v4/groups/"+groupGUID+"/preferences")
}

// UpdatePreferences sets the group's domain preference.
func (s *GroupsService) UpdatePreferences(ctx context.Context, groupGUID string, prefs GroupPreferences) (*GroupPreferences, error) {
	if err := required("group_guid", groupGUID, "domain_preference", prefs.DomainPreference); err != nil {
		return nil, err
	}
	prefs.GroupGUID = groupGUID
	return patch[GroupPreferences](ctx, s.client, "/v4/groups/"+groupGUID+"/preferences", prefs)
}

// Bitlinks returns one page of the group's bitlinks.
func (s *GroupsService) Bitlinks(ctx context.Context, groupGUID string, q BitlinkQuery) (*BitlinksResponse, error) {
	if err := required("group_guid", groupGUID); err != nil {
		return nil, err
	}
	return get[BitlinksResponse](ctx, s.client, "/v4/groups/"+groupGUID+"/bitlinks", q.Params()...)
}

// SortedBitlinks returns the group's bitlinks ordered by sort.
func (s *GroupsService) SortedBitlinks(ctx context.Context, groupGUID string, sort Sort, q UnitQuery) (*SortedBitlinksResponse, error) {
	if sort == "" {
		sort = SortClicks
	}
	if err := required("group_guid", groupGUID); err != nil {
		return nil, err
	}
	return get[SortedBitlinksResponse](ctx, s.client, "/v4/groups/"+groupGUID+"/bitlinks/"+string(sort), q.Params()...)
}

// ShortenCounts returns how many links the group shortened per unit.
func (s *GroupsService) ShortenCounts(ctx context.Context, groupGUID string, q UnitQuery) (*MetricsResponse, error) {
	if err := required("group_guid", groupGUID); err != nil {
		return nil, err
	}
	return get[MetricsResponse](ctx, s.client, "/v4/groups/"+groupGUID+"/shorten_counts", q.Params()...)
}
