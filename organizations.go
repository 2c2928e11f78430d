package bitly

import "context"

// OrganizationsService reads organizations.
type OrganizationsService struct {
	client *Client
}

// OrganizationsResponse lists organizations.
type OrganizationsResponse struct {
	Organizations []Organization `json:"organizations"`
}

// Get returns an organization.
func (s *OrganizationsService) Get(ctx context.Context, organizationGUID string) (*Organization, error) {
	if err := required("organization_guid", organizationGUID); err != nil {
		return nil, err
	}
	return get[Organization](ctx, s.client, "/v4/organizations/"+organizationGUID)
}

// List returns the organizations of the user.
func (s *OrganizationsService) List(ctx context.Context) (*OrganizationsResponse, error) {
	return get[OrganizationsResponse](ctx, s.client, "/v4/organizations")
}

// ShortenCounts returns how many links the organization shortened per unit.
func (s *OrganizationsService) ShortenCounts(ctx context.Context, organizationGUID string, q UnitQuery) (*MetricsResponse, error) {
	if err := required("organization_guid", organizationGUID); err != nil {
		return nil, err
	}
	return get[MetricsResponse](ctx, s.client, "/v4/organizations/"+organizationGUID+"/shorten_counts", q.Params()...)
}
