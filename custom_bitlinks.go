package bitly

import "context"

// CustomBitlinksService manages keywords on branded short domains.
type CustomBitlinksService struct {
	client *Client
}

// CreateCustomBitlinkRequest points a custom keyword at an existing bitlink.
type CreateCustomBitlinkRequest struct {
	CustomBitlink string `json:"custom_bitlink"`
	BitlinkID     string `json:"bitlink_id"`
}

// UpdateCustomBitlinkRequest moves a custom keyword to another bitlink.
type UpdateCustomBitlinkRequest struct {
	BitlinkID string `json:"bitlink_id"`
}

// Get returns a custom bitlink such as "example.co/promo".
func (s *CustomBitlinksService) Get(ctx context.Context, customBitlink string) (*CustomBitlink, error) {
	if err := required("custom_bitlink", customBitlink); err != nil {
		return nil, err
	}
	return get[CustomBitlink](ctx, s.client, "/v4/custom_bitlinks/"+customBitlink)
}

// Create adds a custom keyword.
func (s *CustomBitlinksService) Create(ctx context.Context, req CreateCustomBitlinkRequest) (*CustomBitlink, error) {
	if err := required("custom_bitlink", req.CustomBitlink, "bitlink_id", req.BitlinkID); err != nil {
		return nil, err
	}
	return post[CustomBitlink](ctx, s.client, "/v4/custom_bitlinks", req)
}

// Update retargets a custom keyword.
func (s *CustomBitlinksService) Update(ctx context.Context, customBitlink string, req UpdateCustomBitlinkRequest) (*CustomBitlink, error) {
	if err := required("custom_bitlink", customBitlink, "bitlink_id", req.BitlinkID); err != nil {
		return nil, err
	}
	return patch[CustomBitlink](ctx, s.client, "/v4/custom_bitlinks/"+customBitlink, req)
}

// MetricsByDestination breaks clicks down by the bitlinks the keyword has
// pointed at.
func (s *CustomBitlinksService) MetricsByDestination(ctx context.Context, customBitlink string) (*MetricsResponse, error) {
	if err := required("custom_bitlink", customBitlink); err != nil {
		return nil, err
	}
	return get[MetricsResponse](ctx, s.client, "/v4/custom_bitlinks/"+customBitlink+"/clicks_by_destination")
}
