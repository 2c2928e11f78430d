package bitly

import "context"

// BSDsService lists branded short domains.
type BSDsService struct {
	client *Client
}

// BSDsResponse lists the branded short domains of the user.
type BSDsResponse struct {
	BSDs []string `json:"bsds"`
}

func (s *BSDsService) List(ctx context.Context) (*BSDsResponse, error) {
	return get[BSDsResponse](ctx, s.client, "/v4/bsds")
}
