package bitly

import "context"

// AppsService reads OAuth app registrations.
type AppsService struct {
	client *Client
}

func (s *AppsService) Get(ctx context.Context, clientID string) (*OAuthApp, error) {
	if err := required("client_id", clientID); err != nil {
		return nil, err
	}
	return get[OAuthApp](ctx, s.client, "/v4/apps/"+clientID)
}
