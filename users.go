package bitly

import "context"

// UsersService reads and updates the authenticated user.
type UsersService struct {
	client *Client
}

// UpdateUserRequest is the body of PATCH /v4/user.
type UpdateUserRequest struct {
	Name             string `json:"name,omitempty"`
	DefaultGroupGUID string `json:"default_group_guid,omitempty"`
}

// Get returns the authenticated user.
func (s *UsersService) Get(ctx context.Context) (*User, error) {
	return get[User](ctx, s.client, "/v4/user")
}

// Update changes the user's name or default group.
func (s *UsersService) Update(ctx context.Context, req UpdateUserRequest) (*User, error) {
	return patch[User](ctx, s.client, "/v4/user", req)
}
