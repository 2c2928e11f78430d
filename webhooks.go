package bitly

import "context"

// WebhooksService manages organization webhooks.
type WebhooksService struct {
	client *Client
}

// WebhookRequest is the body for creating or updating a webhook.
type WebhookRequest struct {
	Name             string `json:"name,omitempty"`
	URL              string `json:"url,omitempty"`
	Event            string `json:"event,omitempty"`
	OrganizationGUID string `json:"organization_guid,omitempty"`
	GroupGUID        string `json:"group_guid,omitempty"`
	IsActive         bool   `json:"is_active"`
}

// WebhooksResponse lists webhooks.
type WebhooksResponse struct {
	Webhooks []Webhook `json:"webhooks"`
}

// Get returns a webhook by GUID.
func (s *WebhooksService) Get(ctx context.Context, webhookGUID string) (*Webhook, error) {
	if err := required("webhook_guid", webhookGUID); err != nil {
		return nil, err
	}
	return get[Webhook](ctx, s.client, "/v4/webhooks/"+webhookGUID)
}

// Create registers a webhook. Name, URL and organization are required.
func (s *WebhooksService) Create(ctx context.Context, req WebhookRequest) (*Webhook, error) {
	if err := required("name", req.Name, "url", req.URL, "organization_guid", req.OrganizationGUID); err != nil {
		return nil, err
	}
	return post[Webhook](ctx, s.client, "/v4/webhooks", req)
}

// Update changes the name, URL, event or active flag of a webhook.
func (s *WebhooksService) Update(ctx context.Context, webhookGUID string, req WebhookRequest) (*Webhook, error) {
	if err := required("webhook_guid", webhookGUID); err != nil {
		return nil, err
	}
	return patch[Webhook](ctx, s.client, "/v4/webhooks/"+webhookGUID, req)
}

// List returns the webhooks of an organization.
func (s *WebhooksService) List(ctx context.Context, organizationGUID string) (*WebhooksResponse, error) {
	if err := required("organization_guid", organizationGUID); err != nil {
		return nil, err
	}
	return get[WebhooksResponse](ctx, s.client, "/v4/organizations/"+organizationGUID+"/webhooks")
}

// Delete removes a webhook.
func (s *WebhooksService) Delete(ctx context.Context, webhookGUID string) error {
	if err := required("webhook_guid", webhookGUID); err != nil {
		return err
	}
	return del(ctx, s.client, "/v4/webhooks/"+webhookGUID)
}
