package bitly

import "context"

// CampaignsService manages campaigns.
type CampaignsService struct {
	client *Client
}

// CampaignRequest is the body for creating or updating a campaign.
type CampaignRequest struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	GroupGUID    string   `json:"group_guid,omitempty"`
	ChannelGUIDs []string `json:"channel_guids,omitempty"`
}

// CampaignsResponse lists campaigns.
type CampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

func (s *CampaignsService) Get(ctx context.Context, campaignGUID string) (*Campaign, error) {
	if err := required("campaign_guid", campaignGUID); err != nil {
		return nil, err
	}
	return get[Campaign](ctx, s.client, "/v4/campaigns/"+campaignGUID)
}

func (s *CampaignsService) Create(ctx context.Context, req CampaignRequest) (*Campaign, error) {
	if err := required("name", req.Name); err != nil {
		return nil, err
	}
	return post[Campaign](ctx, s.client, "/v4/campaigns", req)
}

func (s *CampaignsService) Update(ctx context.Context, campaignGUID string, req CampaignRequest) (*Campaign, error) {
	if err := required("campaign_guid", campaignGUID); err != nil {
		return nil, err
	}
	return patch[Campaign](ctx, s.client, "/v4/campaigns/"+campaignGUID, req)
}

// List returns campaigns, optionally restricted to a group.
func (s *CampaignsService) List(ctx context.Context, groupGUID string) (*CampaignsResponse, error) {
	var query []string
	if groupGUID != "" {
		query = []string{"group_guid", groupGUID}
	}
	return get[CampaignsResponse](ctx, s.client, "/v4/campaigns", query...)
}
