package bitly

import "context"

// ChannelsService manages campaign channels.
type ChannelsService struct {
	client *Client
}

// ChannelRequest is the body for creating or updating a channel.
type ChannelRequest struct {
	Name      string            `json:"name,omitempty"`
	GroupGUID string            `json:"group_guid,omitempty"`
	Bitlinks  []CampaignBitlink `json:"bitlinks,omitempty"`
}

// ChannelsResponse lists channels.
type ChannelsResponse struct {
	Channels []Channel `json:"channels"`
}

func (s *ChannelsService) Get(ctx context.Context, channelGUID string) (*Channel, error) {
	if err := required("channel_guid", channelGUID); err != nil {
		return nil, err
	}
	return get[Channel](ctx, s.client, "/v4/channels/"+channelGUID)
}

func (s *ChannelsService) Create(ctx context.Context, req ChannelRequest) (*Channel, error) {
	if err := required("name", req.Name); err != nil {
		return nil, err
	}
	return post[Channel](ctx, s.client, "/v4/channels", req)
}

func (s *ChannelsService) Update(ctx context.Context, channelGUID string, req ChannelRequest) (*Channel, error) {
	if err := required("channel_guid", channelGUID); err != nil {
		return nil, err
	}
	return patch[Channel](ctx, s.client, "/v4/channels/"+channelGUID, req)
}

// List returns channels, optionally filtered by group and campaign.
func (s *ChannelsService) List(ctx context.Context, groupGUID, campaignGUID string) (*ChannelsResponse, error) {
	var query []string
	if groupGUID != "" {
		query = append(query, "group_guid", groupGUID)
	}
	if campaignGUID != "" {
		query = append(query, "campaign_guid", campaignGUID)
	}
	return get[ChannelsResponse](ctx, s.client, "/v4/channels", query...)
}
