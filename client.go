package bitly

import (
	"context"

	"github.com/kbukum/bitly/errors"
	"github.com/kbukum/bitly/httpclient"
	"github.com/kbukum/bitly/logger"
	"github.com/kbukum/bitly/observability"
	"github.com/kbukum/bitly/validation"
	"github.com/kbukum/bitly/version"
)

// Client accesses the Bitly v4 API with one access token. Clients are safe
// for concurrent use and may share a transport.
type Client struct {
	transport *httpclient.Client
	token     string
	log       *logger.Logger

	bitlinks       *BitlinksService
	customBitlinks *CustomBitlinksService
	groups         *GroupsService
	organizations  *OrganizationsService
	campaigns      *CampaignsService
	channels       *ChannelsService
	users          *UsersService
	bsds           *BSDsService
	webhooks       *WebhooksService
	apps           *AppsService
}

type options struct {
	httpConfig httpclient.Config
	transport  *httpclient.Client
	log        *logger.Logger
	metrics    *observability.Metrics
}

// Option customizes a Client.
type Option func(*options)

// WithConfig sets the transport configuration. Ignored with WithHTTPClient.
func WithConfig(cfg httpclient.Config) Option {
	return func(o *options) { o.httpConfig = cfg }
}

// WithHTTPClient shares an existing transport, typically one built with
// NewTransport, between clients.
func WithHTTPClient(t *httpclient.Client) Option {
	return func(o *options) { o.transport = t }
}

// WithLogger sets the logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithMetrics records exchange metrics on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// NewTransport creates a transport that maps rejected exchanges to *Error.
func NewTransport(cfg httpclient.Config, opts ...httpclient.Option) (*httpclient.Client, error) {
	return httpclient.New(cfg, append([]httpclient.Option{httpclient.WithRejecter(reject)}, opts...)...)
}

// New creates a client for accessToken.
func New(accessToken string, opts ...Option) (*Client, error) {
	if err := validation.Required("access_token", accessToken); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.Get("bitly")
	}

	transport := o.transport
	if transport == nil {
		var err error
		transport, err = NewTransport(o.httpConfig,
			httpclient.WithLogger(o.log.WithComponent("httpclient")),
			httpclient.WithMetrics(o.metrics),
		)
		if err != nil {
			return nil, errors.Configuration("invalid http config", err)
		}
	}

	c := &Client{
		transport: transport,
		token:     accessToken,
		log:       o.log,
	}
	c.bitlinks = &BitlinksService{client: c}
	c.customBitlinks = &CustomBitlinksService{client: c}
	c.groups = &GroupsService{client: c}
	c.organizations = &OrganizationsService{client: c}
	c.campaigns = &CampaignsService{client: c}
	c.channels = &ChannelsService{client: c}
	c.users = &UsersService{client: c}
	c.bsds = &BSDsService{client: c}
	c.webhooks = &WebhooksService{client: c}
	c.apps = &AppsService{client: c}
	return c, nil
}

// NewFromConfig creates a client from a loaded Config.
func NewFromConfig(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := []Option{
		WithConfig(cfg.HTTP),
		WithLogger(logger.New(&cfg.Logging, cfg.Name)),
	}
	if cfg.Telemetry.Enabled {
		m, err := observability.NewMetrics(observability.Meter(instrumentationName))
		if err != nil {
			return nil, errors.Configuration("failed to create metrics", err)
		}
		opts = append(opts, WithMetrics(m))
	}
	return New(cfg.AccessToken, opts...)
}

const instrumentationName = "github.com/kbukum/bitly"

// Headers returns a fresh copy of the headers sent with every request.
func (c *Client) Headers() map[string]string {
	h := httpclient.BearerHeaders(c.token)
	h["User-Agent"] = version.UserAgent()
	return h
}

// Transport returns the underlying transport.
func (c *Client) Transport() *httpclient.Client { return c.transport }

// Bitlinks returns the /v4/bitlinks, /v4/shorten and /v4/expand endpoints.
func (c *Client) Bitlinks() *BitlinksService { return c.bitlinks }

// CustomBitlinks returns the /v4/custom_bitlinks endpoints.
func (c *Client) CustomBitlinks() *CustomBitlinksService { return c.customBitlinks }

// Groups returns the /v4/groups endpoints.
func (c *Client) Groups() *GroupsService { return c.groups }

// Organizations returns the /v4/organizations endpoints.
func (c *Client) Organizations() *OrganizationsService { return c.organizations }

// Campaigns returns the /v4/campaigns endpoints.
func (c *Client) Campaigns() *CampaignsService { return c.campaigns }

// Channels returns the /v4/channels endpoints.
func (c *Client) Channels() *ChannelsService { return c.channels }

// Users returns the /v4/user endpoints.
func (c *Client) Users() *UsersService { return c.users }

// BSDs returns the branded short domain endpoints.
func (c *Client) BSDs() *BSDsService { return c.bsds }

// Webhooks returns the /v4/webhooks endpoints.
func (c *Client) Webhooks() *WebhooksService { return c.webhooks }

// Apps returns the /v4/apps endpoints.
func (c *Client) Apps() *AppsService { return c.apps }

func (c *Client) requestOptions(query []string) []httpclient.RequestOption {
	opts := []httpclient.RequestOption{httpclient.WithHeaders(c.Headers())}
	if len(query) > 0 {
		opts = append(opts, httpclient.WithQuery(query...))
	}
	return opts
}

func get[T any](ctx context.Context, c *Client, path string, query ...string) (*T, error) {
	return httpclient.Get[T](ctx, c.transport, path, c.requestOptions(query)...)
}

func post[T any](ctx context.Context, c *Client, path string, payload any) (*T, error) {
	return httpclient.Post[T](ctx, c.transport, path, payload, c.requestOptions(nil)...)
}

func patch[T any](ctx context.Context, c *Client, path string, payload any) (*T, error) {
	return httpclient.Patch[T](ctx, c.transport, path, payload, c.requestOptions(nil)...)
}

func del(ctx context.Context, c *Client, path string) error {
	return httpclient.Delete(ctx, c.transport, path, c.requestOptions(nil)...)
}

// required validates path arguments before any exchange.
func required(kv ...string) error {
	v := validation.New()
	for i := 0; i+1 < len(kv); i += 2 {
		v.Required(kv[i], kv[i+1])
	}
	return v.Err()
}
