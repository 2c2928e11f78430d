package bitly

import (
	"github.com/kbukum/bitly/config"
	"github.com/kbukum/bitly/errors"
	"github.com/kbukum/bitly/httpclient"
	"github.com/kbukum/bitly/observability"
	"github.com/kbukum/bitly/validation"
	"github.com/kbukum/bitly/version"
)

// Config is the file and environment configuration of a Client.
//
//	name: bitly
//	access_token: ${BITLY_ACCESS_TOKEN}
//	http:
//	  timeout: 10s
//	logging:
//	  level: debug
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	AccessToken string            `yaml:"access_token" mapstructure:"access_token" validate:"required"`
	HTTP        httpclient.Config `yaml:"http" mapstructure:"http"`
	Telemetry   TelemetryConfig   `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryConfig enables OpenTelemetry export of exchange spans and metrics.
type TelemetryConfig struct {
	Enabled bool                       `yaml:"enabled" mapstructure:"enabled"`
	Tracer  observability.TracerConfig `yaml:"tracer" mapstructure:"tracer"`
	Meter   observability.MeterConfig  `yaml:"meter" mapstructure:"meter"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "bitly"
	}
	c.ServiceConfig.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	c.Telemetry.applyDefaults(c.Name, c.Environment)
}

func (t *TelemetryConfig) applyDefaults(name, env string) {
	tracer := observability.DefaultTracerConfig(name)
	if t.Tracer.ServiceName == "" {
		t.Tracer.ServiceName = tracer.ServiceName
	}
	if t.Tracer.ServiceVersion == "" {
		t.Tracer.ServiceVersion = version.Version
	}
	if t.Tracer.Environment == "" {
		t.Tracer.Environment = env
	}
	if t.Tracer.Endpoint == "" {
		t.Tracer.Endpoint = tracer.Endpoint
	}
	if t.Tracer.SampleRate == 0 {
		t.Tracer.SampleRate = tracer.SampleRate
	}

	meter := observability.DefaultMeterConfig(name)
	if t.Meter.ServiceName == "" {
		t.Meter.ServiceName = meter.ServiceName
	}
	if t.Meter.ServiceVersion == "" {
		t.Meter.ServiceVersion = version.Version
	}
	if t.Meter.Environment == "" {
		t.Meter.Environment = env
	}
	if t.Meter.Endpoint == "" {
		t.Meter.Endpoint = meter.Endpoint
	}
	if t.Meter.Interval == 0 {
		t.Meter.Interval = meter.Interval
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return errors.Configuration("invalid service config", err)
	}
	return validation.Validate(c)
}

// LoadConfig reads config.yml, .env and BITLY_* environment variables,
// applies defaults and validates the result.
func LoadConfig(opts ...config.LoaderOption) (*Config, error) {
	var cfg Config
	if err := config.Load("bitly", &cfg, opts...); err != nil {
		return nil, errors.Configuration("failed to load config", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
