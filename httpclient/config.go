package httpclient

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/kbukum/bitly/validation"
)

const (
	defaultName                = "http"
	defaultScheme              = "https"
	defaultHost                = "api-ssl.bitly.com"
	defaultTimeout             = 30 * time.Second
	defaultMaxIdleConnsPerHost = 16
)

// Config configures the transport. Scheme, host, and port are fixed for the
// lifetime of a Client; every request path is resolved against them.
type Config struct {
	// Name identifies the client in logs and metrics. Defaults to "http".
	Name string `yaml:"name" mapstructure:"name"`

	// Scheme is "https" (default) or "http".
	Scheme string `yaml:"scheme" mapstructure:"scheme" validate:"oneof=http https"`

	// Host is the API host name. Defaults to api-ssl.bitly.com.
	Host string `yaml:"host" mapstructure:"host" validate:"required"`

	// Port defaults to 443 for https and 80 for http.
	Port int `yaml:"port" mapstructure:"port" validate:"min=1,max=65535"`

	// Timeout bounds a whole exchange. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	// Headers are applied to every request before per-call headers.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// MaxIdleConnsPerHost sizes the idle pool kept per host. Defaults to 16.
	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host" validate:"gte=0"`
}

// ApplyDefaults fills in zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Scheme == "" {
		c.Scheme = defaultScheme
	}
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port == 0 {
		c.Port = 443
		if c.Scheme == "http" {
			c.Port = 80
		}
	}
	if c.Timeout == 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = defaultMaxIdleConnsPerHost
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	return validation.Validate(c)
}

// BaseURL returns scheme://host:port.
func (c *Config) BaseURL() string {
	return fmt.Sprintf("%s://%s", c.Scheme, hostPort(c.Host, c.Port))
}

// ConfigFromURL derives scheme, host and port from an absolute URL such as
// the address of a test server. Any path in raw is ignored.
func ConfigFromURL(raw string) (Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("httpclient: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Hostname() == "" {
		return Config{}, fmt.Errorf("httpclient: base url %q must be absolute", raw)
	}
	cfg := Config{Scheme: u.Scheme, Host: u.Hostname()}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return Config{}, fmt.Errorf("httpclient: invalid port %q: %w", p, err)
		}
		cfg.Port = port
	}
	return cfg, nil
}
