package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/bitly"
	"github.com/kbukum/bitly/config"
	"github.com/kbukum/bitly/httpclient"
	"github.com/kbukum/bitly/logger"
	"github.com/kbukum/bitly/observability"
)

type globalFlags struct {
	configPath string
	envFile    string
	logLevel   string
	token      string
	apiURL     string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "bitly",
		Short: "Shorten, expand and inspect Bitly links",
		Long: `bitly talks to the Bitly v4 API.

The access token is read from --token, BITLY_ACCESS_TOKEN, a .env file or
access_token in config.yml.

Examples:
  bitly shorten https://example.com/a/long/path
  bitly expand bit.ly/3xYz12
  bitly get bit.ly/3xYz12
  bitly user`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to config.yml")
	pf.StringVar(&flags.envFile, "env-file", "", "Path to a .env file")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.StringVar(&flags.token, "token", "", "Bitly access token")
	pf.StringVar(&flags.apiURL, "api-url", "", "API base URL, e.g. https://api-ssl.bitly.com")

	root.AddCommand(
		newShortenCmd(flags),
		newExpandCmd(flags),
		newGetCmd(flags),
		newUserCmd(flags),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges config.yml, .env, BITLY_* variables and flags.
func (f *globalFlags) loadConfig() (bitly.Config, error) {
	var opts []config.LoaderOption
	if f.configPath != "" {
		opts = append(opts, config.WithConfigFile(f.configPath))
	}
	if f.envFile != "" {
		opts = append(opts, config.WithEnvFile(f.envFile))
	}

	var cfg bitly.Config
	if err := config.Load("bitly", &cfg, opts...); err != nil {
		return cfg, err
	}
	if f.token != "" {
		cfg.AccessToken = f.token
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.apiURL != "" {
		endpoint, err := httpclient.ConfigFromURL(f.apiURL)
		if err != nil {
			return cfg, err
		}
		cfg.HTTP.Scheme, cfg.HTTP.Host, cfg.HTTP.Port = endpoint.Scheme, endpoint.Host, endpoint.Port
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// withClient builds a client, starts telemetry when enabled and runs fn.
func (f *globalFlags) withClient(ctx context.Context, fn func(*bitly.Client) error) error {
	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Init(&cfg.Logging)

	if cfg.Telemetry.Enabled {
		shutdown, err := startTelemetry(ctx, &cfg.Telemetry)
		if err != nil {
			return err
		}
		defer shutdown()
	}

	client, err := bitly.NewFromConfig(cfg)
	if err != nil {
		return err
	}
	defer client.Transport().Close()
	return fn(client)
}

func startTelemetry(ctx context.Context, cfg *bitly.TelemetryConfig) (func(), error) {
	tp, err := observability.InitTracer(ctx, &cfg.Tracer)
	if err != nil {
		return nil, fmt.Errorf("failed to init tracer: %w", err)
	}
	mp, err := observability.InitMeter(ctx, &cfg.Meter)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("failed to init meter: %w", err)
	}
	return func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			logger.Warn("meter shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
		if err := tp.Shutdown(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", logger.Fields(logger.FieldError, err.Error()))
		}
	}, nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
