package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/bitly/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name reported for metrics.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version reported for metrics.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment.
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port.
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns defaults for a local collector.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "dev",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter installs a global meter provider exporting over OTLP HTTP.
// The returned provider must be shut down on exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for every HTTP exchange.
type Metrics struct {
	exchangeTotal    metric.Int64Counter
	exchangeDuration metric.Float64Histogram
	exchangeActive   metric.Int64UpDownCounter
	errorTotal       metric.Int64Counter
}

// NewMetrics creates the exchange instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	exchangeTotal, err := meter.Int64Counter("http.client.exchange.total",
		metric.WithDescription("Total number of HTTP exchanges"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating exchange total counter: %w", err)
	}

	exchangeDuration, err := meter.Float64Histogram("http.client.exchange.duration",
		metric.WithDescription("Duration of HTTP exchanges in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating exchange duration histogram: %w", err)
	}

	exchangeActive, err := meter.Int64UpDownCounter("http.client.exchange.active",
		metric.WithDescription("Number of in-flight HTTP exchanges"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating exchange active counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("http.client.error.total",
		metric.WithDescription("Failed exchanges by error kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating error total counter: %w", err)
	}

	return &Metrics{
		exchangeTotal:    exchangeTotal,
		exchangeDuration: exchangeDuration,
		exchangeActive:   exchangeActive,
		errorTotal:       errorTotal,
	}, nil
}

// RecordExchangeStart increments the in-flight count.
func (m *Metrics) RecordExchangeStart(ctx context.Context) {
	m.exchangeActive.Add(ctx, 1)
}

// RecordExchangeEnd decrements the in-flight count and records a completed exchange.
func (m *Metrics) RecordExchangeEnd(ctx context.Context, method string, status int, outcome string, duration time.Duration) {
	m.exchangeActive.Add(ctx, -1)
	m.exchangeTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrHTTPMethod, method),
		attribute.Int(AttrHTTPStatusCode, status),
		attribute.String(AttrOutcome, outcome),
	))
	m.exchangeDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrHTTPMethod, method),
	))
}

// RecordError counts a failed exchange by kind.
func (m *Metrics) RecordError(ctx context.Context, method, kind string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrHTTPMethod, method),
		attribute.String("error.type", kind),
	))
}
