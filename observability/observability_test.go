package observability

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestDefaultTracerConfig(t *testing.T) {
	cfg := DefaultTracerConfig("bitly")
	if cfg.ServiceName != "bitly" {
		t.Errorf("expected service name bitly, got %q", cfg.ServiceName)
	}
	if cfg.Endpoint != "localhost:4318" || !cfg.Insecure {
		t.Errorf("unexpected endpoint config %+v", cfg)
	}
	if cfg.SampleRate != 1.0 {
		t.Errorf("expected sample rate 1.0, got %f", cfg.SampleRate)
	}
}

func TestDefaultMeterConfig(t *testing.T) {
	cfg := DefaultMeterConfig("bitly")
	if cfg.Interval != 15*time.Second {
		t.Errorf("expected 15s interval, got %v", cfg.Interval)
	}
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased{0.5}"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("rate_%v", tc.rate), func(t *testing.T) {
			if got := sampler(tc.rate).Description(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource("bitly", "1.2.3", "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, kv := range res.Attributes() {
		if string(kv.Key) == AttrServiceName && kv.Value.AsString() == "bitly" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected service.name=bitly in %v", res.Attributes())
	}
}

func TestStartSpan_Recorded(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	_, span := StartSpan(context.Background(), SpanHTTPExchange)
	SetSpanError(span, fmt.Errorf("boom"))
	span.End()

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Name() != SpanHTTPExchange {
		t.Errorf("expected span name %q, got %q", SpanHTTPExchange, spans[0].Name())
	}
	if len(spans[0].Events()) != 1 {
		t.Errorf("expected recorded error event, got %v", spans[0].Events())
	}
}

func TestSetSpanError_NilSafe(t *testing.T) {
	SetSpanError(nil, fmt.Errorf("x"))
	_, span := StartSpan(context.Background(), "noop")
	SetSpanError(span, nil)
	span.End()
}

func TestNewMetrics_Noop(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	m.RecordExchangeStart(ctx)
	m.RecordExchangeEnd(ctx, "GET", 200, "accepted", time.Millisecond)
	m.RecordError(ctx, "GET", "connection")
}

func TestMetrics_RecordsExchange(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	m.RecordExchangeStart(ctx)
	m.RecordExchangeEnd(ctx, "POST", 201, "accepted", 20*time.Millisecond)

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	names := map[string]bool{}
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			names[md.Name] = true
		}
	}
	for _, want := range []string{"http.client.exchange.total", "http.client.exchange.duration", "http.client.exchange.active"} {
		if !names[want] {
			t.Errorf("expected metric %q, got %v", want, names)
		}
	}
}

func TestInitTracer(t *testing.T) {
	cfg := DefaultTracerConfig("test")
	prev := otel.GetTracerProvider()
	defer otel.SetTracerProvider(prev)

	tp, err := InitTracer(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = tp.Shutdown(ctx)
}

func TestInitMeter(t *testing.T) {
	cfg := DefaultMeterConfig("test")
	prev := otel.GetMeterProvider()
	defer otel.SetMeterProvider(prev)

	mp, err := InitMeter(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = mp.Shutdown(ctx)
}
