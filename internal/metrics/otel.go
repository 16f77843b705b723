package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const defaultServiceName = "nba-id-lookup"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
	writeTextfile     = prometheus.WriteToTextfile
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Textfile     string // node-exporter textfile written on shutdown
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus gatherer, and a shutdown function that flushes
// the textfile (when configured) before stopping the meter provider.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, prometheus.Gatherer, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = defaultServiceName
	}

	promReader, gatherer, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		var flushErr error
		if cfg.Textfile != "" {
			flushErr = writeTextfile(cfg.Textfile, gatherer)
		}
		return errors.Join(flushErr, provider.Shutdown(c))
	}

	return rec, gatherer, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, reg, nil
}

type otelInstruments struct {
	ctx             context.Context
	lookups         metric.Int64Counter
	lookupErrors    metric.Int64Counter
	lookupLatencyMs metric.Float64Histogram
	matches         metric.Int64Counter
	misses          metric.Int64Counter
	rateLimitHits   metric.Int64Counter
	retryAfterMs    metric.Float64Histogram
	runs            metric.Int64Counter
	runErrors       metric.Int64Counter
	runLatencyMs    metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(defaultServiceName)

	lookups, err := meter.Int64Counter("lookup_attempts_total")
	if err != nil {
		return nil, err
	}
	lookupErrors, err := meter.Int64Counter("lookup_errors_total")
	if err != nil {
		return nil, err
	}
	lookupLatency, err := meter.Float64Histogram("lookup_duration_ms")
	if err != nil {
		return nil, err
	}
	matches, err := meter.Int64Counter("lookup_matches_total")
	if err != nil {
		return nil, err
	}
	misses, err := meter.Int64Counter("lookup_misses_total")
	if err != nil {
		return nil, err
	}
	rateLimitHits, err := meter.Int64Counter("directory_rate_limit_hits_total")
	if err != nil {
		return nil, err
	}
	retryAfter, err := meter.Float64Histogram("directory_retry_after_ms")
	if err != nil {
		return nil, err
	}
	runs, err := meter.Int64Counter("runs_total")
	if err != nil {
		return nil, err
	}
	runErrors, err := meter.Int64Counter("run_errors_total")
	if err != nil {
		return nil, err
	}
	runLatency, err := meter.Float64Histogram("run_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:             context.Background(),
		lookups:         lookups,
		lookupErrors:    lookupErrors,
		lookupLatencyMs: lookupLatency,
		matches:         matches,
		misses:          misses,
		rateLimitHits:   rateLimitHits,
		retryAfterMs:    retryAfter,
		runs:            runs,
		runErrors:       runErrors,
		runLatencyMs:    runLatency,
	}, nil
}

func (o *otelInstruments) recordLookup(directory, outcome string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrDirectory, directory)}
	o.recordCounter(o.lookups, 1, attrs...)
	o.recordHistogram(o.lookupLatencyMs, float64(duration.Milliseconds()), attrs...)
	switch outcome {
	case OutcomeError:
		o.recordCounter(o.lookupErrors, 1, attrs...)
	case OutcomeMatch:
		o.recordCounter(o.matches, 1, attrs...)
	case OutcomeMiss:
		o.recordCounter(o.misses, 1, attrs...)
	}
}

func (o *otelInstruments) recordRateLimit(directory string, retryAfter time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrDirectory, directory)}
	o.recordCounter(o.rateLimitHits, 1, attrs...)
	if retryAfter > 0 {
		o.recordHistogram(o.retryAfterMs, float64(retryAfter.Milliseconds()), attrs...)
	}
}

func (o *otelInstruments) recordRun(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.runs, 1)
	o.recordHistogram(o.runLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.runErrors, 1)
	}
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
