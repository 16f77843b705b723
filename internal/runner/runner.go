// Package runner wires configuration, telemetry and the selected directory
// into a single lookup run.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-id-lookup/internal/config"
	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
	"github.com/preston-bernstein/nba-id-lookup/internal/lookup"
	"github.com/preston-bernstein/nba-id-lookup/internal/metrics"
	"github.com/preston-bernstein/nba-id-lookup/internal/report"
)

var metricsSetup = metrics.Setup

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second

// Runner owns one configured lookup run: the directory, the service around it
// and the telemetry flushed when the run ends.
type Runner struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	directoryName string
	service       *lookup.Service
	metricsStop   func(context.Context) error
}

// New builds the directory named by cfg and a lookup service around it.
// progress may be nil to run silently.
func New(cfg config.Config, logger *slog.Logger, progress *lookup.Progress) (*Runner, error) {
	return newRunnerWithMetrics(cfg, logger, progress, nil)
}

func newRunnerWithMetrics(cfg config.Config, logger *slog.Logger, progress *lookup.Progress, recorder *metrics.Recorder) (*Runner, error) {
	recorder, metricsStop := buildMetrics(cfg, logger, recorder)

	dir, name, err := newDirectoryFactory(logger, recorder).build(cfg.Directory)
	if err != nil {
		if metricsStop != nil {
			_ = metricsStop(context.Background())
		}
		return nil, err
	}
	return &Runner{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		directoryName: name,
		service:       lookup.NewService(dir, progress, logger, recorder),
		metricsStop:   metricsStop,
	}, nil
}

// Run resolves the configured input file into the configured output file,
// then flushes telemetry. A telemetry flush failure is logged, never returned.
func (r *Runner) Run(ctx context.Context) (report.Summary, error) {
	summary, err := r.service.Run(ctx, r.cfg.InputPath, r.cfg.OutputPath)
	r.stopMetrics()
	return summary, err
}

// DirectoryName reports the name used for the directory in logs and metrics.
func (r *Runner) DirectoryName() string {
	return r.directoryName
}

// Stats returns the in-memory lookup counters for the active directory.
func (r *Runner) Stats() metrics.Snapshot {
	return r.metrics.Snapshot(r.directoryName)
}

func (r *Runner) stopMetrics() {
	if r.metricsStop == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := r.metricsStop(ctx); err != nil {
		logging.Warn(r.logger, "metrics shutdown failed", "error", err)
	}
	r.metricsStop = nil
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Textfile:     cfg.Metrics.Textfile,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, _, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil
	}
	return rec, shutdown
}
