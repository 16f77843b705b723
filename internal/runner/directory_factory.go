package runner

import (
	"log/slog"

	"github.com/preston-bernstein/nba-id-lookup/internal/config"
	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
	"github.com/preston-bernstein/nba-id-lookup/internal/metrics"
)

// directoryFactory assembles the configured directory with the instrumentation wrapper.
type directoryFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newDirectoryFactory(logger *slog.Logger, metrics *metrics.Recorder) directoryFactory {
	return directoryFactory{logger: logger, metrics: metrics}
}

func (f directoryFactory) build(cfg config.DirectoryConfig) (directory.Directory, string, error) {
	base, err := selectDirectory(cfg)
	if err != nil {
		return nil, "", err
	}
	name := normalizeDirectoryName(cfg.Kind, base)
	return directory.NewInstrumented(base, name, f.logger, f.metrics), name, nil
}
