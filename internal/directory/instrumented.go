package directory

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
	"github.com/preston-bernstein/nba-id-lookup/internal/metrics"
)

// instrumentedDirectory wraps a Directory with logging and metrics. It never
// retries or alters results.
type instrumentedDirectory struct {
	next    Directory
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumented wraps next so every lookup is timed, counted and logged under name.
func NewInstrumented(next Directory, name string, logger *slog.Logger, recorder *metrics.Recorder) Directory {
	return &instrumentedDirectory{
		next:    next,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (d *instrumentedDirectory) FindByFullName(ctx context.Context, fullName string) ([]players.Player, error) {
	if d == nil || d.next == nil {
		return nil, ErrDirectoryUnavailable
	}

	start := d.now()
	candidates, err := d.next.FindByFullName(ctx, fullName)
	elapsed := d.now().Sub(start)

	d.metrics.RecordLookup(d.name, elapsed, len(candidates), err)

	if err != nil {
		if rl, ok := AsRateLimitError(err); ok {
			d.metrics.RecordRateLimit(d.name, rl.RetryAfter)
		}
		logWithDirectory(ctx, d.logger, slog.LevelWarn, d.name, "directory lookup failed",
			slog.String(logging.FieldName, fullName),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logWithDirectory(ctx, d.logger, slog.LevelDebug, d.name, "directory lookup",
		slog.String(logging.FieldName, fullName),
		slog.Int(logging.FieldCandidates, len(candidates)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return candidates, nil
}
