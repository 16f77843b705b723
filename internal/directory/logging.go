package directory

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
)

// logWithDirectory emits a log entry if a logger is available and always includes the directory name.
func logWithDirectory(ctx context.Context, logger *slog.Logger, level slog.Level, directory string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldDirectory, directory))
	logger.Log(ctx, level, msg, args...)
}
