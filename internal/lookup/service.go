// Package lookup resolves a list of player names against a directory and
// writes the results as a report.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-id-lookup/internal/directory"
	"github.com/preston-bernstein/nba-id-lookup/internal/domain/players"
	"github.com/preston-bernstein/nba-id-lookup/internal/logging"
	"github.com/preston-bernstein/nba-id-lookup/internal/metrics"
	"github.com/preston-bernstein/nba-id-lookup/internal/report"
)

// Service runs the read, resolve, write pipeline. It is strictly sequential.
type Service struct {
	directory directory.Directory
	progress  *Progress
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
	newRunID  func() string
}

// NewService constructs a Service. progress may be nil to silence console output.
func NewService(dir directory.Directory, progress *Progress, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	if progress == nil {
		progress = NewProgress(nil, false)
	}
	return &Service{
		directory: dir,
		progress:  progress,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}
}

// Run reads names from inputPath, resolves each one and rewrites outputPath
// with the results. Any input, directory or output error aborts the run; a
// directory error leaves outputPath untouched.
func (s *Service) Run(ctx context.Context, inputPath, outputPath string) (report.Summary, error) {
	if s.directory == nil {
		return report.Summary{}, directory.ErrDirectoryUnavailable
	}

	start := s.now()
	logger := s.runLogger()
	ctx = logging.WithContext(ctx, logger)

	summary, err := s.run(ctx, logger, inputPath, outputPath)
	elapsed := s.now().Sub(start)
	s.metrics.RecordRun(elapsed, err)
	if err != nil {
		logging.Error(logger, "lookup run failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		return report.Summary{}, err
	}

	logging.Info(logger, "lookup run complete",
		logging.FieldPath, outputPath,
		logging.FieldCount, summary.Total,
		logging.FieldMatched, summary.Matched,
		logging.FieldUnmatched, summary.Unmatched,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	for _, id := range summary.DuplicateIDs() {
		logging.Warn(logger, "identifier assigned to several names",
			logging.FieldPlayerID, id,
			"names", summary.Duplicates[id],
		)
	}
	return summary, nil
}

func (s *Service) run(ctx context.Context, logger *slog.Logger, inputPath, outputPath string) (report.Summary, error) {
	names, err := ReadNames(inputPath)
	if err != nil {
		return report.Summary{}, fmt.Errorf("read names: %w", err)
	}
	logging.Info(logger, "names loaded", logging.FieldPath, inputPath, logging.FieldCount, len(names))

	results, err := s.Resolve(ctx, names)
	if err != nil {
		return report.Summary{}, err
	}

	if err := report.Write(outputPath, results); err != nil {
		return report.Summary{}, err
	}
	summary := report.Summarize(results)
	s.progress.Done(outputPath, summary)

	return summary, nil
}

// Resolve queries the directory once per name, in order, and returns exactly
// one result per name. The first directory error stops resolution.
func (s *Service) Resolve(ctx context.Context, names []string) ([]players.LookupResult, error) {
	if s.directory == nil {
		return nil, directory.ErrDirectoryUnavailable
	}
	logger := logging.FromContext(ctx, s.logger)

	results := make([]players.LookupResult, 0, len(names))
	for _, name := range names {
		candidates, err := s.directory.FindByFullName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("resolve %q: %w", name, err)
		}

		res := players.FromCandidates(name, candidates)
		if res.Found {
			s.progress.Match(name, res.Identifier())
			if len(candidates) > 1 {
				logging.Debug(logger, "ambiguous name, using first candidate",
					logging.FieldName, name,
					logging.FieldPlayerID, res.PlayerID,
					logging.FieldCandidates, len(candidates),
				)
			}
		} else {
			s.progress.Miss(name)
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *Service) runLogger() *slog.Logger {
	if s.logger == nil {
		return nil
	}
	return s.logger.With(logging.FieldRunID, s.newRunID())
}
