package metrics

import (
	"sync"
	"time"
)

type directoryStats struct {
	calls           int
	errors          int
	matches         int
	misses          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about directory lookups.
// When telemetry is enabled it also forwards every observation to OpenTelemetry.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*directoryStats
	otel  *otelInstruments
}

// NewRecorder returns an in-memory Recorder with no OpenTelemetry export.
func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*directoryStats),
		otel:  otel,
	}
}

// RecordLookup counts a directory query, its latency and whether it produced candidates.
func (r *Recorder) RecordLookup(directory string, duration time.Duration, candidates int, err error) {
	if r == nil {
		return
	}

	outcome := OutcomeMiss
	switch {
	case err != nil:
		outcome = OutcomeError
	case candidates > 0:
		outcome = OutcomeMatch
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(directory)
	stats.calls++
	stats.lastCallLatency = duration
	switch outcome {
	case OutcomeError:
		stats.errors++
	case OutcomeMatch:
		stats.matches++
	default:
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordLookup(directory, outcome, duration)
	}
}

// RecordRateLimit tracks that a directory response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(directory string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(directory)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(directory, retryAfter)
	}
}

// RecordRun tracks a complete lookup run.
func (r *Recorder) RecordRun(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRun(duration, err)
}

// Snapshot is a copy of the current stats for one directory.
type Snapshot struct {
	Calls           int
	Errors          int
	Matches         int
	Misses          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Snapshot returns the stats recorded for the directory.
func (r *Recorder) Snapshot(directory string) Snapshot {
	if r == nil {
		return Snapshot{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[directory]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Matches:         stats.matches,
		Misses:          stats.misses,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

func (r *Recorder) ensureStatsLocked(directory string) *directoryStats {
	stats, ok := r.stats[directory]
	if !ok {
		stats = &directoryStats{}
		r.stats[directory] = stats
	}
	return stats
}
