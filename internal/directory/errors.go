package directory

import (
	"errors"
	"fmt"
	"time"
)

// ErrDirectoryUnavailable is returned when no directory is configured.
var ErrDirectoryUnavailable = errors.New("directory unavailable")

// RateLimitError captures rate limit responses from upstream directories.
// Lookups do not retry; the error ends the run.
type RateLimitError struct {
	Directory  string
	StatusCode int
	RetryAfter time.Duration
	Remaining  string
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "directory rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}
