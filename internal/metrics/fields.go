package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrDirectory = "directory"
	AttrOutcome   = "outcome"
)

// Lookup outcomes recorded under AttrOutcome.
const (
	OutcomeMatch = "match"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)
