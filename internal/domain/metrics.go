package domain

import "time"

// SearchOutcome labels the result of one search evaluation.
type SearchOutcome string

const (
	SearchOutcomeHit   SearchOutcome = "hit"
	SearchOutcomeMiss  SearchOutcome = "miss"
	SearchOutcomeEmpty SearchOutcome = "empty"
)

// RunStatus labels the outcome of a tool run.
type RunStatus string

const (
	RunStatusSuccess RunStatus = "success"
	RunStatusError   RunStatus = "error"
)

// Metrics records workspace activity.
type Metrics interface {
	ObserveSearch(outcome SearchOutcome, results int)
	ObserveToolOpen(slug string)
	ObserveToolRun(slug string, status RunStatus, duration time.Duration)
	ObserveRecentWrite(err error)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) ObserveSearch(SearchOutcome, int) {}
func (NoopMetrics) ObserveToolOpen(string) {}
func (NoopMetrics) ObserveToolRun(string, RunStatus, time.Duration) {}
func (NoopMetrics) ObserveRecentWrite(error) {}

var _ Metrics = NoopMetrics{}
