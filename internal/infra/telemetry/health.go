package telemetry

import (
	"sort"
	"sync"
	"time"
)

// HealthReport is the JSON body served on /healthz.
type HealthReport struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	CheckedAt string            `json:"checkedAt"`
}

// HealthTracker aggregates named component states.
type HealthTracker struct {
	mu     sync.RWMutex
	checks map[string]error
}

func NewHealthTracker() *HealthTracker {
	return &HealthTracker{checks: make(map[string]error)}
}

// Set records the state of a component. A nil err marks it healthy.
func (h *HealthTracker) Set(component string, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[component] = err
}

func (h *HealthTracker) Report() HealthReport {
	h.mu.RLock()
	defer h.mu.RUnlock()

	report := HealthReport{
		Status:    "ok",
		Checks:    make(map[string]string, len(h.checks)),
		CheckedAt: time.Now().UTC().Format(time.RFC3339),
	}
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := h.checks[name]; err != nil {
			report.Status = "degraded"
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = "ok"
	}
	return report
}
