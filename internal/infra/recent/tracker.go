package recent

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
)

// Tracker keeps the most-recent-first list of visited tool slugs. The list
// never holds duplicates and never exceeds its limit.
type Tracker struct {
	mu      sync.Mutex
	store   domain.KeyValueStore
	key     string
	limit   int
	slugs   []string
	logger  *zap.Logger
	metrics domain.Metrics
}

// Options configures a Tracker. Zero values use the package defaults.
type Options struct {
	Key     string
	Limit   int
	Logger  *zap.Logger
	Metrics domain.Metrics
}

func NewTracker(store domain.KeyValueStore, opts Options) *Tracker {
	key := opts.Key
	if key == "" {
		key = domain.RecentToolsKey
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = domain.RecentToolsLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = domain.NoopMetrics{}
	}
	return &Tracker{
		store:   store,
		key:     key,
		limit:   limit,
		slugs:   []string{},
		logger:  logger.Named("recent"),
		metrics: metrics,
	}
}

// Load replaces the in-memory list with the persisted one. Missing,
// unreadable or malformed data yields an empty list; nothing is returned
// to the caller.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.slugs = []string{}
	raw, err := t.store.Get(ctx, t.key)
	if err != nil {
		t.logger.Warn("recent tools unreadable", telemetry.EventField(telemetry.EventRecentCorrupt), zap.Error(err))
		return
	}
	if len(raw) == 0 {
		return
	}
	var stored []string
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.logger.Warn("recent tools malformed", telemetry.EventField(telemetry.EventRecentCorrupt), zap.Error(err))
		return
	}
	t.slugs = sanitize(stored, t.limit)
}

// Visit moves slug to the front. Visiting the current most-recent slug is
// a no-op and performs no write.
func (t *Tracker) Visit(ctx context.Context, slug string) error {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return domain.E(domain.CodeInvalidArgument, "recent.visit", "slug is required", nil)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.slugs) > 0 && t.slugs[0] == slug {
		return nil
	}
	next := make([]string, 0, t.limit)
	next = append(next, slug)
	for _, existing := range t.slugs {
		if existing == slug {
			continue
		}
		if len(next) >= t.limit {
			break
		}
		next = append(next, existing)
	}
	t.slugs = next
	t.logger.Debug("tool visited", telemetry.EventField(telemetry.EventRecentVisit), telemetry.SlugField(slug))
	return t.persist(ctx)
}

// List returns a copy of the list, most recent first.
func (t *Tracker) List() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.slugs)
}

// Clear empties the list and persists the empty state.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.slugs = []string{}
	t.logger.Debug("recent tools cleared", telemetry.EventField(telemetry.EventRecentClear))
	return t.persist(ctx)
}

func (t *Tracker) persist(ctx context.Context) error {
	data, err := json.Marshal(t.slugs)
	if err == nil {
		err = t.store.Put(ctx, t.key, data)
	}
	t.metrics.ObserveRecentWrite(err)
	if err != nil {
		t.logger.Warn("persist recent tools failed", zap.Error(err))
		return domain.Wrap(domain.CodeUnavailable, "recent.persist", err)
	}
	return nil
}

func sanitize(stored []string, limit int) []string {
	out := make([]string, 0, min(len(stored), limit))
	seen := make(map[string]struct{}, len(stored))
	for _, slug := range stored {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
		if len(out) == limit {
			break
		}
	}
	return out
}
