package app

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/recent"
	"toolbox/internal/infra/registry"
	"toolbox/internal/infra/telemetry"
)

// ViewMode tells a front end which list to render.
type ViewMode string

const (
	// ViewDefault shows featured and recent tools; the query is blank.
	ViewDefault ViewMode = "default"
	// ViewSearch shows ranked matches for the current query.
	ViewSearch ViewMode = "search"
)

// View is a snapshot of what the workspace shows for its current query.
type View struct {
	Mode     ViewMode                `json:"mode"`
	Query    string                  `json:"query,omitempty"`
	Featured []domain.ToolDescriptor `json:"featured,omitempty"`
	Recent   []domain.ToolDescriptor `json:"recent,omitempty"`
	Matches  []domain.ScoredMatch    `json:"matches,omitempty"`
}

// Workspace owns the search query and hosts the tool a user opens. Front
// ends (CLI, shell, HTTP API) drive it; it is safe for concurrent use.
type Workspace struct {
	mu            sync.Mutex
	query         string
	featuredLimit int

	registry *registry.Registry
	tracker  *recent.Tracker
	deps     domain.ToolDeps
	metrics  domain.Metrics
	logger   *zap.Logger
}

type WorkspaceOptions struct {
	Registry      *registry.Registry
	Tracker       *recent.Tracker
	Deps          domain.ToolDeps
	FeaturedLimit int
	Metrics       domain.Metrics
	Logger        *zap.Logger
}

func NewWorkspace(opts WorkspaceOptions) *Workspace {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = domain.NoopMetrics{}
	}
	return &Workspace{
		featuredLimit: opts.FeaturedLimit,
		registry:      opts.Registry,
		tracker:       opts.Tracker,
		deps:          opts.Deps.WithDefaults(),
		metrics:       metrics,
		logger:        logger.Named("workspace"),
	}
}

// SetQuery replaces the current query.
func (w *Workspace) SetQuery(query string) {
	w.mu.Lock()
	w.query = query
	w.mu.Unlock()
}

func (w *Workspace) Query() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.query
}

// Reset clears the query, returning the workspace to its default view.
func (w *Workspace) Reset() {
	w.SetQuery("")
}

// SetFeaturedLimit changes how many featured tools the default view lists.
func (w *Workspace) SetFeaturedLimit(limit int) {
	w.mu.Lock()
	w.featuredLimit = limit
	w.mu.Unlock()
}

// Results evaluates the current query. A blank query yields the default
// view; anything else yields ranked matches, which may be empty.
func (w *Workspace) Results() View {
	w.mu.Lock()
	query := w.query
	limit := w.featuredLimit
	w.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		return View{
			Mode:     ViewDefault,
			Featured: w.registry.ListFeatured(limit),
			Recent:   w.Recent(),
		}
	}
	return View{
		Mode:    ViewSearch,
		Query:   query,
		Matches: w.registry.SearchScored(query),
	}
}

// Search ranks tools for query without touching the workspace query.
func (w *Workspace) Search(query string) []domain.ScoredMatch {
	return w.registry.SearchScored(query)
}

// Featured lists featured tools. A limit of zero or less uses the
// configured limit.
func (w *Workspace) Featured(limit int) []domain.ToolDescriptor {
	if limit <= 0 {
		w.mu.Lock()
		limit = w.featuredLimit
		w.mu.Unlock()
	}
	return w.registry.ListFeatured(limit)
}

func (w *Workspace) Tools() []domain.ToolDescriptor {
	return w.registry.List()
}

func (w *Workspace) ToolsInCategory(category domain.Category) []domain.ToolDescriptor {
	return w.registry.ByCategory(category)
}

// Find resolves a slug without opening the tool.
func (w *Workspace) Find(slug string) (domain.ToolDescriptor, error) {
	return w.registry.FindBySlug(slug)
}

// Recent resolves the recent slugs to descriptors, most recent first.
// Slugs that are no longer registered are skipped.
func (w *Workspace) Recent() []domain.ToolDescriptor {
	slugs := w.tracker.List()
	out := make([]domain.ToolDescriptor, 0, len(slugs))
	for _, slug := range slugs {
		descriptor, err := w.registry.FindBySlug(slug)
		if err != nil {
			continue
		}
		out = append(out, descriptor)
	}
	return out
}

// Visit records slug as recently used without opening it.
func (w *Workspace) Visit(ctx context.Context, slug string) error {
	if _, err := w.registry.FindBySlug(slug); err != nil {
		return err
	}
	if err := w.tracker.Visit(ctx, slug); err != nil {
		return err
	}
	w.logger.Debug("recent visit recorded", telemetry.EventField(telemetry.EventRecentVisit), telemetry.SlugField(slug))
	return nil
}

func (w *Workspace) ClearRecent(ctx context.Context) error {
	if err := w.tracker.Clear(ctx); err != nil {
		return err
	}
	w.logger.Info("recent tools cleared", telemetry.EventField(telemetry.EventRecentClear))
	return nil
}

// Open starts a session for slug and clears the query.
func (w *Workspace) Open(ctx context.Context, slug string) (*Session, error) {
	session, err := w.Start(ctx, slug)
	if err != nil {
		return nil, err
	}
	w.Reset()
	return session, nil
}

// Start resolves slug, records the visit and builds a fresh tool instance
// while leaving the query untouched. An unknown slug yields a NOT_FOUND
// error. Failing to persist the visit is logged and does not prevent
// starting the tool.
func (w *Workspace) Start(ctx context.Context, slug string) (*Session, error) {
	descriptor, err := w.registry.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if err := w.tracker.Visit(ctx, slug); err != nil {
		w.logger.Warn("recent visit not persisted", telemetry.SlugField(slug), zap.Error(err))
	}
	w.metrics.ObserveToolOpen(slug)
	w.logger.Debug("tool opened", telemetry.EventField(telemetry.EventToolOpen), telemetry.SlugField(slug))

	tool := descriptor.Factory(w.deps)
	return newSession(descriptor, tool, w.metrics, w.logger), nil
}
