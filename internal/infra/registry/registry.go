package registry

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
	"toolbox/internal/infra/textmatch"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Registry is the immutable slug-indexed tool table. It is safe for
// concurrent reads.
type Registry struct {
	logger      *zap.Logger
	metrics     domain.Metrics
	descriptors []domain.ToolDescriptor
	haystacks   []string
	bySlug      map[string]int
}

// Options configures a Registry.
type Options struct {
	Logger  *zap.Logger
	Metrics domain.Metrics
}

// New validates descriptors and builds the registry. Registry order is the
// order of descriptors and is preserved by every listing.
func New(descriptors []domain.ToolDescriptor, opts Options) (*Registry, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = domain.NoopMetrics{}
	}
	if err := Validate(descriptors); err != nil {
		return nil, err
	}

	r := &Registry{
		logger:      logger.Named("registry"),
		metrics:     metrics,
		descriptors: slices.Clone(descriptors),
		haystacks:   make([]string, len(descriptors)),
		bySlug:      make(map[string]int, len(descriptors)),
	}
	for i, descriptor := range r.descriptors {
		r.bySlug[descriptor.Slug] = i
		r.haystacks[i] = HaystackOf(descriptor)
	}
	r.logger.Debug("registry loaded", zap.Int("tools", len(r.descriptors)))
	return r, nil
}

// Validate checks that descriptors form a consistent registry.
func Validate(descriptors []domain.ToolDescriptor) error {
	const op = "registry.validate"
	var problems []string
	slugs := make(map[string]struct{}, len(descriptors))
	ids := make(map[int]struct{}, len(descriptors))
	for i, descriptor := range descriptors {
		label := fmt.Sprintf("tool[%d]", i)
		if descriptor.Slug != "" {
			label = descriptor.Slug
		}
		if !slugPattern.MatchString(descriptor.Slug) {
			problems = append(problems, fmt.Sprintf("%s: slug %q is not url-safe", label, descriptor.Slug))
		}
		if _, dup := slugs[descriptor.Slug]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate slug", label))
		}
		slugs[descriptor.Slug] = struct{}{}
		if descriptor.ID <= 0 {
			problems = append(problems, fmt.Sprintf("%s: id must be positive", label))
		}
		if _, dup := ids[descriptor.ID]; dup {
			problems = append(problems, fmt.Sprintf("%s: duplicate id %d", label, descriptor.ID))
		}
		ids[descriptor.ID] = struct{}{}
		if strings.TrimSpace(descriptor.Name) == "" {
			problems = append(problems, fmt.Sprintf("%s: name is required", label))
		}
		if !descriptor.Category.Valid() {
			problems = append(problems, fmt.Sprintf("%s: unknown category %q", label, descriptor.Category))
		}
		if descriptor.Factory == nil {
			problems = append(problems, fmt.Sprintf("%s: factory is required", label))
		}
	}
	if len(problems) > 0 {
		return domain.E(domain.CodeInvalidArgument, op, strings.Join(problems, "; "), nil)
	}
	return nil
}

// HaystackOf builds the searchable text of a descriptor.
func HaystackOf(descriptor domain.ToolDescriptor) string {
	return textmatch.Haystack(textmatch.HaystackFields{
		Name:          descriptor.Name,
		Slug:          descriptor.Slug,
		ShortDesc:     descriptor.ShortDesc,
		Keywords:      descriptor.Keywords,
		CategoryLabel: descriptor.Category.Label(),
	})
}

// FindBySlug resolves a slug. Unknown slugs return a NOT_FOUND error
// wrapping domain.ErrToolNotFound.
func (r *Registry) FindBySlug(slug string) (domain.ToolDescriptor, error) {
	index, ok := r.bySlug[slug]
	if !ok {
		return domain.ToolDescriptor{}, domain.E(domain.CodeNotFound, "registry.find", fmt.Sprintf("no tool with slug %q", slug), domain.ErrToolNotFound)
	}
	return r.descriptors[index], nil
}

// List returns every descriptor in registry order.
func (r *Registry) List() []domain.ToolDescriptor {
	return slices.Clone(r.descriptors)
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// ListFeatured returns featured tools in registry order, truncated to
// limit. A limit of zero or less returns all featured tools.
func (r *Registry) ListFeatured(limit int) []domain.ToolDescriptor {
	out := make([]domain.ToolDescriptor, 0)
	for _, descriptor := range r.descriptors {
		if !descriptor.Featured {
			continue
		}
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, descriptor)
	}
	return out
}

// ByCategory returns the tools of one category in registry order.
func (r *Registry) ByCategory(category domain.Category) []domain.ToolDescriptor {
	out := make([]domain.ToolDescriptor, 0)
	for _, descriptor := range r.descriptors {
		if descriptor.Category == category {
			out = append(out, descriptor)
		}
	}
	return out
}

// Search returns descriptors whose score reaches the match threshold,
// best first. Equal scores keep registry order.
func (r *Registry) Search(query string) []domain.ToolDescriptor {
	matches := r.SearchScored(query)
	out := make([]domain.ToolDescriptor, len(matches))
	for i, match := range matches {
		out[i] = match.Descriptor
	}
	return out
}

// SearchScored is Search with the score of every match.
func (r *Registry) SearchScored(query string) []domain.ScoredMatch {
	matches := make([]domain.ScoredMatch, 0)
	for i, descriptor := range r.descriptors {
		score := textmatch.Score(query, r.haystacks[i])
		if score < textmatch.MatchThreshold {
			continue
		}
		matches = append(matches, domain.ScoredMatch{Descriptor: descriptor, Score: score})
	}
	slices.SortStableFunc(matches, func(a, b domain.ScoredMatch) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	outcome := domain.SearchOutcomeHit
	switch {
	case strings.TrimSpace(query) == "":
		outcome = domain.SearchOutcomeEmpty
	case len(matches) == 0:
		outcome = domain.SearchOutcomeMiss
	}
	r.metrics.ObserveSearch(outcome, len(matches))
	r.logger.Debug("search evaluated",
		telemetry.QueryField(query),
		zap.Int("matches", len(matches)),
		zap.String("outcome", string(outcome)),
	)
	return matches
}
