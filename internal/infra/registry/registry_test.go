package registry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
	"toolbox/internal/infra/tools"
)

type recordingMetrics struct {
	domain.NoopMetrics
	mu       sync.Mutex
	outcomes []domain.SearchOutcome
	results  []int
}

func (m *recordingMetrics) ObserveSearch(outcome domain.SearchOutcome, results int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
	m.results = append(m.results, results)
}

func stubFactory(domain.ToolDeps) domain.Tool {
	return domain.ToolFunc(func(context.Context, domain.ToolRequest) (domain.ToolResult, error) {
		return domain.ToolResult{Text: "ok"}, nil
	})
}

func descriptor(id int, slug, name string, featured bool) domain.ToolDescriptor {
	return domain.ToolDescriptor{
		ID:       id,
		Slug:     slug,
		Name:     name,
		Featured: featured,
		Category: domain.CategoryOther,
		Factory:  stubFactory,
	}
}

func newBuiltin(t *testing.T) *Registry {
	t.Helper()
	reg, err := New(tools.Builtin(), Options{})
	require.NoError(t, err)
	return reg
}

func TestFindBySlug(t *testing.T) {
	reg := newBuiltin(t)

	desc, err := reg.FindBySlug("lucky-wheel")
	require.NoError(t, err)
	require.Equal(t, 501, desc.ID)

	_, err = reg.FindBySlug("does-not-exist")
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrToolNotFound))
	require.True(t, domain.IsNotFound(err))
}

func TestSearchRanksQRGeneratorAbovePDF(t *testing.T) {
	reg := newBuiltin(t)

	matches := reg.SearchScored("qr")
	require.NotEmpty(t, matches)
	require.Equal(t, "qr-generator", matches[0].Descriptor.Slug)
	for _, match := range matches {
		require.NotEqual(t, "pdf-text", match.Descriptor.Slug)
		require.GreaterOrEqual(t, match.Score, float64(domain.SearchThreshold))
	}
}

func TestSearchMatchesWithoutDiacritics(t *testing.T) {
	reg := newBuiltin(t)

	results := reg.Search("vong quay")
	require.NotEmpty(t, results)
	require.Equal(t, "lucky-wheel", results[0].Slug)

	results = reg.Search("thời tiết")
	require.NotEmpty(t, results)
	require.Equal(t, "weather", results[0].Slug)

	results = reg.Search("doi tien")
	require.NotEmpty(t, results)
	require.Equal(t, "currency-converter", results[0].Slug)
}

func TestSearchIsSortedAndStable(t *testing.T) {
	reg, err := New([]domain.ToolDescriptor{
		descriptor(1, "alpha-tool", "Alpha Tool", false),
		descriptor(2, "beta-tool", "Beta Tool", false),
		descriptor(3, "tool", "Tool", false),
		descriptor(4, "gamma-tool", "Gamma Tool", false),
	}, Options{})
	require.NoError(t, err)

	matches := reg.SearchScored("gamma tool")
	slugs := make([]string, 0, len(matches))
	for i, match := range matches {
		slugs = append(slugs, match.Descriptor.Slug)
		if i > 0 {
			require.GreaterOrEqual(t, matches[i-1].Score, match.Score)
		}
	}
	require.Equal(t, []string{"gamma-tool", "alpha-tool", "beta-tool", "tool"}, slugs)
	require.Equal(t, float64(100), matches[0].Score)
	require.InDelta(t, 34, matches[1].Score, 1e-9)
	require.Equal(t, matches[1].Score, matches[3].Score)
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	metrics := &recordingMetrics{}
	reg, err := New(tools.Builtin(), Options{Metrics: metrics})
	require.NoError(t, err)

	require.Empty(t, reg.Search(""))
	require.Empty(t, reg.Search("   "))
	require.Empty(t, reg.Search("zzzzqqq"))
	require.Equal(t, []domain.SearchOutcome{
		domain.SearchOutcomeEmpty,
		domain.SearchOutcomeEmpty,
		domain.SearchOutcomeMiss,
	}, metrics.outcomes)

	reg.Search("json")
	require.Equal(t, domain.SearchOutcomeHit, metrics.outcomes[3])
	require.Positive(t, metrics.results[3])
}

func TestListFeatured(t *testing.T) {
	reg, err := New([]domain.ToolDescriptor{
		descriptor(1, "a", "A", true),
		descriptor(2, "b", "B", false),
		descriptor(3, "c", "C", true),
		descriptor(4, "d", "D", true),
	}, Options{})
	require.NoError(t, err)

	slugs := func(list []domain.ToolDescriptor) []string {
		out := make([]string, 0, len(list))
		for _, d := range list {
			out = append(out, d.Slug)
		}
		return out
	}
	require.Equal(t, []string{"a", "c", "d"}, slugs(reg.ListFeatured(0)))
	require.Equal(t, []string{"a", "c"}, slugs(reg.ListFeatured(2)))
	require.Equal(t, []string{"a", "c", "d"}, slugs(reg.ListFeatured(10)))

	builtin := newBuiltin(t)
	require.Len(t, builtin.ListFeatured(domain.DefaultFeaturedLimit), domain.DefaultFeaturedLimit)
}

func TestListAndByCategory(t *testing.T) {
	reg := newBuiltin(t)
	require.Equal(t, 19, reg.Len())

	list := reg.List()
	list[0].Name = "mutated"
	first, err := reg.FindBySlug(list[0].Slug)
	require.NoError(t, err)
	require.NotEqual(t, "mutated", first.Name)

	qr := reg.ByCategory(domain.CategoryQRCCCD)
	require.Len(t, qr, 2)
	require.Equal(t, "qr-generator", qr[0].Slug)
	require.Equal(t, "cccd-reader", qr[1].Slug)
	require.Empty(t, reg.ByCategory(domain.Category("unknown")))
}

func TestValidateRejectsInconsistentDescriptors(t *testing.T) {
	cases := map[string][]domain.ToolDescriptor{
		"duplicate slug": {descriptor(1, "a", "A", false), descriptor(2, "a", "A2", false)},
		"duplicate id":   {descriptor(1, "a", "A", false), descriptor(1, "b", "B", false)},
		"unsafe slug":    {descriptor(1, "Not Safe", "A", false)},
		"trailing dash":  {descriptor(1, "a-", "A", false)},
		"zero id":        {descriptor(0, "a", "A", false)},
		"blank name":     {descriptor(1, "a", " ", false)},
		"no factory": {{
			ID: 1, Slug: "a", Name: "A", Category: domain.CategoryOther,
		}},
		"bad category": {{
			ID: 1, Slug: "a", Name: "A", Category: "misc", Factory: stubFactory,
		}},
	}
	for name, descriptors := range cases {
		_, err := New(descriptors, Options{})
		require.Error(t, err, name)
		code, ok := domain.CodeFrom(err)
		require.True(t, ok, name)
		require.Equal(t, domain.CodeInvalidArgument, code, name)
	}
}

func TestConcurrentSearch(t *testing.T) {
	reg := newBuiltin(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				require.NotEmpty(t, reg.Search("json"))
			}
		}()
	}
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("concurrent search did not finish")
	}
}
