package hashutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
)

func TestToolsETagIsStable(t *testing.T) {
	tools := []domain.ToolDescriptor{
		{ID: 1, Slug: "alpha", Name: "Alpha"},
		{ID: 2, Slug: "beta", Name: "Beta"},
	}

	first := ToolsETag(nil, tools)
	require.Equal(t, first, ToolsETag(nil, tools))
	require.Len(t, first, 34)
	require.Equal(t, byte('"'), first[0])

	reordered := []domain.ToolDescriptor{tools[1], tools[0]}
	require.NotEqual(t, first, ToolsETag(nil, reordered))
}

func TestMatchesETagTracksScores(t *testing.T) {
	descriptor := domain.ToolDescriptor{ID: 1, Slug: "alpha", Name: "Alpha"}

	low := MatchesETag(nil, []domain.ScoredMatch{{Descriptor: descriptor, Score: 40}})
	high := MatchesETag(nil, []domain.ScoredMatch{{Descriptor: descriptor, Score: 90}})
	require.NotEqual(t, low, high)
}
