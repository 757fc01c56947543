package textmatch

import "strings"

const (
	// MatchThreshold is the minimum score a candidate needs to appear in
	// search results.
	MatchThreshold = 30

	substringScore    = 85
	coverageWeight    = 60
	prefixBonusStep   = 4
	prefixBonusCap    = 12
	orderBonusBase    = 12
	orderBonusPerSpan = 2
	emptyQueryScore   = 1
	maxScore          = 100
)

// Score rates how well query matches candidate on a 0-100 scale.
//
// An empty query scores 1 against everything and an empty candidate scores
// 0 against everything. Whitespace-only input counts as empty.
func Score(query, candidate string) float64 {
	normalizedQuery := strings.TrimSpace(Normalize(query))
	if normalizedQuery == "" {
		return emptyQueryScore
	}
	normalizedCandidate := strings.TrimSpace(Normalize(candidate))
	if normalizedCandidate == "" {
		return 0
	}

	var base float64
	if strings.Contains(normalizedCandidate, normalizedQuery) {
		base = substringScore
	}

	queryTokens := Tokenize(query)
	candidateTokens := Tokenize(candidate)
	if len(queryTokens) == 0 {
		return base
	}

	covered := 0
	prefixed := 0
	for _, token := range queryTokens {
		if indexContaining(candidateTokens, token) >= 0 {
			covered++
		}
		if hasPrefixed(candidateTokens, token) {
			prefixed++
		}
	}
	coverage := float64(covered) / float64(len(queryTokens)) * coverageWeight
	prefixBonus := float64(min(prefixed*prefixBonusStep, prefixBonusCap))

	return clamp(base+coverage+prefixBonus+orderBonus(queryTokens, candidateTokens), 0, maxScore)
}

// orderBonus rewards candidates where the first and last query tokens
// appear close together and in query order. A single-token query uses the
// same token for both ends, giving a span of one.
func orderBonus(queryTokens, candidateTokens []string) float64 {
	first := indexContaining(candidateTokens, queryTokens[0])
	last := indexContaining(candidateTokens, queryTokens[len(queryTokens)-1])
	if first < 0 || last < 0 || last < first {
		return 0
	}
	span := last - first + 1
	return float64(max(0, orderBonusBase-orderBonusPerSpan*span))
}

func indexContaining(tokens []string, needle string) int {
	for i, token := range tokens {
		if strings.Contains(token, needle) {
			return i
		}
	}
	return -1
}

func hasPrefixed(tokens []string, prefix string) bool {
	for _, token := range tokens {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
