package tools

import (
	"context"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"toolbox/internal/domain"
)

// LuckyWheel picks entries at random from a list.
//
// Input: one entry per line or comma separated. Options: spins (default 1),
// remove (draw without replacement).
type LuckyWheel struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewLuckyWheel(deps domain.ToolDeps) domain.Tool {
	deps = deps.WithDefaults()
	return &LuckyWheel{rng: deps.Rand}
}

func (w *LuckyWheel) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.lucky-wheel"
	entries := wheelEntries(textInput(req))
	if len(entries) < 2 {
		return domain.ToolResult{}, domain.InvalidInput(op, "the wheel needs at least two entries")
	}
	spins, err := intOption(op, req, "spins", 1, 1, 100)
	if err != nil {
		return domain.ToolResult{}, err
	}
	remove := boolOption(req, "remove")
	if remove && spins > len(entries) {
		return domain.ToolResult{}, domain.InvalidInput(op, "cannot draw %d entries from %d without replacement", spins, len(entries))
	}

	w.mu.Lock()
	winners := make([]string, 0, spins)
	for range spins {
		index := w.rng.IntN(len(entries))
		winners = append(winners, entries[index])
		if remove {
			entries = append(entries[:index], entries[index+1:]...)
		}
	}
	w.mu.Unlock()

	fields := make([]domain.ResultField, 0, len(winners))
	for i, winner := range winners {
		fields = append(fields, field("Lượt "+strconv.Itoa(i+1), winner))
	}
	result := fieldsResult(fields...)
	result.Meta = map[string]string{"winner": winners[0]}
	if remove {
		result.Meta["remaining"] = strings.Join(entries, ", ")
	}
	return result, nil
}

func wheelEntries(raw string) []string {
	separator := func(r rune) bool { return r == '\n' || r == ',' || r == ';' }
	if !strings.ContainsAny(raw, "\n,;") {
		separator = func(r rune) bool { return r == ' ' || r == '\t' }
	}
	var entries []string
	for _, part := range strings.FieldsFunc(raw, separator) {
		if part = strings.TrimSpace(part); part != "" {
			entries = append(entries, part)
		}
	}
	return entries
}
