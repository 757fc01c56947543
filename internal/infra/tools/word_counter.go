package tools

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"toolbox/internal/domain"
	"toolbox/internal/infra/textmatch"
)

const wordsPerMinute = 200

// WordCounter reports word, character, line and sentence counts.
type WordCounter struct{}

func NewWordCounter(domain.ToolDeps) domain.Tool {
	return WordCounter{}
}

func (WordCounter) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	text := textInput(req)
	words := strings.Fields(text)
	unique := make(map[string]struct{})
	for _, token := range textmatch.Tokenize(text) {
		unique[token] = struct{}{}
	}
	nonSpace := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			nonSpace++
		}
	}
	lines := 0
	if text != "" {
		lines = strings.Count(strings.TrimRight(text, "\n"), "\n") + 1
	}
	minutes := int(math.Ceil(float64(len(words)) / wordsPerMinute))

	return fieldsResult(
		field("Từ", strconv.Itoa(len(words))),
		field("Ký tự", strconv.Itoa(utf8.RuneCountInString(text))),
		field("Ký tự (không khoảng trắng)", strconv.Itoa(nonSpace)),
		field("Dòng", strconv.Itoa(lines)),
		field("Câu", strconv.Itoa(countSentences(text))),
		field("Từ khác nhau", strconv.Itoa(len(unique))),
		field("Thời gian đọc (phút)", strconv.Itoa(minutes)),
	), nil
}

// countSentences counts runs of terminal punctuation that follow text.
func countSentences(text string) int {
	count := 0
	pending := false
	for _, r := range text {
		switch {
		case r == '.' || r == '!' || r == '?' || r == '…':
			if pending {
				count++
				pending = false
			}
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			pending = true
		}
	}
	if pending {
		count++
	}
	return count
}
