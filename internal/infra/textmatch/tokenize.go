package textmatch

import (
	"strings"
	"unicode"
)

// Tokenize normalizes text and splits it into lowercase ASCII alphanumeric
// tokens. Every other rune acts as a separator. Text without tokens yields
// nil.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case unicode.IsSpace(r):
			return r
		default:
			return ' '
		}
	}, normalized)
	tokens := strings.Fields(cleaned)
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}
