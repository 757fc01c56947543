package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var vietnameseD = strings.NewReplacer("đ", "d", "Đ", "D")

// Normalize strips combining marks after canonical decomposition, folds the
// Vietnamese đ/Đ to d/D and lower-cases the result.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// transform.Chain keeps state, so each call builds its own chain.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(stripMarks, text)
	if err != nil {
		stripped = text
	}
	return strings.ToLower(vietnameseD.Replace(stripped))
}
