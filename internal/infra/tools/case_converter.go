package tools

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"toolbox/internal/domain"
	"toolbox/internal/infra/textmatch"
)

var caseModes = []string{"upper", "lower", "title", "sentence", "camel", "pascal", "snake", "kebab", "constant", "plain"}

// CaseConverter rewrites text in a chosen letter case.
//
// Options: mode (see caseModes, default title). camel, pascal, snake, kebab
// and constant fold Vietnamese diacritics; plain only strips them.
type CaseConverter struct{}

func NewCaseConverter(domain.ToolDeps) domain.Tool {
	return CaseConverter{}
}

func (CaseConverter) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.case-converter"
	text, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	mode := strings.ToLower(req.Option("mode", "title"))
	out, ok := convertCase(mode, text)
	if !ok {
		return domain.ToolResult{}, domain.InvalidInput(op, "unknown mode %q, expected one of %s", mode, strings.Join(caseModes, ", "))
	}
	return domain.ToolResult{Text: out, Meta: map[string]string{"mode": mode}}, nil
}

func convertCase(mode, text string) (string, bool) {
	switch mode {
	case "upper":
		return cases.Upper(language.Vietnamese).String(text), true
	case "lower":
		return cases.Lower(language.Vietnamese).String(text), true
	case "title":
		return cases.Title(language.Vietnamese).String(text), true
	case "sentence":
		return sentenceCase(text), true
	case "plain":
		return textmatch.Normalize(text), true
	}

	tokens := textmatch.Tokenize(text)
	switch mode {
	case "camel", "pascal":
		var b strings.Builder
		for i, token := range tokens {
			if i == 0 && mode == "camel" {
				b.WriteString(token)
				continue
			}
			b.WriteString(capitalize(token))
		}
		return b.String(), true
	case "snake":
		return strings.Join(tokens, "_"), true
	case "kebab":
		return strings.Join(tokens, "-"), true
	case "constant":
		return strings.ToUpper(strings.Join(tokens, "_")), true
	default:
		return "", false
	}
}

func sentenceCase(text string) string {
	lower := cases.Lower(language.Vietnamese).String(text)
	var b strings.Builder
	b.Grow(len(lower))
	capitalizeNext := true
	for _, r := range lower {
		if capitalizeNext && unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
			continue
		}
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			capitalizeNext = true
		}
		b.WriteRune(r)
	}
	return b.String()
}

func capitalize(token string) string {
	r, size := utf8.DecodeRuneInString(token)
	if r == utf8.RuneError {
		return token
	}
	return string(unicode.ToUpper(r)) + token[size:]
}
