package tools

import (
	"context"
	"strings"

	"toolbox/internal/domain"
	"toolbox/internal/infra/textmatch"
)

// SlugGenerator turns a title into a URL-safe slug.
//
// Options: separator (default "-"), maxLength (0 = unlimited).
type SlugGenerator struct{}

func NewSlugGenerator(domain.ToolDeps) domain.Tool {
	return SlugGenerator{}
}

func (SlugGenerator) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.slug-generator"
	text, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	separator := req.Option("separator", "-")
	if separator != "-" && separator != "_" && separator != "." {
		return domain.ToolResult{}, domain.InvalidInput(op, "separator must be one of - _ .")
	}
	maxLength, err := intOption(op, req, "maxLength", 0, 0, 512)
	if err != nil {
		return domain.ToolResult{}, err
	}

	tokens := textmatch.Tokenize(text)
	if len(tokens) == 0 {
		return domain.ToolResult{}, domain.InvalidInput(op, "input has no letters or digits")
	}
	slug := strings.Join(tokens, separator)
	if maxLength > 0 && len(slug) > maxLength {
		slug = strings.TrimRight(slug[:maxLength], separator)
	}
	return domain.ToolResult{Text: slug}, nil
}
