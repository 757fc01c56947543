package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/tidwall/jsonc"

	"toolbox/internal/domain"
)

// JSONFormatter pretty-prints, minifies or validates JSON. Comments and
// trailing commas are accepted and dropped.
//
// Options: mode=pretty|minify|validate (default pretty), indent=0..8.
type JSONFormatter struct{}

func NewJSONFormatter(domain.ToolDeps) domain.Tool {
	return JSONFormatter{}
}

func (JSONFormatter) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.json-formatter"
	text, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	raw := jsonc.ToJSON([]byte(strings.TrimSpace(text)))
	if !json.Valid(raw) {
		var sniffed any
		decodeErr := json.Unmarshal(raw, &sniffed)
		return domain.ToolResult{}, domain.InvalidInput(op, "invalid json: %v", decodeErr)
	}

	var out bytes.Buffer
	switch mode := req.Option("mode", "pretty"); mode {
	case "pretty":
		indent, err := intOption(op, req, "indent", 2, 0, 8)
		if err != nil {
			return domain.ToolResult{}, err
		}
		if err := json.Indent(&out, raw, "", strings.Repeat(" ", indent)); err != nil {
			return domain.ToolResult{}, domain.InvalidInput(op, "invalid json: %v", err)
		}
	case "minify":
		if err := json.Compact(&out, raw); err != nil {
			return domain.ToolResult{}, domain.InvalidInput(op, "invalid json: %v", err)
		}
	case "validate":
		return domain.ToolResult{Text: "valid JSON", Meta: map[string]string{"valid": "true"}}, nil
	default:
		return domain.ToolResult{}, domain.InvalidInput(op, "unknown mode %q", mode)
	}
	return domain.ToolResult{Text: out.String()}, nil
}
