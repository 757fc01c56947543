package tools

import (
	"strconv"
	"strings"

	"toolbox/internal/domain"
)

// textInput returns the request body when present, otherwise the
// positional arguments joined by spaces.
func textInput(req domain.ToolRequest) string {
	if len(req.Input) > 0 {
		return string(req.Input)
	}
	return strings.Join(req.Args, " ")
}

func requireText(op string, req domain.ToolRequest) (string, error) {
	text := textInput(req)
	if strings.TrimSpace(text) == "" {
		return "", domain.InvalidInput(op, "input text is required")
	}
	return text, nil
}

func intOption(op string, req domain.ToolRequest, key string, fallback, low, high int) (int, error) {
	raw := req.Option(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.InvalidInput(op, "option %s must be an integer", key)
	}
	if value < low || value > high {
		return 0, domain.InvalidInput(op, "option %s must be between %d and %d", key, low, high)
	}
	return value, nil
}

func boolOption(req domain.ToolRequest, key string) bool {
	switch strings.ToLower(strings.TrimSpace(req.Option(key, ""))) {
	case "1", "true", "yes", "on", "y":
		return true
	default:
		return false
	}
}

func parseNumber(op, label, raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "_", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, domain.InvalidInput(op, "%s %q is not a number", label, raw)
	}
	return value, nil
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatRounded(value float64, decimals int) string {
	formatted := strconv.FormatFloat(value, 'f', decimals, 64)
	if strings.Contains(formatted, ".") {
		formatted = strings.TrimRight(strings.TrimRight(formatted, "0"), ".")
	}
	return formatted
}

func fieldsText(fields []domain.ResultField) string {
	width := 0
	for _, field := range fields {
		width = max(width, len([]rune(field.Label)))
	}
	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(field.Label)
		b.WriteString(":")
		b.WriteString(strings.Repeat(" ", width-len([]rune(field.Label))+1))
		b.WriteString(field.Value)
	}
	return b.String()
}

// fieldsResult builds a result whose text is the aligned field listing.
func fieldsResult(fields ...domain.ResultField) domain.ToolResult {
	return domain.ToolResult{Text: fieldsText(fields), Fields: fields}
}

func field(label, value string) domain.ResultField {
	return domain.ResultField{Label: label, Value: value}
}
