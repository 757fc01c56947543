package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"toolbox/internal/domain"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// DataConverter converts documents between JSON, YAML and TOML.
//
// Options: from=json|yaml|toml (detected when empty), to=json|yaml|toml
// (default yaml).
type DataConverter struct{}

func NewDataConverter(domain.ToolDeps) domain.Tool {
	return DataConverter{}
}

func (DataConverter) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.data-converter"
	text, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	from := strings.ToLower(req.Option("from", ""))
	to := strings.ToLower(req.Option("to", formatYAML))
	if from == "" {
		from = detectFormat(text)
	}

	value, err := decodeDocument(from, []byte(text))
	if err != nil {
		return domain.ToolResult{}, domain.InvalidInput(op, "decode %s: %v", from, err)
	}
	out, err := encodeDocument(to, value)
	if err != nil {
		return domain.ToolResult{}, domain.InvalidInput(op, "encode %s: %v", to, err)
	}
	return domain.ToolResult{
		Text: strings.TrimRight(string(out), "\n"),
		Meta: map[string]string{"from": from, "to": to},
	}, nil
}

func detectFormat(text string) string {
	trimmed := strings.TrimSpace(text)
	if json.Valid([]byte(trimmed)) {
		return formatJSON
	}
	var sniffed map[string]any
	if err := toml.Unmarshal([]byte(trimmed), &sniffed); err == nil && len(sniffed) > 0 {
		return formatTOML
	}
	return formatYAML
}

func decodeDocument(format string, data []byte) (any, error) {
	var value any
	switch format {
	case formatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&value); err != nil {
			return nil, err
		}
		return normalizeJSONNumbers(value), nil
	case formatYAML:
		if err := yaml.Unmarshal(data, &value); err != nil {
			return nil, err
		}
		return normalizeYAMLKeys(value), nil
	case formatTOML:
		var table map[string]any
		if err := toml.Unmarshal(data, &table); err != nil {
			return nil, err
		}
		return table, nil
	default:
		return nil, errUnknownFormat(format)
	}
}

func encodeDocument(format string, value any) ([]byte, error) {
	switch format {
	case formatJSON:
		return json.MarshalIndent(value, "", "  ")
	case formatYAML:
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return nil, err
		}
		if err := encoder.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case formatTOML:
		if _, ok := value.(map[string]any); !ok {
			return nil, errTOMLRoot
		}
		return toml.Marshal(value)
	default:
		return nil, errUnknownFormat(format)
	}
}

var errTOMLRoot = errors.New("toml documents must be a table at the top level")

func errUnknownFormat(format string) error {
	return fmt.Errorf("unknown format %q", format)
}

// normalizeJSONNumbers turns json.Number into int64 or float64 so the
// YAML and TOML encoders emit plain numbers.
func normalizeJSONNumbers(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalizeJSONNumbers(item)
		}
		return typed
	case []any:
		for i, item := range typed {
			typed[i] = normalizeJSONNumbers(item)
		}
		return typed
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return n
		}
		if f, err := typed.Float64(); err == nil {
			return f
		}
		return typed.String()
	default:
		return value
	}
}

// normalizeYAMLKeys converts map[any]any produced for non-string keys
// into map[string]any, which JSON and TOML require.
func normalizeYAMLKeys(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalizeYAMLKeys(item)
		}
		return typed
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[toString(key)] = normalizeYAMLKeys(item)
		}
		return out
	case []any:
		for i, item := range typed {
			typed[i] = normalizeYAMLKeys(item)
		}
		return typed
	default:
		return value
	}
}

func toString(value any) string {
	data, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	return strings.Trim(string(data), `"`)
}
