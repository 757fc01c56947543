package tools

import (
	"context"
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"toolbox/internal/domain"
)

// Base64Codec encodes or decodes base64.
//
// Options: mode=encode|decode (default encode), url=true for the URL-safe
// alphabet, raw=true to omit padding.
type Base64Codec struct{}

func NewBase64Codec(domain.ToolDeps) domain.Tool {
	return Base64Codec{}
}

func (Base64Codec) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.base64-codec"
	data := req.Input
	if len(data) == 0 {
		data = []byte(strings.Join(req.Args, " "))
	}
	encoding := base64Encoding(boolOption(req, "url"), boolOption(req, "raw"))

	switch mode := req.Option("mode", "encode"); mode {
	case "encode":
		return domain.ToolResult{Text: encoding.EncodeToString(data)}, nil
	case "decode":
		decoded, err := encoding.DecodeString(strings.TrimSpace(string(data)))
		if err != nil {
			return domain.ToolResult{}, domain.InvalidInput(op, "invalid base64: %v", err)
		}
		if !utf8.Valid(decoded) {
			return domain.ToolResult{
				Text:           "decoded binary data",
				Attachment:     decoded,
				AttachmentName: "decoded.bin",
			}, nil
		}
		return domain.ToolResult{Text: string(decoded)}, nil
	default:
		return domain.ToolResult{}, domain.InvalidInput(op, "unknown mode %q", mode)
	}
}

func base64Encoding(urlSafe, raw bool) *base64.Encoding {
	switch {
	case urlSafe && raw:
		return base64.RawURLEncoding
	case urlSafe:
		return base64.URLEncoding
	case raw:
		return base64.RawStdEncoding
	default:
		return base64.StdEncoding
	}
}
