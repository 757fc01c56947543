package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"toolbox/internal/domain"
)

var qrLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// QRGenerator renders text, URLs, Wi-Fi credentials and contact actions
// as QR codes. The text result is a terminal rendering; the attachment is
// a PNG.
//
// Options: type (text|url|wifi|email|phone|sms), size (px), level (L|M|Q|H),
// ssid, password, security, subject, body.
type QRGenerator struct{}

func NewQRGenerator(domain.ToolDeps) domain.Tool {
	return QRGenerator{}
}

func (QRGenerator) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.qr-generator"
	kind := strings.ToLower(req.Option("type", "text"))
	content, err := qrContent(op, kind, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	size, err := intOption(op, req, "size", 256, 64, 2048)
	if err != nil {
		return domain.ToolResult{}, err
	}
	level, ok := qrLevels[strings.ToUpper(req.Option("level", "M"))]
	if !ok {
		return domain.ToolResult{}, domain.InvalidInput(op, "level must be one of L, M, Q, H")
	}

	code, err := qrcode.New(content, level)
	if err != nil {
		return domain.ToolResult{}, domain.InvalidInput(op, "cannot encode content: %v", err)
	}
	png, err := code.PNG(size)
	if err != nil {
		return domain.ToolResult{}, domain.E(domain.CodeInternal, op, "render png", err)
	}
	return domain.ToolResult{
		Text:           code.ToSmallString(false),
		Attachment:     png,
		AttachmentName: "qr.png",
		Meta: map[string]string{
			"type":    kind,
			"content": content,
			"size":    strconv.Itoa(size),
		},
	}, nil
}

func qrContent(op, kind string, req domain.ToolRequest) (string, error) {
	text := strings.TrimSpace(textInput(req))
	switch kind {
	case "text":
		if text == "" {
			return "", domain.InvalidInput(op, "text is required")
		}
		return text, nil
	case "url":
		if text == "" {
			return "", domain.InvalidInput(op, "url is required")
		}
		if !strings.Contains(text, "://") {
			text = "https://" + text
		}
		parsed, err := url.Parse(text)
		if err != nil || parsed.Host == "" {
			return "", domain.InvalidInput(op, "invalid url %q", text)
		}
		return parsed.String(), nil
	case "wifi":
		ssid := req.Option("ssid", text)
		if ssid == "" {
			return "", domain.InvalidInput(op, "ssid is required")
		}
		security := strings.ToUpper(req.Option("security", "WPA"))
		password := req.Option("password", "")
		if security == "NOPASS" || password == "" {
			return fmt.Sprintf("WIFI:T:nopass;S:%s;;", escapeWiFi(ssid)), nil
		}
		return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", security, escapeWiFi(ssid), escapeWiFi(password)), nil
	case "email":
		if !strings.Contains(text, "@") {
			return "", domain.InvalidInput(op, "a valid email address is required")
		}
		query := url.Values{}
		if subject := req.Option("subject", ""); subject != "" {
			query.Set("subject", subject)
		}
		if body := req.Option("body", ""); body != "" {
			query.Set("body", body)
		}
		if len(query) == 0 {
			return "mailto:" + text, nil
		}
		return "mailto:" + text + "?" + query.Encode(), nil
	case "phone":
		phone := compactPhone(text)
		if phone == "" {
			return "", domain.InvalidInput(op, "a phone number is required")
		}
		return "tel:" + phone, nil
	case "sms":
		phone := compactPhone(text)
		if phone == "" {
			return "", domain.InvalidInput(op, "a phone number is required")
		}
		return fmt.Sprintf("SMSTO:%s:%s", phone, req.Option("body", "")), nil
	default:
		return "", domain.InvalidInput(op, "unknown type %q", kind)
	}
}

func escapeWiFi(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)
	return replacer.Replace(value)
}

func compactPhone(raw string) string {
	var b strings.Builder
	for i, r := range raw {
		if r >= '0' && r <= '9' || (r == '+' && i == 0) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
