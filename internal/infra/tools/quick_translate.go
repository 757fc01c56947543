package tools

import (
	"context"
	"html"
	"net/url"
	"strings"

	"toolbox/internal/domain"
)

var supportedLanguages = map[string]string{
	"vi": "Tiếng Việt",
	"en": "English",
	"ja": "日本語",
	"ko": "한국어",
	"zh": "中文",
	"fr": "Français",
	"de": "Deutsch",
}

type translateResponse struct {
	ResponseData struct {
		TranslatedText string  `json:"translatedText"`
		Match          float64 `json:"match"`
	} `json:"responseData"`
	ResponseStatus  any    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// QuickTranslate relays text to a MyMemory-compatible translation API.
//
// Options: from (default vi), to (default en).
type QuickTranslate struct {
	http     domain.HTTPDoer
	endpoint string
}

func NewQuickTranslate(deps domain.ToolDeps) domain.Tool {
	deps = deps.WithDefaults()
	return &QuickTranslate{http: deps.HTTP, endpoint: deps.Endpoints.Translate}
}

func (q *QuickTranslate) Run(ctx context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.quick-translate"
	text, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	from := strings.ToLower(req.Option("from", "vi"))
	to := strings.ToLower(req.Option("to", "en"))
	for _, lang := range []string{from, to} {
		if _, ok := supportedLanguages[lang]; !ok {
			return domain.ToolResult{}, domain.InvalidInput(op, "unsupported language %q", lang)
		}
	}
	if from == to {
		return domain.ToolResult{Text: text, Meta: map[string]string{"from": from, "to": to}}, nil
	}

	var resp translateResponse
	query := url.Values{"q": {text}, "langpair": {from + "|" + to}}
	if err := getJSON(ctx, q.http, op, q.endpoint, query, &resp); err != nil {
		return domain.ToolResult{}, err
	}
	if !translateOK(resp.ResponseStatus) {
		detail := resp.ResponseDetails
		if detail == "" {
			detail = "translation failed"
		}
		return domain.ToolResult{}, domain.E(domain.CodeUnavailable, op, detail, domain.ErrUpstreamFailed)
	}
	return domain.ToolResult{
		Text: html.UnescapeString(resp.ResponseData.TranslatedText),
		Meta: map[string]string{"from": from, "to": to},
	}, nil
}

// translateOK accepts the status as either a number or a numeric string;
// the relay has returned both.
func translateOK(status any) bool {
	switch typed := status.(type) {
	case float64:
		return typed == 200
	case string:
		return typed == "200"
	default:
		return false
	}
}
