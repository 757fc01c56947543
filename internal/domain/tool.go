package domain

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"
)

// Category groups tools in the workspace.
type Category string

const (
	CategoryImagePDF Category = "image_pdf"
	CategoryTextData Category = "text_data"
	CategoryQRCCCD   Category = "qr_cccd"
	CategoryMedia    Category = "media"
	CategoryOther    Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryImagePDF,
	CategoryTextData,
	CategoryQRCCCD,
	CategoryMedia,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryImagePDF: "Ảnh & PDF image pdf",
	CategoryTextData: "Văn bản & Dữ liệu text data",
	CategoryQRCCCD:   "QR & CCCD qr cccd",
	CategoryMedia:    "Đa phương tiện media",
	CategoryOther:    "Tiện ích khác other",
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns the searchable display label of the category.
func (c Category) Label() string {
	return categoryLabels[c]
}

// ToolDescriptor is the static metadata of one tool. Descriptors are
// created once at startup and never mutated.
type ToolDescriptor struct {
	ID        int         `json:"id"`
	Slug      string      `json:"slug"`
	Name      string      `json:"name"`
	ShortDesc string      `json:"shortDesc"`
	Icon      string      `json:"icon,omitempty"`
	Featured  bool        `json:"featured"`
	Category  Category    `json:"categoryId"`
	Keywords  []string    `json:"keywords,omitempty"`
	Usage     string      `json:"usage,omitempty"`
	Factory   ToolFactory `json:"-"`
}

// ScoredMatch pairs a descriptor with its relevance score for one query.
type ScoredMatch struct {
	Descriptor ToolDescriptor `json:"tool"`
	Score      float64        `json:"score"`
}

// ToolRequest carries the user input for a single tool run.
type ToolRequest struct {
	Args    []string          `json:"args,omitempty"`
	Options map[string]string `json:"options,omitempty"`
	Input   []byte            `json:"input,omitempty"`
}

// Option returns the trimmed option value or fallback when unset.
func (r ToolRequest) Option(key, fallback string) string {
	if r.Options == nil {
		return fallback
	}
	value, ok := r.Options[key]
	if !ok || value == "" {
		return fallback
	}
	return value
}

// Arg returns the positional argument at index or fallback.
func (r ToolRequest) Arg(index int, fallback string) string {
	if index < 0 || index >= len(r.Args) {
		return fallback
	}
	return r.Args[index]
}

// ToolResult is what a tool produces. Text is always set; Attachment
// holds binary output such as a rendered QR image.
type ToolResult struct {
	Text           string            `json:"text"`
	Fields         []ResultField     `json:"fields,omitempty"`
	Attachment     []byte            `json:"attachment,omitempty"`
	AttachmentName string            `json:"attachmentName,omitempty"`
	Meta           map[string]string `json:"meta,omitempty"`
}

// ResultField is one labelled value in a tool result.
type ResultField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Tool is a runnable workspace tool.
type Tool interface {
	Run(ctx context.Context, req ToolRequest) (ToolResult, error)
}

// ToolFunc adapts a function to Tool.
type ToolFunc func(ctx context.Context, req ToolRequest) (ToolResult, error)

func (f ToolFunc) Run(ctx context.Context, req ToolRequest) (ToolResult, error) {
	return f(ctx, req)
}

// ToolFactory builds a tool instance for a workspace session.
type ToolFactory func(deps ToolDeps) Tool

// HTTPDoer is the subset of *http.Client used by network-backed tools.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Endpoints are the upstream APIs used by network-backed tools.
type Endpoints struct {
	Currency  string `json:"currency"`
	Geocoding string `json:"geocoding"`
	Weather   string `json:"weather"`
	Translate string `json:"translate"`
}

// ToolDeps are the shared dependencies handed to tool factories.
type ToolDeps struct {
	HTTP      HTTPDoer
	Endpoints Endpoints
	Rand      *rand.Rand
	Now       func() time.Time
}

// WithDefaults fills unset dependencies.
func (d ToolDeps) WithDefaults() ToolDeps {
	if d.HTTP == nil {
		d.HTTP = &http.Client{Timeout: DefaultHTTPTimeoutSeconds * time.Second}
	}
	if d.Endpoints.Currency == "" {
		d.Endpoints.Currency = DefaultCurrencyEndpoint
	}
	if d.Endpoints.Geocoding == "" {
		d.Endpoints.Geocoding = DefaultGeocodingEndpoint
	}
	if d.Endpoints.Weather == "" {
		d.Endpoints.Weather = DefaultWeatherEndpoint
	}
	if d.Endpoints.Translate == "" {
		d.Endpoints.Translate = DefaultTranslateEndpoint
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}
