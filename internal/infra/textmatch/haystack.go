package textmatch

import "strings"

// HaystackFields are the searchable fields of a tool, in precedence order.
// Optional fields may be left empty.
type HaystackFields struct {
	Name          string
	Slug          string
	ShortDesc     string
	Keywords      []string
	CategoryLabel string
}

// Haystack joins the non-empty fields in precedence order: name, slug,
// short description, keywords, category label.
func Haystack(fields HaystackFields) string {
	parts := make([]string, 0, 4+len(fields.Keywords))
	appendPart := func(value string) {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	appendPart(fields.Name)
	appendPart(fields.Slug)
	appendPart(fields.ShortDesc)
	for _, keyword := range fields.Keywords {
		appendPart(keyword)
	}
	appendPart(fields.CategoryLabel)
	return strings.Join(parts, " ")
}
