package tools

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"toolbox/internal/domain"
)

const (
	maxPDFBytes = 20 << 20
	maxPDFPages = 50
)

// PDFText extracts the plain text of a PDF document.
//
// Options: pages (e.g. "1-3,7"; all pages when unset).
type PDFText struct{}

func NewPDFText(domain.ToolDeps) domain.Tool {
	return PDFText{}
}

func (PDFText) Run(ctx context.Context, req domain.ToolRequest) (result domain.ToolResult, err error) {
	const op = "tools.pdf-text"
	if len(req.Input) == 0 {
		return domain.ToolResult{}, domain.InvalidInput(op, "a PDF document is required")
	}
	if len(req.Input) > maxPDFBytes {
		return domain.ToolResult{}, domain.InvalidInput(op, "document is larger than %d bytes", maxPDFBytes)
	}

	// The parser panics on some malformed documents.
	defer func() {
		if recovered := recover(); recovered != nil {
			result = domain.ToolResult{}
			err = domain.InvalidInput(op, "malformed PDF: %v", recovered)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(req.Input), int64(len(req.Input)))
	if err != nil {
		return domain.ToolResult{}, domain.InvalidInput(op, "cannot read PDF: %v", err)
	}
	total := reader.NumPage()
	selected, err := selectPages(op, req.Option("pages", ""), total)
	if err != nil {
		return domain.ToolResult{}, err
	}

	var out strings.Builder
	extracted := 0
	for _, number := range selected {
		if err := ctx.Err(); err != nil {
			return domain.ToolResult{}, domain.Wrap(domain.CodeCanceled, op, err)
		}
		page := reader.Page(number)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if out.Len() > 0 {
			out.WriteString("\n\n")
		}
		fmt.Fprintf(&out, "--- Trang %d ---\n%s", number, text)
		extracted++
	}

	return domain.ToolResult{
		Text: out.String(),
		Meta: map[string]string{
			"pages":     strconv.Itoa(total),
			"selected":  strconv.Itoa(len(selected)),
			"extracted": strconv.Itoa(extracted),
		},
	}, nil
}

// selectPages expands a page range list such as "1-3,7" into sorted,
// unique page numbers. An empty selection means every page.
func selectPages(op, raw string, total int) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		pages := make([]int, 0, min(total, maxPDFPages))
		for i := 1; i <= total && i <= maxPDFPages; i++ {
			pages = append(pages, i)
		}
		return pages, nil
	}

	seen := make(map[int]struct{})
	var pages []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		low, high, found := strings.Cut(part, "-")
		first, err := strconv.Atoi(strings.TrimSpace(low))
		if err != nil {
			return nil, domain.InvalidInput(op, "invalid page range %q", part)
		}
		last := first
		if found {
			last, err = strconv.Atoi(strings.TrimSpace(high))
			if err != nil {
				return nil, domain.InvalidInput(op, "invalid page range %q", part)
			}
		}
		if first > last {
			first, last = last, first
		}
		if first < 1 || last > total {
			return nil, domain.InvalidInput(op, "page range %q is outside 1-%d", part, total)
		}
		for n := first; n <= last; n++ {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			pages = append(pages, n)
		}
	}
	if len(pages) > maxPDFPages {
		return nil, domain.InvalidInput(op, "at most %d pages can be extracted at once", maxPDFPages)
	}
	return pages, nil
}
