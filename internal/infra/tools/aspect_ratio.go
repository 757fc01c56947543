package tools

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"toolbox/internal/domain"
)

// AspectRatio reduces a width/height pair and optionally scales it.
//
// Args: width height. Options: width or height to compute the missing side.
type AspectRatio struct{}

func NewAspectRatio(domain.ToolDeps) domain.Tool {
	return AspectRatio{}
}

func (AspectRatio) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.aspect-ratio"
	args := req.Args
	if len(args) == 1 {
		args = strings.FieldsFunc(args[0], func(r rune) bool { return r == 'x' || r == 'X' || r == ':' })
	}
	if len(args) < 2 {
		return domain.ToolResult{}, domain.InvalidInput(op, "usage: <width> <height> or <width>x<height>")
	}
	width, err := positiveInt(op, "width", args[0])
	if err != nil {
		return domain.ToolResult{}, err
	}
	height, err := positiveInt(op, "height", args[1])
	if err != nil {
		return domain.ToolResult{}, err
	}

	ratioW, ratioH := reduceRatio(width, height)
	fields := []domain.ResultField{
		field("Tỉ lệ", fmt.Sprintf("%d:%d", ratioW, ratioH)),
		field("Hệ số", formatRounded(float64(width)/float64(height), 4)),
	}
	if raw := req.Option("width", ""); raw != "" {
		target, err := positiveInt(op, "width", raw)
		if err != nil {
			return domain.ToolResult{}, err
		}
		scaled := int(math.Round(float64(target) * float64(height) / float64(width)))
		fields = append(fields, field("Kích thước mới", fmt.Sprintf("%d x %d", target, scaled)))
	}
	if raw := req.Option("height", ""); raw != "" {
		target, err := positiveInt(op, "height", raw)
		if err != nil {
			return domain.ToolResult{}, err
		}
		scaled := int(math.Round(float64(target) * float64(width) / float64(height)))
		fields = append(fields, field("Kích thước mới", fmt.Sprintf("%d x %d", scaled, target)))
	}
	return fieldsResult(fields...), nil
}

func positiveInt(op, label, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, domain.InvalidInput(op, "%s must be a positive integer", label)
	}
	return value, nil
}

func reduceRatio(width, height int) (int, int) {
	divisor := gcd(width, height)
	if divisor == 0 {
		return width, height
	}
	return width / divisor, height / divisor
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
