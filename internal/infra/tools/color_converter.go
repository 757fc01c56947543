package tools

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"toolbox/internal/domain"
)

var (
	hexColor = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbColor = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslColor = regexp.MustCompile(`^hsl\(\s*(\d{1,3}(?:\.\d+)?)\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*,\s*(\d{1,3}(?:\.\d+)?)%\s*\)$`)
)

type rgb struct {
	r, g, b uint8
}

// ColorConverter converts between hex, rgb() and hsl() notations.
type ColorConverter struct{}

func NewColorConverter(domain.ToolDeps) domain.Tool {
	return ColorConverter{}
}

func (ColorConverter) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.color-converter"
	raw, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	color, err := parseColor(op, strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return domain.ToolResult{}, err
	}
	h, s, l := color.hsl()
	result := fieldsResult(
		field("HEX", color.hex()),
		field("RGB", fmt.Sprintf("rgb(%d, %d, %d)", color.r, color.g, color.b)),
		field("HSL", fmt.Sprintf("hsl(%s, %s%%, %s%%)", formatRounded(h, 0), formatRounded(s, 0), formatRounded(l, 0))),
	)
	result.Meta = map[string]string{"hex": color.hex()}
	return result, nil
}

func parseColor(op, raw string) (rgb, error) {
	if m := hexColor.FindStringSubmatch(raw); m != nil {
		digits := m[1]
		if len(digits) == 3 {
			digits = strings.Repeat(digits[0:1], 2) + strings.Repeat(digits[1:2], 2) + strings.Repeat(digits[2:3], 2)
		}
		value, _ := strconv.ParseUint(digits, 16, 32)
		return rgb{r: uint8(value >> 16), g: uint8(value >> 8), b: uint8(value)}, nil
	}
	if m := rgbColor.FindStringSubmatch(raw); m != nil {
		var channels [3]uint8
		for i := range channels {
			value, _ := strconv.Atoi(m[i+1])
			if value > 255 {
				return rgb{}, domain.InvalidInput(op, "rgb channel %d is out of range", value)
			}
			channels[i] = uint8(value)
		}
		return rgb{r: channels[0], g: channels[1], b: channels[2]}, nil
	}
	if m := hslColor.FindStringSubmatch(raw); m != nil {
		h, _ := strconv.ParseFloat(m[1], 64)
		s, _ := strconv.ParseFloat(m[2], 64)
		l, _ := strconv.ParseFloat(m[3], 64)
		if h > 360 || s > 100 || l > 100 {
			return rgb{}, domain.InvalidInput(op, "hsl value is out of range")
		}
		return fromHSL(h, s/100, l/100), nil
	}
	return rgb{}, domain.InvalidInput(op, "unrecognised color %q", raw)
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// hsl returns hue in degrees and saturation/lightness in percent.
func (c rgb) hsl() (float64, float64, float64) {
	r, g, b := float64(c.r)/255, float64(c.g)/255, float64(c.b)/255
	high := math.Max(r, math.Max(g, b))
	low := math.Min(r, math.Min(g, b))
	l := (high + low) / 2
	if high == low {
		return 0, 0, l * 100
	}
	delta := high - low
	s := delta / (1 - math.Abs(2*l-1))
	var h float64
	switch high {
	case r:
		h = math.Mod((g-b)/delta, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return h, s * 100, l * 100
}

func fromHSL(h, s, l float64) rgb {
	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2
	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	channel := func(v float64) uint8 { return uint8(math.Round((v + m) * 255)) }
	return rgb{r: channel(r), g: channel(g), b: channel(b)}
}
