package tools

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strconv"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"toolbox/internal/domain"
)

// ImageInfo reports the format, dimensions and aspect ratio of an image.
type ImageInfo struct{}

func NewImageInfo(domain.ToolDeps) domain.Tool {
	return ImageInfo{}
}

func (ImageInfo) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.image-info"
	if len(req.Input) == 0 {
		return domain.ToolResult{}, domain.InvalidInput(op, "an image file is required")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(req.Input))
	if err != nil {
		return domain.ToolResult{}, domain.InvalidInput(op, "unsupported image: %v", err)
	}
	ratioW, ratioH := reduceRatio(cfg.Width, cfg.Height)

	result := fieldsResult(
		field("Định dạng", format),
		field("Kích thước", fmt.Sprintf("%d x %d px", cfg.Width, cfg.Height)),
		field("Tỉ lệ", fmt.Sprintf("%d:%d", ratioW, ratioH)),
		field("Megapixel", formatRounded(float64(cfg.Width*cfg.Height)/1e6, 2)),
		field("Dung lượng", humanBytes(len(req.Input))),
	)
	result.Meta = map[string]string{
		"format": format,
		"width":  strconv.Itoa(cfg.Width),
		"height": strconv.Itoa(cfg.Height),
	}
	return result, nil
}

func humanBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	value := float64(n)
	suffixes := []string{"KB", "MB", "GB"}
	suffix := ""
	for _, s := range suffixes {
		value /= unit
		suffix = s
		if value < unit {
			break
		}
	}
	return formatRounded(value, 1) + " " + suffix
}
