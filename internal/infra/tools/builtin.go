package tools

import "toolbox/internal/domain"

// Builtin returns the static tool catalog in display order. A fresh slice
// is returned on every call.
func Builtin() []domain.ToolDescriptor {
	return []domain.ToolDescriptor{
		{
			ID:        101,
			Slug:      "pdf-text",
			Name:      "Trích Xuất Văn Bản PDF",
			ShortDesc: "Lấy toàn bộ chữ trong file PDF theo từng trang",
			Icon:      "📄",
			Featured:  true,
			Category:  domain.CategoryImagePDF,
			Keywords:  []string{"pdf", "extract", "text", "ocr", "tài liệu"},
			Usage:     "--input file.pdf [--opt pages=1-3,7]",
			Factory:   NewPDFText,
		},
		{
			ID:        102,
			Slug:      "image-info",
			Name:      "Thông Tin Ảnh",
			ShortDesc: "Xem định dạng, kích thước và tỉ lệ của ảnh",
			Icon:      "🖼️",
			Category:  domain.CategoryImagePDF,
			Keywords:  []string{"image", "photo", "resolution", "png", "jpeg", "webp", "hình"},
			Usage:     "--input photo.jpg",
			Factory:   NewImageInfo,
		},
		{
			ID:        201,
			Slug:      "json-formatter",
			Name:      "Định Dạng JSON",
			ShortDesc: "Làm đẹp, thu gọn và kiểm tra JSON",
			Icon:      "🧾",
			Featured:  true,
			Category:  domain.CategoryTextData,
			Keywords:  []string{"json", "format", "pretty", "minify", "validate"},
			Usage:     "--input data.json [--opt mode=pretty|minify|validate] [--opt indent=2]",
			Factory:   NewJSONFormatter,
		},
		{
			ID:        202,
			Slug:      "data-converter",
			Name:      "Chuyển Đổi JSON YAML TOML",
			ShortDesc: "Chuyển dữ liệu cấu hình giữa JSON, YAML và TOML",
			Icon:      "🔁",
			Category:  domain.CategoryTextData,
			Keywords:  []string{"yaml", "toml", "json", "config", "convert"},
			Usage:     "--input config.yaml --opt to=json [--opt from=yaml]",
			Factory:   NewDataConverter,
		},
		{
			ID:        203,
			Slug:      "word-counter",
			Name:      "Đếm Từ",
			ShortDesc: "Đếm từ, ký tự, câu và đoạn văn",
			Icon:      "🔢",
			Featured:  true,
			Category:  domain.CategoryTextData,
			Keywords:  []string{"word", "count", "character", "văn bản"},
			Usage:     "<text> | --input file.txt",
			Factory:   NewWordCounter,
		},
		{
			ID:        204,
			Slug:      "case-converter",
			Name:      "Đổi Kiểu Chữ",
			ShortDesc: "Chữ hoa, chữ thường, camelCase, snake_case và bỏ dấu",
			Icon:      "🔠",
			Category:  domain.CategoryTextData,
			Keywords:  []string{"case", "upper", "lower", "camel", "snake", "bỏ dấu"},
			Usage:     "<text> --opt mode=upper|lower|title|sentence|camel|pascal|snake|kebab|constant|plain",
			Factory:   NewCaseConverter,
		},
		{
			ID:        205,
			Slug:      "slug-generator",
			Name:      "Tạo Slug URL",
			ShortDesc: "Biến tiêu đề tiếng Việt thành đường dẫn thân thiện",
			Icon:      "🔗",
			Category:  domain.CategoryTextData,
			Keywords:  []string{"slug", "url", "seo", "permalink"},
			Usage:     "<text> [--opt separator=-] [--opt maxLength=80]",
			Factory:   NewSlugGenerator,
		},
		{
			ID:        206,
			Slug:      "hash-generator",
			Name:      "Tạo Mã Băm",
			ShortDesc: "Tính MD5, SHA-1, SHA-2, SHA-3, BLAKE2b và BLAKE3",
			Icon:      "#️⃣",
			Category:  domain.CategoryTextData,
			Keywords:  []string{"hash", "md5", "sha256", "sha3", "blake2b", "blake3", "checksum"},
			Usage:     "<text> | --input file [--opt algo=sha256]",
			Factory:   NewHashGenerator,
		},
		{
			ID:        207,
			Slug:      "base64-codec",
			Name:      "Mã Hóa Base64",
			ShortDesc: "Mã hóa và giải mã Base64",
			Icon:      "🔐",
			Category:  domain.CategoryTextData,
			Keywords:  []string{"base64", "encode", "decode"},
			Usage:     "<text> [--opt mode=encode|decode] [--opt url=true] [--opt raw=true]",
			Factory:   NewBase64Codec,
		},
		{
			ID:        208,
			Slug:      "uuid-generator",
			Name:      "Tạo UUID",
			ShortDesc: "Sinh UUID phiên bản 4, 5 hoặc 7",
			Icon:      "🆔",
			Category:  domain.CategoryTextData,
			Keywords:  []string{"uuid", "guid", "id", "random"},
			Usage:     "[--opt version=4|5|7] [--opt count=5] [--opt namespace=url] [name]",
			Factory:   NewUUIDGenerator,
		},
		{
			ID:        209,
			Slug:      "quick-translate",
			Name:      "Dịch Nhanh",
			ShortDesc: "Dịch sang tiếng Anh và nhiều ngôn ngữ khác",
			Icon:      "🌐",
			Featured:  true,
			Category:  domain.CategoryTextData,
			Keywords:  []string{"translate", "dịch", "english", "language"},
			Usage:     "<text> [--opt from=vi] [--opt to=en]",
			Factory:   NewQuickTranslate,
		},
		{
			ID:        301,
			Slug:      "qr-generator",
			Name:      "Tạo QR Đa Dụng",
			ShortDesc: "Tạo mã QR cho văn bản, liên kết, Wi-Fi, email và số điện thoại",
			Icon:      "🔳",
			Featured:  true,
			Category:  domain.CategoryQRCCCD,
			Keywords:  []string{"qr", "qrcode", "wifi", "barcode", "mã"},
			Usage:     "<content> [--opt type=text|url|wifi|email|phone|sms] [--opt size=256] [--out qr.png]",
			Factory:   NewQRGenerator,
		},
		{
			ID:        302,
			Slug:      "cccd-reader",
			Name:      "Đọc Mã CCCD",
			ShortDesc: "Giải mã nội dung QR trên căn cước công dân gắn chip",
			Icon:      "🪪",
			Featured:  true,
			Category:  domain.CategoryQRCCCD,
			Keywords:  []string{"cccd", "căn cước", "cmnd", "identity", "id card"},
			Usage:     "<id|oldId|name|ddmmyyyy|gender|address|ddmmyyyy>",
			Factory:   NewCCCDReader,
		},
		{
			ID:        401,
			Slug:      "color-converter",
			Name:      "Chuyển Đổi Màu",
			ShortDesc: "Đổi màu giữa HEX, RGB và HSL",
			Icon:      "🎨",
			Category:  domain.CategoryMedia,
			Keywords:  []string{"color", "hex", "rgb", "hsl", "màu"},
			Usage:     "<#ff8800 | rgb(255, 136, 0) | hsl(32, 100%, 50%)>",
			Factory:   NewColorConverter,
		},
		{
			ID:        402,
			Slug:      "aspect-ratio",
			Name:      "Tính Tỉ Lệ Khung Hình",
			ShortDesc: "Rút gọn tỉ lệ và tính kích thước tương ứng",
			Icon:      "📐",
			Category:  domain.CategoryMedia,
			Keywords:  []string{"aspect", "ratio", "resolution", "video", "16:9"},
			Usage:     "<width> <height> [--opt width=1280 | --opt height=720]",
			Factory:   NewAspectRatio,
		},
		{
			ID:        501,
			Slug:      "lucky-wheel",
			Name:      "Vòng Quay May Mắn",
			ShortDesc: "Quay ngẫu nhiên để chọn người hoặc phần thưởng",
			Icon:      "🎡",
			Featured:  true,
			Category:  domain.CategoryOther,
			Keywords:  []string{"random", "wheel", "spin", "bốc thăm", "picker"},
			Usage:     "<a, b, c> [--opt spins=3] [--opt remove=true]",
			Factory:   NewLuckyWheel,
		},
		{
			ID:        502,
			Slug:      "unit-converter",
			Name:      "Đổi Đơn Vị",
			ShortDesc: "Đổi độ dài, khối lượng, diện tích, dung lượng và nhiệt độ",
			Icon:      "📏",
			Category:  domain.CategoryOther,
			Keywords:  []string{"unit", "convert", "km", "kg", "celsius"},
			Usage:     "<value> <from> <to>",
			Factory:   NewUnitConverter,
		},
		{
			ID:        503,
			Slug:      "currency-converter",
			Name:      "Quy Đổi Tiền Tệ",
			ShortDesc: "Quy đổi ngoại tệ theo tỉ giá mới nhất",
			Icon:      "💱",
			Featured:  true,
			Category:  domain.CategoryOther,
			Keywords:  []string{"currency", "exchange", "usd", "vnd", "tỉ giá"},
			Usage:     "<amount> <from> <to>",
			Factory:   NewCurrencyConverter,
		},
		{
			ID:        504,
			Slug:      "weather",
			Name:      "Thời Tiết",
			ShortDesc: "Xem thời tiết hiện tại của một địa điểm",
			Icon:      "⛅",
			Featured:  true,
			Category:  domain.CategoryOther,
			Keywords:  []string{"weather", "forecast", "nhiệt độ", "mưa"},
			Usage:     "<place>",
			Factory:   NewWeather,
		},
	}
}
