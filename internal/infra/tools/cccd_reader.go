package tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"toolbox/internal/domain"
)

var provinceCodes = map[string]string{
	"001": "Hà Nội", "002": "Hà Giang", "004": "Cao Bằng", "006": "Bắc Kạn",
	"008": "Tuyên Quang", "010": "Lào Cai", "011": "Điện Biên", "012": "Lai Châu",
	"014": "Sơn La", "015": "Yên Bái", "017": "Hòa Bình", "019": "Thái Nguyên",
	"020": "Lạng Sơn", "022": "Quảng Ninh", "024": "Bắc Giang", "025": "Phú Thọ",
	"026": "Vĩnh Phúc", "027": "Bắc Ninh", "030": "Hải Dương", "031": "Hải Phòng",
	"033": "Hưng Yên", "034": "Thái Bình", "035": "Hà Nam", "036": "Nam Định",
	"037": "Ninh Bình", "038": "Thanh Hóa", "040": "Nghệ An", "042": "Hà Tĩnh",
	"044": "Quảng Bình", "045": "Quảng Trị", "046": "Thừa Thiên Huế", "048": "Đà Nẵng",
	"049": "Quảng Nam", "051": "Quảng Ngãi", "052": "Bình Định", "054": "Phú Yên",
	"056": "Khánh Hòa", "058": "Ninh Thuận", "060": "Bình Thuận", "062": "Kon Tum",
	"064": "Gia Lai", "066": "Đắk Lắk", "067": "Đắk Nông", "068": "Lâm Đồng",
	"070": "Bình Phước", "072": "Tây Ninh", "074": "Bình Dương", "075": "Đồng Nai",
	"077": "Bà Rịa - Vũng Tàu", "079": "Hồ Chí Minh", "080": "Long An", "082": "Tiền Giang",
	"083": "Bến Tre", "084": "Trà Vinh", "086": "Vĩnh Long", "087": "Đồng Tháp",
	"089": "An Giang", "091": "Kiên Giang", "092": "Cần Thơ", "093": "Hậu Giang",
	"094": "Sóc Trăng", "095": "Bạc Liêu", "096": "Cà Mau",
}

// CCCDReader decodes the pipe-separated payload printed in the QR code of
// a Vietnamese chip-based citizen identity card:
//
//	id|oldId|name|ddmmyyyy(birth)|gender|address|ddmmyyyy(issued)
//
// A bare 12-digit number is also accepted and decoded on its own.
type CCCDReader struct {
	now func() time.Time
}

func NewCCCDReader(deps domain.ToolDeps) domain.Tool {
	deps = deps.WithDefaults()
	return &CCCDReader{now: deps.Now}
}

func (c *CCCDReader) Run(_ context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.cccd-reader"
	payload, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}
	parts := strings.Split(strings.TrimSpace(payload), "|")
	id := strings.TrimSpace(parts[0])
	info, err := decodeCCCDNumber(op, id)
	if err != nil {
		return domain.ToolResult{}, err
	}

	fields := []domain.ResultField{field("Số CCCD", id)}
	if len(parts) == 1 {
		fields = append(fields,
			field("Nơi đăng ký khai sinh", info.province),
			field("Giới tính", info.gender),
			field("Năm sinh", fmt.Sprintf("%d", info.birthYear)),
		)
		return fieldsResult(fields...), nil
	}
	if len(parts) < 7 {
		return domain.ToolResult{}, domain.InvalidInput(op, "expected 7 fields separated by |, got %d", len(parts))
	}

	birth, err := parseCCCDDate(op, "birth date", parts[3])
	if err != nil {
		return domain.ToolResult{}, err
	}
	issued, err := parseCCCDDate(op, "issue date", parts[6])
	if err != nil {
		return domain.ToolResult{}, err
	}
	if birth.Year() != info.birthYear {
		return domain.ToolResult{}, domain.InvalidInput(op, "birth year %d does not match id number", birth.Year())
	}

	if old := strings.TrimSpace(parts[1]); old != "" {
		fields = append(fields, field("Số CMND cũ", old))
	}
	fields = append(fields,
		field("Họ và tên", strings.TrimSpace(parts[2])),
		field("Ngày sinh", birth.Format("02/01/2006")),
		field("Tuổi", fmt.Sprintf("%d", ageAt(birth, c.now()))),
		field("Giới tính", strings.TrimSpace(parts[4])),
		field("Nơi thường trú", strings.TrimSpace(parts[5])),
		field("Ngày cấp", issued.Format("02/01/2006")),
		field("Nơi đăng ký khai sinh", info.province),
	)
	return fieldsResult(fields...), nil
}

type cccdNumber struct {
	province  string
	gender    string
	birthYear int
}

// decodeCCCDNumber reads the province, century/gender digit and birth
// year encoded in a 12-digit card number.
func decodeCCCDNumber(op, id string) (cccdNumber, error) {
	if len(id) != 12 {
		return cccdNumber{}, domain.InvalidInput(op, "card number must have 12 digits")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return cccdNumber{}, domain.InvalidInput(op, "card number must have 12 digits")
		}
	}
	province, ok := provinceCodes[id[:3]]
	if !ok {
		return cccdNumber{}, domain.InvalidInput(op, "unknown province code %s", id[:3])
	}
	digit := int(id[3] - '0')
	century := 1900 + (digit/2)*100
	if century > 2300 {
		return cccdNumber{}, domain.InvalidInput(op, "invalid century digit %d", digit)
	}
	gender := "Nam"
	if digit%2 == 1 {
		gender = "Nữ"
	}
	year := century + int(id[4]-'0')*10 + int(id[5]-'0')
	return cccdNumber{province: province, gender: gender, birthYear: year}, nil
}

func parseCCCDDate(op, label, raw string) (time.Time, error) {
	value, err := time.Parse("02012006", strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, domain.InvalidInput(op, "%s %q must be ddmmyyyy", label, raw)
	}
	return value, nil
}

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return max(age, 0)
}
