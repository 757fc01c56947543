package tools

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
)

func TestQRGenerator(t *testing.T) {
	tool := NewQRGenerator(domain.ToolDeps{})

	result := run(t, tool, domain.ToolRequest{Args: []string{"hello"}})
	require.True(t, bytes.HasPrefix(result.Attachment, []byte("\x89PNG")))
	require.Equal(t, "qr.png", result.AttachmentName)
	require.NotEmpty(t, result.Text)
	require.Equal(t, "hello", result.Meta["content"])

	result = run(t, tool, domain.ToolRequest{Options: map[string]string{
		"type":     "wifi",
		"ssid":     "home;net",
		"password": "secret",
	}})
	require.Equal(t, `WIFI:T:WPA;S:home\;net;P:secret;;`, result.Meta["content"])

	result = run(t, tool, domain.ToolRequest{Args: []string{"example.com/a"}, Options: map[string]string{"type": "url"}})
	require.Equal(t, "https://example.com/a", result.Meta["content"])

	result = run(t, tool, domain.ToolRequest{Args: []string{"+84 912 345 678"}, Options: map[string]string{"type": "phone"}})
	require.Equal(t, "tel:+84912345678", result.Meta["content"])

	result = run(t, tool, domain.ToolRequest{
		Args:    []string{"a@b.vn"},
		Options: map[string]string{"type": "email", "subject": "Chào"},
	})
	require.Equal(t, "mailto:a@b.vn?subject=Ch%C3%A0o", result.Meta["content"])

	requireInvalid(t, tool, domain.ToolRequest{})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"x"}, Options: map[string]string{"level": "Z"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"x"}, Options: map[string]string{"size": "10"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"x"}, Options: map[string]string{"type": "fax"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"nobody"}, Options: map[string]string{"type": "email"}})
}

func TestCCCDReader(t *testing.T) {
	now := func() time.Time { return time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC) }
	tool := NewCCCDReader(domain.ToolDeps{Now: now})

	result := run(t, tool, domain.ToolRequest{
		Input: []byte("001099012345|123456789|Nguyễn Văn A|15031999|Nam|Số 1 Tràng Tiền, Hà Nội|01012021"),
	})
	require.Equal(t, "Nguyễn Văn A", fieldValue(t, result, "Họ và tên"))
	require.Equal(t, "15/03/1999", fieldValue(t, result, "Ngày sinh"))
	require.Equal(t, "27", fieldValue(t, result, "Tuổi"))
	require.Equal(t, "123456789", fieldValue(t, result, "Số CMND cũ"))
	require.Equal(t, "Hà Nội", fieldValue(t, result, "Nơi đăng ký khai sinh"))
	require.Equal(t, "01/01/2021", fieldValue(t, result, "Ngày cấp"))

	bare := run(t, tool, domain.ToolRequest{Args: []string{"079303000001"}})
	require.Equal(t, "Hồ Chí Minh", fieldValue(t, bare, "Nơi đăng ký khai sinh"))
	require.Equal(t, "Nữ", fieldValue(t, bare, "Giới tính"))
	require.Equal(t, "2003", fieldValue(t, bare, "Năm sinh"))

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"12345"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"003099012345"}})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte("001099012345||A|15032000|Nam|HN|01012021")})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte("001099012345||A|1999-03-15|Nam|HN|01012021")})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte("001099012345|x|y")})
}

func TestColorConverter(t *testing.T) {
	tool := NewColorConverter(domain.ToolDeps{})
	cases := map[string][3]string{
		"#ff8800":             {"#ff8800", "rgb(255, 136, 0)", "hsl(32, 100%, 50%)"},
		"F80":                 {"#ff8800", "rgb(255, 136, 0)", "hsl(32, 100%, 50%)"},
		"rgb(255, 136, 0)":    {"#ff8800", "rgb(255, 136, 0)", "hsl(32, 100%, 50%)"},
		"hsl(0, 100%, 50%)":   {"#ff0000", "rgb(255, 0, 0)", "hsl(0, 100%, 50%)"},
		"hsl(120, 100%, 25%)": {"#008000", "rgb(0, 128, 0)", "hsl(120, 100%, 25%)"},
		"#808080":             {"#808080", "rgb(128, 128, 128)", "hsl(0, 0%, 50%)"},
	}
	for input, want := range cases {
		result := run(t, tool, domain.ToolRequest{Args: []string{input}})
		require.Equal(t, want[0], fieldValue(t, result, "HEX"), input)
		require.Equal(t, want[1], fieldValue(t, result, "RGB"), input)
		require.Equal(t, want[2], fieldValue(t, result, "HSL"), input)
	}

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"rgb(300, 0, 0)"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"teal"}})
}

func TestAspectRatio(t *testing.T) {
	tool := NewAspectRatio(domain.ToolDeps{})

	result := run(t, tool, domain.ToolRequest{Args: []string{"1920", "1080"}, Options: map[string]string{"width": "1280"}})
	require.Equal(t, "16:9", fieldValue(t, result, "Tỉ lệ"))
	require.Equal(t, "1280 x 720", fieldValue(t, result, "Kích thước mới"))

	result = run(t, tool, domain.ToolRequest{Args: []string{"1024x768"}})
	require.Equal(t, "4:3", fieldValue(t, result, "Tỉ lệ"))
	require.Equal(t, "1.3333", fieldValue(t, result, "Hệ số"))

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"0", "10"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"100"}})
}

func TestImageInfo(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	result := run(t, NewImageInfo(domain.ToolDeps{}), domain.ToolRequest{Input: buf.Bytes()})
	require.Equal(t, "png", result.Meta["format"])
	require.Equal(t, "4", result.Meta["width"])
	require.Equal(t, "2:1", fieldValue(t, result, "Tỉ lệ"))

	requireInvalid(t, NewImageInfo(domain.ToolDeps{}), domain.ToolRequest{Input: []byte("not an image")})
	requireInvalid(t, NewImageInfo(domain.ToolDeps{}), domain.ToolRequest{})
}

func TestHumanBytes(t *testing.T) {
	require.Equal(t, "512 B", humanBytes(512))
	require.Equal(t, "1.5 KB", humanBytes(1536))
	require.Equal(t, "2 MB", humanBytes(2<<20))
}

func TestPDFTextRejectsInvalidDocuments(t *testing.T) {
	tool := NewPDFText(domain.ToolDeps{})
	requireInvalid(t, tool, domain.ToolRequest{})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte("definitely not a pdf")})
}

func TestSelectPages(t *testing.T) {
	pages, err := selectPages("test", "1-3,7,2", 10)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 7}, pages)

	pages, err = selectPages("test", "3-1", 5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, pages)

	pages, err = selectPages("test", "", 3)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, pages)

	_, err = selectPages("test", "12", 10)
	require.Error(t, err)
	_, err = selectPages("test", "a-b", 10)
	require.Error(t, err)
}

func TestLuckyWheel(t *testing.T) {
	deps := domain.ToolDeps{Rand: rand.New(rand.NewPCG(1, 2))}
	tool := NewLuckyWheel(deps)

	result := run(t, tool, domain.ToolRequest{Input: []byte("An\nBình\nChi\n")})
	require.Contains(t, []string{"An", "Bình", "Chi"}, result.Meta["winner"])

	result = run(t, tool, domain.ToolRequest{
		Args:    []string{"An, Bình, Chi"},
		Options: map[string]string{"spins": "3", "remove": "true"},
	})
	winners := make([]string, 0, len(result.Fields))
	for _, f := range result.Fields {
		winners = append(winners, f.Value)
	}
	slices.Sort(winners)
	require.Equal(t, []string{"An", "Bình", "Chi"}, winners)
	require.Empty(t, result.Meta["remaining"])

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"solo"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"a", "b"}, Options: map[string]string{"spins": "3", "remove": "true"}})
}

func TestWheelEntries(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, wheelEntries("a b  c"))
	require.Equal(t, []string{"Nguyễn An", "Trần Bình"}, wheelEntries("Nguyễn An, Trần Bình,"))
	require.Empty(t, wheelEntries(strings.Repeat(" ", 3)))
}

func TestUnitConverter(t *testing.T) {
	tool := NewUnitConverter(domain.ToolDeps{})
	cases := []struct {
		args []string
		want string
	}{
		{args: []string{"10", "km", "mi"}, want: "6.213712 mi"},
		{args: []string{"100", "°C", "f"}, want: "212 f"},
		{args: []string{"0", "k", "c"}, want: "-273.15 c"},
		{args: []string{"1,5", "kg", "g"}, want: "1500 g"},
		{args: []string{"2048", "kb", "mb"}, want: "2 mb"},
		{args: []string{"1", "ha", "m2"}, want: "10000 m2"},
	}
	for _, tc := range cases {
		result := run(t, tool, domain.ToolRequest{Args: tc.args})
		require.Equal(t, tc.want, fieldValue(t, result, "Kết quả"), "%v", tc.args)
	}

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"1", "kg", "m"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"1", "parsec", "m"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"-500", "c", "k"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"abc", "m", "km"}})
}

func TestOfflineToolsIgnoreCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := NewSlugGenerator(domain.ToolDeps{}).Run(ctx, domain.ToolRequest{Args: []string{"Xin chào"}})
	require.NoError(t, err)
	require.Equal(t, "xin-chao", result.Text)
}
