package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
)

func run(t *testing.T, tool domain.Tool, req domain.ToolRequest) domain.ToolResult {
	t.Helper()
	result, err := tool.Run(context.Background(), req)
	require.NoError(t, err)
	return result
}

func requireInvalid(t *testing.T, tool domain.Tool, req domain.ToolRequest) {
	t.Helper()
	_, err := tool.Run(context.Background(), req)
	require.Error(t, err)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeInvalidArgument, code)
	require.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func fieldValue(t *testing.T, result domain.ToolResult, label string) string {
	t.Helper()
	for _, f := range result.Fields {
		if f.Label == label {
			return f.Value
		}
	}
	t.Fatalf("field %q not found in %+v", label, result.Fields)
	return ""
}

func TestJSONFormatter(t *testing.T) {
	tool := NewJSONFormatter(domain.ToolDeps{})

	result := run(t, tool, domain.ToolRequest{Input: []byte(`{"a":1,"b":[true]}`)})
	require.Equal(t, "{\n  \"a\": 1,\n  \"b\": [\n    true\n  ]\n}", result.Text)

	result = run(t, tool, domain.ToolRequest{
		Input:   []byte("{ \"a\" : 1 }"),
		Options: map[string]string{"mode": "minify"},
	})
	require.Equal(t, `{"a":1}`, result.Text)

	result = run(t, tool, domain.ToolRequest{
		Input:   []byte("{\n  // port\n  \"port\": 8080,\n}"),
		Options: map[string]string{"mode": "minify"},
	})
	require.Equal(t, `{"port":8080}`, result.Text)

	result = run(t, tool, domain.ToolRequest{Args: []string{"[1,", "2]"}, Options: map[string]string{"mode": "validate"}})
	require.Equal(t, "true", result.Meta["valid"])

	requireInvalid(t, tool, domain.ToolRequest{Input: []byte(`{"a":`)})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte(`{}`), Options: map[string]string{"mode": "shout"}})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte(`{}`), Options: map[string]string{"indent": "12"}})
	requireInvalid(t, tool, domain.ToolRequest{})
}

func TestDataConverter(t *testing.T) {
	tool := NewDataConverter(domain.ToolDeps{})

	result := run(t, tool, domain.ToolRequest{Input: []byte(`{"name":"toolbox","port":8080}`)})
	require.Equal(t, "name: toolbox\nport: 8080", result.Text)
	require.Equal(t, "json", result.Meta["from"])

	result = run(t, tool, domain.ToolRequest{
		Input:   []byte("title = \"x\"\n"),
		Options: map[string]string{"to": "json"},
	})
	require.Equal(t, "toml", result.Meta["from"])
	require.Equal(t, "{\n  \"title\": \"x\"\n}", result.Text)

	result = run(t, tool, domain.ToolRequest{
		Input:   []byte("name: toolbox\nlimits:\n  recent: 6\n"),
		Options: map[string]string{"to": "toml"},
	})
	require.Contains(t, result.Text, "name = 'toolbox'")
	require.Contains(t, result.Text, "recent = 6")

	requireInvalid(t, tool, domain.ToolRequest{Input: []byte(`[1, 2]`), Options: map[string]string{"to": "toml"}})
	requireInvalid(t, tool, domain.ToolRequest{Input: []byte(`{}`), Options: map[string]string{"to": "xml"}})
}

func TestWordCounter(t *testing.T) {
	result := run(t, NewWordCounter(domain.ToolDeps{}), domain.ToolRequest{
		Input: []byte("Xin chào thế giới. Hôm nay trời đẹp!\nXin chào"),
	})
	require.Equal(t, "10", fieldValue(t, result, "Từ"))
	require.Equal(t, "3", fieldValue(t, result, "Câu"))
	require.Equal(t, "2", fieldValue(t, result, "Dòng"))
	require.Equal(t, "8", fieldValue(t, result, "Từ khác nhau"))
	require.Equal(t, "1", fieldValue(t, result, "Thời gian đọc (phút)"))

	empty := run(t, NewWordCounter(domain.ToolDeps{}), domain.ToolRequest{})
	require.Equal(t, "0", fieldValue(t, empty, "Từ"))
	require.Equal(t, "0", fieldValue(t, empty, "Dòng"))
}

func TestCaseConverter(t *testing.T) {
	tool := NewCaseConverter(domain.ToolDeps{})
	cases := map[string]string{
		"upper":    "XIN CHÀO THẾ GIỚI",
		"lower":    "xin chào thế giới",
		"title":    "Xin Chào Thế Giới",
		"camel":    "xinChaoTheGioi",
		"pascal":   "XinChaoTheGioi",
		"snake":    "xin_chao_the_gioi",
		"kebab":    "xin-chao-the-gioi",
		"constant": "XIN_CHAO_THE_GIOI",
		"plain":    "xin chao the gioi",
	}
	for mode, want := range cases {
		result := run(t, tool, domain.ToolRequest{
			Args:    []string{"xin", "chào", "Thế", "giới"},
			Options: map[string]string{"mode": mode},
		})
		require.Equal(t, want, result.Text, "mode %s", mode)
	}

	result := run(t, tool, domain.ToolRequest{
		Input:   []byte("HÔM NAY TRỜI ĐẸP. ngày mai thì sao?"),
		Options: map[string]string{"mode": "sentence"},
	})
	require.Equal(t, "Hôm nay trời đẹp. Ngày mai thì sao?", result.Text)

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"x"}, Options: map[string]string{"mode": "zigzag"}})
}

func TestSlugGenerator(t *testing.T) {
	tool := NewSlugGenerator(domain.ToolDeps{})
	require.Equal(t, "tao-qr-da-dung", run(t, tool, domain.ToolRequest{Args: []string{"Tạo QR Đa Dụng!"}}).Text)
	require.Equal(t, "tao_qr", run(t, tool, domain.ToolRequest{
		Args:    []string{"Tạo QR"},
		Options: map[string]string{"separator": "_"},
	}).Text)
	require.Equal(t, "tao", run(t, tool, domain.ToolRequest{
		Args:    []string{"Tạo QR Đa Dụng"},
		Options: map[string]string{"maxLength": "4"},
	}).Text)

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"!!!"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"a"}, Options: map[string]string{"separator": "+"}})
}

func TestHashGenerator(t *testing.T) {
	tool := NewHashGenerator(domain.ToolDeps{})

	result := run(t, tool, domain.ToolRequest{Args: []string{"abc"}, Options: map[string]string{"algo": "sha256"}})
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", result.Text)

	result = run(t, tool, domain.ToolRequest{Input: []byte("abc")})
	require.Len(t, result.Fields, 7)
	require.Equal(t, "900150983cd24fb0d6963f7d28e17f72", fieldValue(t, result, "md5"))
	require.Equal(t, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532", fieldValue(t, result, "sha3-256"))
	require.Equal(t, "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319", fieldValue(t, result, "blake2b"))
	require.Len(t, fieldValue(t, result, "blake3"), 64)

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"abc"}, Options: map[string]string{"algo": "crc32"}})
}

func TestBase64Codec(t *testing.T) {
	tool := NewBase64Codec(domain.ToolDeps{})

	require.Equal(t, "aGVsbG8=", run(t, tool, domain.ToolRequest{Args: []string{"hello"}}).Text)
	require.Equal(t, "aGVsbG8", run(t, tool, domain.ToolRequest{
		Args:    []string{"hello"},
		Options: map[string]string{"raw": "true"},
	}).Text)
	require.Equal(t, "hello", run(t, tool, domain.ToolRequest{
		Args:    []string{"aGVsbG8="},
		Options: map[string]string{"mode": "decode"},
	}).Text)

	binary := run(t, tool, domain.ToolRequest{
		Args:    []string{"//79"},
		Options: map[string]string{"mode": "decode"},
	})
	require.Equal(t, []byte{0xff, 0xfe, 0xfd}, binary.Attachment)
	require.Equal(t, "decoded.bin", binary.AttachmentName)

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"%%%"}, Options: map[string]string{"mode": "decode"}})
}

func TestUUIDGenerator(t *testing.T) {
	tool := NewUUIDGenerator(domain.ToolDeps{})

	result := run(t, tool, domain.ToolRequest{Options: map[string]string{"count": "3"}})
	lines := strings.Split(result.Text, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		id, err := uuid.Parse(line)
		require.NoError(t, err)
		require.Equal(t, uuid.Version(4), id.Version())
	}

	result = run(t, tool, domain.ToolRequest{Options: map[string]string{"version": "7"}})
	id, err := uuid.Parse(result.Text)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), id.Version())

	result = run(t, tool, domain.ToolRequest{
		Args:    []string{"example.com"},
		Options: map[string]string{"version": "5", "namespace": "dns", "upper": "true"},
	})
	require.Equal(t, strings.ToUpper(uuid.NewSHA1(uuid.NameSpaceDNS, []byte("example.com")).String()), result.Text)

	requireInvalid(t, tool, domain.ToolRequest{Options: map[string]string{"version": "3"}})
	requireInvalid(t, tool, domain.ToolRequest{Options: map[string]string{"count": "0"}})
	requireInvalid(t, tool, domain.ToolRequest{Options: map[string]string{"version": "5"}})
}
