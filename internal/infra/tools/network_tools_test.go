package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"toolbox/internal/domain"
)

func requireUnavailable(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeUnavailable, code)
	require.True(t, errors.Is(err, domain.ErrUpstreamFailed))
}

func TestCurrencyConverter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v6/latest/USD":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"result":"success","base_code":"USD","time_last_update_utc":"Sat, 17 Oct 2026 00:00:01 +0000","rates":{"USD":1,"VND":25000}}`))
		case "/v6/latest/XYZ":
			_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	tool := NewCurrencyConverter(domain.ToolDeps{
		HTTP:      srv.Client(),
		Endpoints: domain.Endpoints{Currency: srv.URL + "/v6/latest"},
	})

	result := run(t, tool, domain.ToolRequest{Args: []string{"100", "usd", "VND"}})
	require.Equal(t, "2500000 VND", fieldValue(t, result, "Quy đổi"))
	require.Equal(t, "1 USD = 25000 VND", fieldValue(t, result, "Tỉ giá"))
	require.Equal(t, "2500000", result.Meta["converted"])

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"100", "USD", "EUR"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"100", "US", "VND"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"-1", "USD", "VND"}})
	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"100"}})

	_, err := tool.Run(context.Background(), domain.ToolRequest{Args: []string{"1", "XYZ", "VND"}})
	requireUnavailable(t, err)

	_, err = tool.Run(context.Background(), domain.ToolRequest{Args: []string{"1", "EUR", "VND"}})
	requireUnavailable(t, err)
}

func TestCurrencyConverterUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	tool := NewCurrencyConverter(domain.ToolDeps{Endpoints: domain.Endpoints{Currency: endpoint}})
	_, err := tool.Run(context.Background(), domain.ToolRequest{Args: []string{"1", "USD", "VND"}})
	requireUnavailable(t, err)
}

func TestQuickTranslate(t *testing.T) {
	var gotQuery, gotPair string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotPair = r.URL.Query().Get("langpair")
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":"Hello &amp; welcome","match":1},"responseStatus":200}`))
	}))
	t.Cleanup(srv.Close)

	tool := NewQuickTranslate(domain.ToolDeps{
		HTTP:      srv.Client(),
		Endpoints: domain.Endpoints{Translate: srv.URL + "/get"},
	})
	result := run(t, tool, domain.ToolRequest{Args: []string{"Xin", "chào"}})
	require.Equal(t, "Hello & welcome", result.Text)
	require.Equal(t, "Xin chào", gotQuery)
	require.Equal(t, "vi|en", gotPair)

	same := run(t, tool, domain.ToolRequest{Args: []string{"hi"}, Options: map[string]string{"from": "en", "to": "en"}})
	require.Equal(t, "hi", same.Text)

	requireInvalid(t, tool, domain.ToolRequest{Args: []string{"hi"}, Options: map[string]string{"to": "xx"}})
	requireInvalid(t, tool, domain.ToolRequest{})
}

func TestQuickTranslateRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"responseData":{"translatedText":""},"responseStatus":"403","responseDetails":"QUOTA EXCEEDED"}`))
	}))
	t.Cleanup(srv.Close)

	tool := NewQuickTranslate(domain.ToolDeps{HTTP: srv.Client(), Endpoints: domain.Endpoints{Translate: srv.URL}})
	_, err := tool.Run(context.Background(), domain.ToolRequest{Args: []string{"xin chào"}})
	requireUnavailable(t, err)
	require.Contains(t, err.Error(), "QUOTA EXCEEDED")
}

func TestWeather(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("name") != "Hà Nội" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(`{"results":[{"name":"Hà Nội","latitude":21.0245,"longitude":105.8412,"country":"Việt Nam","admin1":"Hà Nội"}]}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "21.0245", r.URL.Query().Get("latitude"))
		_, _ = w.Write([]byte(`{"timezone":"Asia/Bangkok","current":{"time":"2026-10-18T09:00","temperature_2m":27.4,"relative_humidity_2m":78,"apparent_temperature":30.1,"wind_speed_10m":8.6,"weather_code":61}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	tool := NewWeather(domain.ToolDeps{
		HTTP: srv.Client(),
		Endpoints: domain.Endpoints{
			Geocoding: srv.URL + "/search",
			Weather:   srv.URL + "/forecast",
		},
	})

	result := run(t, tool, domain.ToolRequest{Args: []string{"Hà", "Nội"}})
	require.Equal(t, "Hà Nội, Việt Nam", fieldValue(t, result, "Địa điểm"))
	require.Equal(t, "Mưa", fieldValue(t, result, "Thời tiết"))
	require.Equal(t, "27.4 °C", fieldValue(t, result, "Nhiệt độ"))
	require.Equal(t, "78 %", fieldValue(t, result, "Độ ẩm"))

	_, err := tool.Run(context.Background(), domain.ToolRequest{Args: []string{"Atlantis"}})
	require.True(t, domain.IsNotFound(err))
}

func TestDescribeWeatherCode(t *testing.T) {
	require.Equal(t, "Trời quang", describeWeatherCode(0))
	require.Equal(t, "Có mây", describeWeatherCode(2))
	require.Equal(t, "Dông", describeWeatherCode(95))
	require.Equal(t, "Không xác định", describeWeatherCode(42))
}

func TestGetJSONRejectsMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	t.Cleanup(srv.Close)

	var out map[string]any
	err := getJSON(context.Background(), srv.Client(), "test", srv.URL, nil, &out)
	requireUnavailable(t, err)
}

func TestGetJSONCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out map[string]any
	err := getJSON(ctx, srv.Client(), "test", srv.URL, nil, &out)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeCanceled, code)
}
