package tools

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"toolbox/internal/domain"
)

type geocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

type forecastResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time         string  `json:"time"`
		Temperature  float64 `json:"temperature_2m"`
		Humidity     float64 `json:"relative_humidity_2m"`
		ApparentTemp float64 `json:"apparent_temperature"`
		WindSpeed    float64 `json:"wind_speed_10m"`
		WeatherCode  int     `json:"weather_code"`
	} `json:"current"`
}

// Weather looks up a place and reports its current conditions.
//
// Args: place name, e.g. "Hà Nội".
type Weather struct {
	http      domain.HTTPDoer
	geocoding string
	forecast  string
}

func NewWeather(deps domain.ToolDeps) domain.Tool {
	deps = deps.WithDefaults()
	return &Weather{http: deps.HTTP, geocoding: deps.Endpoints.Geocoding, forecast: deps.Endpoints.Weather}
}

func (w *Weather) Run(ctx context.Context, req domain.ToolRequest) (domain.ToolResult, error) {
	const op = "tools.weather"
	place, err := requireText(op, req)
	if err != nil {
		return domain.ToolResult{}, err
	}

	var places geocodingResponse
	query := url.Values{"name": {place}, "count": {"1"}, "language": {"vi"}, "format": {"json"}}
	if err := getJSON(ctx, w.http, op, w.geocoding, query, &places); err != nil {
		return domain.ToolResult{}, err
	}
	if len(places.Results) == 0 {
		return domain.ToolResult{}, domain.E(domain.CodeNotFound, op, fmt.Sprintf("no place named %q", place), nil)
	}
	location := places.Results[0]

	var forecast forecastResponse
	query = url.Values{
		"latitude":  {strconv.FormatFloat(location.Latitude, 'f', 4, 64)},
		"longitude": {strconv.FormatFloat(location.Longitude, 'f', 4, 64)},
		"current":   {"temperature_2m,relative_humidity_2m,apparent_temperature,wind_speed_10m,weather_code"},
		"timezone":  {"auto"},
	}
	if err := getJSON(ctx, w.http, op, w.forecast, query, &forecast); err != nil {
		return domain.ToolResult{}, err
	}

	name := location.Name
	if location.Admin1 != "" && location.Admin1 != location.Name {
		name += ", " + location.Admin1
	}
	if location.Country != "" {
		name += ", " + location.Country
	}
	current := forecast.Current
	return fieldsResult(
		field("Địa điểm", name),
		field("Thời tiết", describeWeatherCode(current.WeatherCode)),
		field("Nhiệt độ", formatRounded(current.Temperature, 1)+" °C"),
		field("Cảm giác như", formatRounded(current.ApparentTemp, 1)+" °C"),
		field("Độ ẩm", formatRounded(current.Humidity, 0)+" %"),
		field("Gió", formatRounded(current.WindSpeed, 1)+" km/h"),
		field("Thời điểm", current.Time),
	), nil
}

// describeWeatherCode maps WMO weather interpretation codes.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "Trời quang"
	case code >= 1 && code <= 3:
		return "Có mây"
	case code == 45 || code == 48:
		return "Sương mù"
	case code >= 51 && code <= 57:
		return "Mưa phùn"
	case code >= 61 && code <= 67:
		return "Mưa"
	case code >= 71 && code <= 77:
		return "Tuyết"
	case code >= 80 && code <= 82:
		return "Mưa rào"
	case code >= 85 && code <= 86:
		return "Mưa tuyết"
	case code >= 95:
		return "Dông"
	default:
		return "Không xác định"
	}
}
