package domain

const (
	RecentToolsLimit     = 6
	RecentToolsKey       = "recent_tools"
	SearchThreshold      = 30
	DefaultFeaturedLimit = 8
)

const (
	DefaultConfigFileName             = "toolbox.yaml"
	DefaultDataFileName               = "toolbox.db"
	DefaultLogLevel                   = "warn"
	DefaultHTTPTimeoutSeconds         = 10
	DefaultAPIListenAddress           = "127.0.0.1:8787"
	DefaultObservabilityListenAddress = "127.0.0.1:9090"
)

const (
	DefaultCurrencyEndpoint  = "https://open.er-api.com/v6/latest"
	DefaultGeocodingEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultWeatherEndpoint   = "https://api.open-meteo.com/v1/forecast"
	DefaultTranslateEndpoint = "https://api.mymemory.translated.net/get"
)
