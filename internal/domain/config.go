package domain

// Config is the resolved runtime configuration.
type Config struct {
	DataDir            string              `json:"dataDir"`
	LogLevel           string              `json:"logLevel"`
	FeaturedLimit      int                 `json:"featuredLimit"`
	HTTPTimeoutSeconds int                 `json:"httpTimeoutSeconds"`
	Endpoints          Endpoints           `json:"endpoints"`
	API                APIConfig           `json:"api"`
	Observability      ObservabilityConfig `json:"observability"`
}

type APIConfig struct {
	ListenAddress string `json:"listenAddress"`
}

type ObservabilityConfig struct {
	ListenAddress  string `json:"listenAddress"`
	MetricsEnabled bool   `json:"metricsEnabled"`
}
