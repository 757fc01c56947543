package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"toolbox/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g.
// TOOLBOX_SEARCH_FEATUREDLIMIT.
const EnvPrefix = "TOOLBOX"

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger.Named("config")}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dataDir", "")
	v.SetDefault("logLevel", domain.DefaultLogLevel)
	v.SetDefault("search.featuredLimit", domain.DefaultFeaturedLimit)
	v.SetDefault("http.timeoutSeconds", domain.DefaultHTTPTimeoutSeconds)
	v.SetDefault("endpoints.currency", domain.DefaultCurrencyEndpoint)
	v.SetDefault("endpoints.geocoding", domain.DefaultGeocodingEndpoint)
	v.SetDefault("endpoints.weather", domain.DefaultWeatherEndpoint)
	v.SetDefault("endpoints.translate", domain.DefaultTranslateEndpoint)
	v.SetDefault("api.listenAddress", domain.DefaultAPIListenAddress)
	v.SetDefault("observability.listenAddress", domain.DefaultObservabilityListenAddress)
	v.SetDefault("observability.metricsEnabled", false)
}

type rawConfig struct {
	DataDir       string                 `mapstructure:"dataDir"`
	LogLevel      string                 `mapstructure:"logLevel"`
	Search        rawSearchConfig        `mapstructure:"search"`
	HTTP          rawHTTPConfig          `mapstructure:"http"`
	Endpoints     rawEndpoints           `mapstructure:"endpoints"`
	API           rawAPIConfig           `mapstructure:"api"`
	Observability rawObservabilityConfig `mapstructure:"observability"`
}

type rawSearchConfig struct {
	FeaturedLimit int `mapstructure:"featuredLimit"`
}

type rawHTTPConfig struct {
	TimeoutSeconds int `mapstructure:"timeoutSeconds"`
}

type rawEndpoints struct {
	Currency  string `mapstructure:"currency"`
	Geocoding string `mapstructure:"geocoding"`
	Weather   string `mapstructure:"weather"`
	Translate string `mapstructure:"translate"`
}

type rawAPIConfig struct {
	ListenAddress string `mapstructure:"listenAddress"`
}

type rawObservabilityConfig struct {
	ListenAddress  string `mapstructure:"listenAddress"`
	MetricsEnabled bool   `mapstructure:"metricsEnabled"`
}

// DefaultPath returns the config file location under the user config
// directory.
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), domain.DefaultConfigFileName)
}

// DefaultDataDir returns the directory holding the config file and the
// local database.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".toolbox"
	}
	return filepath.Join(dir, "toolbox")
}

// Load reads path, applies TOOLBOX_ environment overrides and defaults,
// then validates the result. A missing file is not an error.
func (l *Loader) Load(ctx context.Context, path string) (domain.Config, error) {
	const op = "config.load"
	v := newViper()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			l.logger.Debug("config file not found, using defaults", zap.String("path", path))
		case err != nil:
			return domain.Config{}, domain.E(domain.CodeFailedPrecond, op, "read config", err)
		default:
			expanded, missing, err := expandConfigEnv(data)
			if err != nil {
				return domain.Config{}, domain.E(domain.CodeInvalidArgument, op, "", err)
			}
			if len(missing) > 0 {
				l.logger.Warn("missing environment variables in config", zap.String("path", path), zap.Strings("missing", missing))
			}
			if err := v.ReadConfig(bytes.NewBufferString(expanded)); err != nil {
				return domain.Config{}, domain.E(domain.CodeInvalidArgument, op, "parse config", err)
			}
		}
	}

	var raw rawConfig
	if err := v.Unmarshal(&raw); err != nil {
		return domain.Config{}, domain.E(domain.CodeInvalidArgument, op, "decode config", err)
	}
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	cfg, problems := normalizeConfig(raw)
	if len(problems) > 0 {
		return domain.Config{}, domain.E(domain.CodeInvalidArgument, op, strings.Join(problems, "; "), nil)
	}
	return cfg, nil
}

func normalizeConfig(raw rawConfig) (domain.Config, []string) {
	var problems []string

	dataDir := strings.TrimSpace(raw.DataDir)
	if dataDir == "" {
		dataDir = DefaultDataDir()
	}

	logLevel := strings.ToLower(strings.TrimSpace(raw.LogLevel))
	if logLevel == "" {
		logLevel = domain.DefaultLogLevel
	}
	if logLevel != "off" {
		if _, err := zapcore.ParseLevel(logLevel); err != nil {
			problems = append(problems, fmt.Sprintf("logLevel: unknown level %q", raw.LogLevel))
		}
	}

	if raw.Search.FeaturedLimit < 0 {
		problems = append(problems, "search.featuredLimit must be >= 0")
	}
	if raw.HTTP.TimeoutSeconds <= 0 {
		problems = append(problems, "http.timeoutSeconds must be > 0")
	}

	endpoints := domain.Endpoints{
		Currency:  strings.TrimSpace(raw.Endpoints.Currency),
		Geocoding: strings.TrimSpace(raw.Endpoints.Geocoding),
		Weather:   strings.TrimSpace(raw.Endpoints.Weather),
		Translate: strings.TrimSpace(raw.Endpoints.Translate),
	}
	for name, value := range map[string]string{
		"endpoints.currency":  endpoints.Currency,
		"endpoints.geocoding": endpoints.Geocoding,
		"endpoints.weather":   endpoints.Weather,
		"endpoints.translate": endpoints.Translate,
	} {
		if problem := validateEndpoint(name, value); problem != "" {
			problems = append(problems, problem)
		}
	}

	apiAddr := strings.TrimSpace(raw.API.ListenAddress)
	if apiAddr == "" {
		problems = append(problems, "api.listenAddress is required")
	}
	obsAddr := strings.TrimSpace(raw.Observability.ListenAddress)
	if obsAddr == "" {
		obsAddr = domain.DefaultObservabilityListenAddress
	}

	slices.Sort(problems)

	return domain.Config{
		DataDir:            dataDir,
		LogLevel:           logLevel,
		FeaturedLimit:      raw.Search.FeaturedLimit,
		HTTPTimeoutSeconds: raw.HTTP.TimeoutSeconds,
		Endpoints:          endpoints,
		API:                domain.APIConfig{ListenAddress: apiAddr},
		Observability: domain.ObservabilityConfig{
			ListenAddress:  obsAddr,
			MetricsEnabled: raw.Observability.MetricsEnabled,
		},
	}, problems
}

func validateEndpoint(name, value string) string {
	if value == "" {
		return name + " is required"
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Sprintf("%s: %q must be an absolute http(s) url", name, value)
	}
	return ""
}
