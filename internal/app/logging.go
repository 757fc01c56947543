package app

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
)

// LoggingConfig configures logging wiring.
type LoggingConfig struct {
	Logger *zap.Logger
	Level  zap.AtomicLevel
	Source string
}

// Logging bundles the logger and its adjustable level.
type Logging struct {
	Logger *zap.Logger
	Level  zap.AtomicLevel
}

// NewLogging constructs logging dependencies.
func NewLogging(cfg LoggingConfig) Logging {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	source := cfg.Source
	if source == "" {
		source = telemetry.LogSourceCLI
	}
	level := cfg.Level
	if level == (zap.AtomicLevel{}) {
		level = zap.NewAtomicLevelAt(telemetry.ParseLevel(domain.DefaultLogLevel))
	}
	return Logging{
		Logger: logger.With(telemetry.LogSourceField(source)).Named("app"),
		Level:  level,
	}
}

// NewLogger returns the logger from a Logging bundle.
func NewLogger(logging Logging) *zap.Logger {
	return logging.Logger
}

// NewLogLevel returns the adjustable level from a Logging bundle.
func NewLogLevel(logging Logging) zap.AtomicLevel {
	return logging.Level
}

// ApplyLogLevel sets level from a config level name. "off" silences
// everything below fatal.
func ApplyLogLevel(level zap.AtomicLevel, name string) {
	if name == "off" {
		level.SetLevel(zapcore.FatalLevel)
		return
	}
	level.SetLevel(telemetry.ParseLevel(name))
}
