package telemetry

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerOptions configures NewLogger.
type LoggerOptions struct {
	Level  zap.AtomicLevel
	Output io.Writer
	JSON   bool
}

// ParseLevel maps a config level name to a zap level. Unknown names fall
// back to warn so a typo never silences errors.
func ParseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(strings.TrimSpace(strings.ToLower(name)))
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// NewLogger builds a console (or JSON) logger whose level can change at
// runtime through opts.Level.
func NewLogger(opts LoggerOptions) *zap.Logger {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	level := opts.Level
	if level == (zap.AtomicLevel{}) {
		level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(output), level)
	return zap.New(core)
}
