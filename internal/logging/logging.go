// Package logging builds the zap logger used by the citydelivery CLI.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel overrides the configured level when set to a known level name.
const EnvLogLevel = "CITYDELIVERY_LOG_LEVEL"

// New returns a console logger writing to stderr at the given level, after
// applying the EnvLogLevel override. "off" (and its aliases) yields a no-op
// logger. Unknown names fall back to warn.
func New(level string) (*zap.Logger, error) {
	lvl, enabled, ok := ParseLevel(os.Getenv(EnvLogLevel))
	if !ok {
		lvl, enabled, ok = ParseLevel(level)
		if !ok {
			lvl, enabled = zapcore.WarnLevel, true
		}
	}
	if !enabled {
		return zap.NewNop(), nil
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// ParseLevel maps a level name to a zap level. enabled is false for the
// names that switch logging off; ok is false for empty or unknown names.
func ParseLevel(raw string) (lvl zapcore.Level, enabled, ok bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zapcore.WarnLevel, true, false
	case "debug", "trace":
		return zapcore.DebugLevel, true, true
	case "info":
		return zapcore.InfoLevel, true, true
	case "warn", "warning":
		return zapcore.WarnLevel, true, true
	case "error":
		return zapcore.ErrorLevel, true, true
	case "disabled", "off", "none":
		return zapcore.WarnLevel, false, true
	default:
		return zapcore.WarnLevel, true, false
	}
}
