package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global *zap.SugaredLogger

// Init builds the process-wide logger at the given level ("debug", "info",
// "warn", "error") and installs it for Logger().
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	z, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}

	global = z.Sugar()
	return nil
}

// Set installs an already-built logger. Tests use this to capture output.
func Set(l *zap.SugaredLogger) { global = l }

// Logger returns the process-wide logger. It must return a non-nil
// *SugaredLogger, so before Init it falls back to a no-op logger.
func Logger() *zap.SugaredLogger {
	if global == nil {
		return zap.NewNop().Sugar()
	}
	return global
}
