package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stderr selects console output on standard error.
const Stderr = "stderr"

// New builds a zap logger. An empty output discards everything, Stderr gives
// the human readable console encoder and any other value is treated as a
// file path receiving JSON lines.
func New(levelStr, output string) (*zap.Logger, error) {
	if output == "" {
		return zap.NewNop(), nil
	}

	var cfg zap.Config
	if output == Stderr {
		cfg = zap.NewDevelopmentConfig()
		cfg.DisableStacktrace = true
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	cfg.Level = zap.NewAtomicLevelAt(ParseLevel(levelStr))
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{output}

	return cfg.Build()
}

func ParseLevel(levelStr string) zapcore.Level {
	switch levelStr {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	}
	return zapcore.InfoLevel
}
