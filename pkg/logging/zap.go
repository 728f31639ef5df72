package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/core-tools/jobshell/pkg/errors"
)

// ZapConfig controls the zap backend used for shell diagnostics.
// The interactive stream (prompt, job notices) never goes through here;
// diagnostics are written to stderr so they can be filtered apart from
// job output when the shell runs non-interactively.
type ZapConfig struct {
	Level string // "debug", "info", "warn", "error"
}

// NewZapLogger builds a Logger backed by a zap SugaredLogger
func NewZapLogger(config ZapConfig, prefix string) (Logger, error) {
	level, err := parseLevel(config.Level)
	if err != nil {
		return nil, err
	}

	zapConfig := zap.NewDevelopmentConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.OutputPaths = []string{"stderr"}
	zapConfig.ErrorOutputPaths = []string{"stderr"}
	zapConfig.DisableStacktrace = true

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, errors.NewInternalError("failed to build zap logger", err)
	}

	sugar := zapLogger.Sugar()
	return NewLogger(prefix, LogFuncs{
		Debugf: sugar.Debugf,
		Infof:  sugar.Infof,
		Warnf:  sugar.Warnf,
		Errorf: sugar.Errorf,
	}), nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn":
		return zapcore.WarnLevel, nil
	case "", "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.ErrorLevel, errors.NewValidationError("unsupported log level: "+level, nil)
	}
}
