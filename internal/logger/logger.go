// Package logger builds the zap logger used for diagnostic output.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/twardoch/pyfs-utils/internal/config"
)

// Config describes how diagnostic output is produced.
type Config struct {
	// Level is the verbosity from the command line; unset means warn and above
	Level config.LogLevel
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
	// Color enables coloured level names for interactive terminals
	Color bool
}

// Setup builds a logger from cfg. Each call returns an independent logger,
// so it is safe to call more than once.
func Setup(cfg Config) (*zap.Logger, error) {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.CallerKey = zapcore.OmitKey
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if cfg.Color {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(out)),
		zap.NewAtomicLevelAt(parseLevel(cfg.Level)),
	)

	return zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// parseLevel converts a command line verbosity into a zapcore.Level
func parseLevel(level config.LogLevel) zapcore.Level {
	switch level {
	case config.LevelDebug:
		return zapcore.DebugLevel
	case config.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.WarnLevel
	}
}

// IsTerminal returns true if w is a character device such as an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Sync flushes any buffered log entries.
func Sync(log *zap.Logger) {
	if log != nil {
		_ = log.Sync()
	}
}
