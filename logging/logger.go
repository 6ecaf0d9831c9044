package logging

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultLevel = "warn"

	// RFC3339Micros is RFC 3339 UTC with fixed microsecond precision.
	RFC3339Micros = "2006-01-02T15:04:05.000000Z"
)

type Options struct {
	Level string
	File  string
}

func encodeTimeMicros(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.UTC().Format(RFC3339Micros))
}

func encodeSeverity(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var severity string
	switch level {
	case zapcore.DebugLevel:
		severity = "DEBUG"
	case zapcore.InfoLevel:
		severity = "INFO"
	case zapcore.WarnLevel:
		severity = "WARNING"
	case zapcore.ErrorLevel:
		severity = "ERROR"
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		severity = "CRITICAL"
	default:
		severity = "DEFAULT"
	}
	enc.AppendString(severity)
}

func level(option string) (zapcore.Level, error) {
	if option == "" {
		option = DefaultLevel
	}
	return zapcore.ParseLevel(strings.ToLower(option))
}

// New builds a JSON logger. Output goes to stderr unless a file is given;
// stdout is reserved for the conversation with the user.
func New(options Options) (*zap.Logger, error) {
	lvl, err := level(options.Level)
	if err != nil {
		return nil, fmt.Errorf("could not parse log level %q: %w", options.Level, err)
	}

	output := "stderr"
	if options.File != "" {
		output = options.File
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Sampling = nil
	cfg.OutputPaths = []string{output}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = encodeTimeMicros
	cfg.EncoderConfig.LevelKey = "severity"
	cfg.EncoderConfig.EncodeLevel = encodeSeverity
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.CallerKey = "caller"

	logger, err := cfg.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("could not build logger: %w", err)
	}
	return logger, nil
}
