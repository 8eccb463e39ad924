package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how New builds the logger.
type Options struct {
	JSON  bool
	Debug bool
	// File receives the log instead of stderr, keeping the interactive menu readable.
	File string
	// Name is attached to every entry under the "logger" key.
	Name string
}

// New builds the application logger. Console encoding is used unless JSON is set.
func New(opts Options) (*zap.Logger, error) {
	cfg := zap.Config{
		Encoding:         encoding(opts.JSON),
		Level:            zap.NewAtomicLevelAt(level(opts.Debug)),
		OutputPaths:      outputs(opts.File),
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "step",
			NameKey:    "logger",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.ISO8601TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,

			EncodeDuration: zapcore.StringDurationEncoder,
		},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	if opts.Name != "" {
		logger = logger.Named(opts.Name)
	}

	return logger, nil
}

func encoding(json bool) string {
	if json {
		return "json"
	}
	return "console"
}

func level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func outputs(file string) []string {
	if file == "" {
		return []string{"stderr"}
	}
	return []string{file}
}
