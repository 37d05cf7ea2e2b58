// Copyright 2026 Microsoft. All rights reserved.
// MIT License

package zaplog

import (
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultMaxSizeInMB = 10
	defaultMaxBackups  = 5
)

// Config selects the log level and the optional rotated log file.
type Config struct {
	// Level is parsed with zapcore.ParseLevel. Empty means warn.
	Level       string
	LogPath     string
	MaxSizeInMB int
	MaxBackups  int
	Component   string
}

type compoundCloser []func()

func (c compoundCloser) Close() {
	for _, closer := range c {
		closer()
	}
}

func encoder() zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewJSONEncoder(encoderConfig)
}

// New builds a JSON logger writing to console and, when LogPath is set, to a
// lumberjack rotated file. Every entry carries the pid, the component and an
// id unique to this invocation. The returned func closes the file sink.
func New(cfg *Config, console io.Writer) (*zap.Logger, func(), error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		l, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, func() {}, errors.Wrapf(err, "invalid log level %q", cfg.Level)
		}
		level = l
	}

	closer := compoundCloser{}
	cores := []zapcore.Core{zapcore.NewCore(encoder(), zapcore.AddSync(console), level)}
	if cfg.LogPath != "" {
		core, fileCloser := fileCore(cfg, level)
		cores = append(cores, core)
		closer = append(closer, fileCloser)
	}

	logger := zap.New(zapcore.NewTee(cores...)).With(
		zap.Int("pid", os.Getpid()),
		zap.String("component", cfg.Component),
		zap.String("invocationID", uuid.New().String()),
	)
	return logger, closer.Close, nil
}

func fileCore(cfg *Config, level zapcore.Level) (zapcore.Core, func()) {
	maxSize, maxBackups := cfg.MaxSizeInMB, cfg.MaxBackups
	if maxSize <= 0 {
		maxSize = defaultMaxSizeInMB
	}
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	filesink := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    maxSize, // MegaBytes
		MaxBackups: maxBackups,
	}
	return zapcore.NewCore(encoder(), zapcore.AddSync(filesink), level), func() { _ = filesink.Close() }
}
