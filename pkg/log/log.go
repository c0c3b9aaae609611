// Copyright 2026 Radial Networks
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log provides logging for the whole code base. It is a thin layer
// on top of zap with a key value oriented API. The logging context is a list
// of alternating keys and values; keys must be strings.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/radialnet/radial/pkg/private/serrors"
)

// Level is the log level.
type Level zapcore.Level

// The supported levels.
const (
	DebugLevel = Level(zapcore.DebugLevel)
	InfoLevel  = Level(zapcore.InfoLevel)
	ErrorLevel = Level(zapcore.ErrorLevel)
)

// Logger describes the logger interface.
type Logger interface {
	New(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Enabled(lvl Level) bool
}

type logger struct {
	logger *zap.Logger
}

func (l *logger) New(ctx ...any) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...any) {
	l.logger.Debug(msg, convertCtx(ctx)...)
}

func (l *logger) Info(msg string, ctx ...any) {
	l.logger.Info(msg, convertCtx(ctx)...)
}

func (l *logger) Error(msg string, ctx ...any) {
	l.logger.Error(msg, convertCtx(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(zapcore.Level(lvl))
}

func convertCtx(ctx []any) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fields = append(fields, zap.Any(ctx[i].(string), ctx[i+1]))
	}
	return fields
}

var root = &logger{logger: zap.NewNop()}

// Setup configures the root logger. It must be called before the root logger
// is used, otherwise all messages are discarded.
func Setup(cfg Config) error {
	cfg.InitDefaults()
	zCfg, err := cfg.Console.zapConfig()
	if err != nil {
		return err
	}
	zLogger, err := zCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return serrors.Wrap("creating logger", err)
	}
	root = &logger{logger: zLogger}
	return nil
}

// Root returns the root logger. It is never nil.
func Root() Logger {
	return root
}

// Discard sets the root logger to discard all messages.
func Discard() {
	root = &logger{logger: zap.NewNop()}
}

// Flush writes buffered log entries to their destination.
func Flush() {
	// Sync on stderr is best effort, the error is intentionally dropped.
	_ = root.logger.Sync()
}

// New creates a logger with the given context on top of the root logger.
func New(ctx ...any) Logger {
	return root.New(ctx...)
}

// Debug logs at debug level on the root logger.
func Debug(msg string, ctx ...any) {
	root.Debug(msg, ctx...)
}

// Info logs at info level on the root logger.
func Info(msg string, ctx ...any) {
	root.Info(msg, ctx...)
}

// Error logs at error level on the root logger.
func Error(msg string, ctx ...any) {
	root.Error(msg, ctx...)
}

// Config configures the logging subsystem.
type Config struct {
	// Console configures the console logging destination.
	Console ConsoleConfig
}

// InitDefaults initializes the unset fields to default values.
func (c *Config) InitDefaults() {
	c.Console.initDefaults()
}

// ConsoleConfig configures the console destination of the root logger.
type ConsoleConfig struct {
	// Level of console logging (defaults to info).
	Level string
	// Format of the console logging, "human" or "json" (defaults to human).
	Format string
	// DisableCaller stops annotating logs with the calling function's file
	// name and line number.
	DisableCaller bool
}

func (c *ConsoleConfig) initDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "human"
	}
}

func (c *ConsoleConfig) zapConfig() (zap.Config, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return zap.Config{}, serrors.Join(errInvalidLevel, nil, "level", c.Level)
	}
	encoding := "console"
	if c.Format == "json" {
		encoding = "json"
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		DisableCaller:     c.DisableCaller,
		DisableStacktrace: true,
		Encoding:          encoding,
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stderr"},
		ErrorOutputPaths:  []string{"stderr"},
	}, nil
}

var errInvalidLevel = serrors.New("unsupported log level")
