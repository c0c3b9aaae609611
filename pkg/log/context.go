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

package log

import (
	"context"

	"github.com/opentracing/opentracing-go"
)

type loggerKey struct{}

// CtxWith returns a new context with the given logger attached.
func CtxWith(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromCtx returns the logger attached to the context, or the root logger if
// the context carries none. If the context carries an opentracing span, the
// returned logger additionally writes all messages to the span.
func FromCtx(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return attachSpan(ctx, logger)
	}
	return attachSpan(ctx, Root())
}

// WithLabels returns the context logger extended with the given labels, and
// a new context with that logger attached.
func WithLabels(ctx context.Context, labels ...any) (context.Context, Logger) {
	logger := FromCtx(ctx).New(labels...)
	return CtxWith(ctx, logger), logger
}

func attachSpan(ctx context.Context, logger Logger) Logger {
	if span := opentracing.SpanFromContext(ctx); span != nil {
		return Span{Logger: logger, Span: span}
	}
	return logger
}

// Span is a logger that attaches all messages to an opentracing span, in
// addition to writing them to the wrapped logger.
type Span struct {
	Logger Logger
	Span   opentracing.Span
}

// New creates a new logger with the given context, attached to the same span.
func (s Span) New(ctx ...any) Logger {
	return Span{Logger: s.Logger.New(ctx...), Span: s.Span}
}

// Debug logs at debug level.
func (s Span) Debug(msg string, ctx ...any) {
	s.spanLog("debug", msg, ctx)
	s.Logger.Debug(msg, ctx...)
}

// Info logs at info level.
func (s Span) Info(msg string, ctx ...any) {
	s.spanLog("info", msg, ctx)
	s.Logger.Info(msg, ctx...)
}

// Error logs at error level.
func (s Span) Error(msg string, ctx ...any) {
	s.spanLog("error", msg, ctx)
	s.Logger.Error(msg, ctx...)
}

// Enabled reports whether the wrapped logger is enabled at the given level.
func (s Span) Enabled(lvl Level) bool {
	return s.Logger.Enabled(lvl)
}

func (s Span) spanLog(lvl, msg string, ctx []any) {
	fields := make([]any, 0, 4+len(ctx))
	fields = append(fields, "event", msg, "level", lvl)
	fields = append(fields, ctx...)
	s.Span.LogKV(fields...)
}
