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

// Package serrors provides enhanced errors. Errors created with serrors can
// carry additional log context in the form of key value pairs, an underlying
// cause, and an optional base error (typically a package-level sentinel).
// The returned errors support the std errors Is and As functionality: for any
// returned error err, errors.Is(err, err) is true; if err was created with a
// base or a cause, errors.Is reports true for those as well.
package serrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxPair is one item of context information.
type ctxPair struct {
	Key   string
	Value any
}

// Error is the error implementation of this package. It aggregates a message
// (or a base error), an optional cause, key value context and an optional
// stack dump. Use the package-level constructors instead of building values
// directly.
type Error struct {
	// msg is the error message. It is empty if base is set.
	msg   string
	base  error
	cause error
	ctx   []ctxPair
	stack *stack
}

func (e *Error) Error() string {
	var sb strings.Builder
	if e.base != nil {
		sb.WriteString(e.base.Error())
	} else {
		sb.WriteString(e.msg)
	}
	if len(e.ctx) > 0 {
		sb.WriteString(" {")
		for i, p := range e.ctx {
			if i > 0 {
				sb.WriteString("; ")
			}
			fmt.Fprintf(&sb, "%s=%v", p.Key, p.Value)
		}
		sb.WriteString("}")
	}
	if e.cause != nil {
		fmt.Fprintf(&sb, ": %s", e.cause)
	}
	return sb.String()
}

// Unwrap supports the std errors traversal. Both the base error and the
// cause, when present, count as wrapped.
func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.base != nil {
		errs = append(errs, e.base)
	}
	if e.cause != nil {
		errs = append(errs, e.cause)
	}
	return errs
}

// MarshalLogObject implements zapcore.ObjectMarshaler for a log
// representation that keeps the context as structured fields.
func (e *Error) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.base != nil {
		enc.AddString("msg", e.base.Error())
	} else {
		enc.AddString("msg", e.msg)
	}
	if e.cause != nil {
		if m, ok := e.cause.(zapcore.ObjectMarshaler); ok {
			if err := enc.AddObject("cause", m); err != nil {
				return err
			}
		} else {
			enc.AddString("cause", e.cause.Error())
		}
	}
	if e.stack != nil {
		if err := enc.AddArray("stacktrace", e.stack); err != nil {
			return err
		}
	}
	for _, pair := range e.ctx {
		zap.Any(pair.Key, pair.Value).AddTo(enc)
	}
	return nil
}

// New creates a new error with the given message and context, plus a stack
// dump. Avoid it in performance critical code, and prefer errors.New for
// plain sentinel errors that are only used as a base for Join.
func New(msg string, errCtx ...any) error {
	return &Error{
		msg:   msg,
		ctx:   mkCtx(errCtx),
		stack: callers(),
	}
}

// Wrap returns an error that associates the given message with the given
// cause (an underlying error) and context. A stack dump is attached unless
// the cause already carries one. The returned error supports Is: Is(cause)
// returns true.
func Wrap(msg string, cause error, errCtx ...any) error {
	return &Error{
		msg:   msg,
		cause: cause,
		ctx:   mkCtx(errCtx),
		stack: stackUnlessPresent(cause),
	}
}

// WrapNoStack is Wrap without attaching a stack dump. A stack dump carried by
// the cause is preserved.
func WrapNoStack(msg string, cause error, errCtx ...any) error {
	return &Error{
		msg:   msg,
		cause: cause,
		ctx:   mkCtx(errCtx),
	}
}

// Join returns an error that associates the given base error (for example a
// unique sentinel) with the given cause, unless nil, and the given context.
// A stack dump is attached unless the cause already carries one. The returned
// error supports Is: Is(err) returns true, and Is(cause) if cause is not nil.
// Join returns nil if both err and cause are nil.
func Join(err, cause error, errCtx ...any) error {
	if err == nil && cause == nil {
		return nil
	}
	return &Error{
		base:  err,
		cause: cause,
		ctx:   mkCtx(errCtx),
		stack: stackUnlessPresent(cause),
	}
}

// JoinNoStack is Join without attaching a stack dump.
func JoinNoStack(err, cause error, errCtx ...any) error {
	if err == nil && cause == nil {
		return nil
	}
	return &Error{
		base:  err,
		cause: cause,
		ctx:   mkCtx(errCtx),
	}
}

// IsTimeout returns whether err is or is caused by a timeout error.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// IsTemporary returns whether err is or is caused by a temporary error.
func IsTemporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}

// List is a slice of errors.
type List []error

// Error implements the error interface.
func (e List) Error() string {
	s := make([]string, 0, len(e))
	for _, err := range e {
		s = append(s, err.Error())
	}
	return fmt.Sprintf("[ %s ]", strings.Join(s, "; "))
}

// ToError returns the list as an error interface implementation, or nil if
// the list is empty.
func (e List) ToError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// MarshalLogArray implements zapcore.ArrayMarshaler for a nicer logging
// format of error lists.
func (e List) MarshalLogArray(ae zapcore.ArrayEncoder) error {
	for _, err := range e {
		if m, ok := err.(zapcore.ObjectMarshaler); ok {
			if err := ae.AppendObject(m); err != nil {
				return err
			}
		} else {
			ae.AppendString(err.Error())
		}
	}
	return nil
}

func mkCtx(errCtx []any) []ctxPair {
	np := len(errCtx) / 2
	if np == 0 {
		return nil
	}
	ctx := make([]ctxPair, np)
	for i := range np {
		ctx[i] = ctxPair{Key: fmt.Sprint(errCtx[2*i]), Value: errCtx[2*i+1]}
	}
	sort.Slice(ctx, func(a, b int) bool { return ctx[a].Key < ctx[b].Key })
	return ctx
}

// stackUnlessPresent captures a stack dump unless the cause chain already
// contains an Error with one. The innermost dump is the interesting one.
func stackUnlessPresent(cause error) *stack {
	var e *Error
	if errors.As(cause, &e) && e.stack != nil {
		return nil
	}
	return callers()
}
