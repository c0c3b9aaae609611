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

package serrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radialnet/radial/pkg/private/serrors"
)

type testErrType struct {
	msg string
}

func (e *testErrType) Error() string {
	return e.msg
}

type testToTempErr struct {
	msg       string
	timeout   bool
	temporary bool
	cause     error
}

func (e *testToTempErr) Error() string {
	return e.msg
}

func (e *testToTempErr) Timeout() bool {
	return e.timeout
}

func (e *testToTempErr) Temporary() bool {
	return e.temporary
}

func (e *testToTempErr) Unwrap() error {
	return e.cause
}

func TestNew(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err1 := serrors.New("err msg")
		err2 := serrors.New("err msg")
		assert.ErrorIs(t, err1, err1)
		assert.ErrorIs(t, err2, err2)
		assert.False(t, errors.Is(err1, err2))
		assert.False(t, errors.Is(err2, err1))
	})
	t.Run("message", func(t *testing.T) {
		err := serrors.New("err msg", "k", "v", "a", 1)
		assert.Equal(t, "err msg {a=1; k=v}", err.Error())
	})
}

func TestWrap(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := serrors.New("simple err")
		wrappedErr := serrors.Wrap("msg", err, "someCtx", "someValue")
		assert.ErrorIs(t, wrappedErr, err)
		assert.ErrorIs(t, wrappedErr, wrappedErr)
	})
	t.Run("As", func(t *testing.T) {
		err := &testErrType{msg: "test err"}
		wrappedErr := serrors.Wrap("msg", err, "someCtx", "someValue")
		var errAs *testErrType
		require.True(t, errors.As(wrappedErr, &errAs))
		assert.Equal(t, err, errAs)
	})
	t.Run("message", func(t *testing.T) {
		err := errors.New("cause")
		wrappedErr := serrors.WrapNoStack("failed to frob", err, "key", "value")
		assert.Equal(t, "failed to frob {key=value}: cause", wrappedErr.Error())
	})
}

func TestJoin(t *testing.T) {
	t.Run("Is", func(t *testing.T) {
		err := serrors.New("simple err")
		base := serrors.New("base err")
		joinedErr := serrors.JoinNoStack(base, err, "someCtx", "someValue")
		assert.ErrorIs(t, joinedErr, err)
		assert.ErrorIs(t, joinedErr, base)
		assert.ErrorIs(t, joinedErr, joinedErr)
	})
	t.Run("As", func(t *testing.T) {
		err := &testErrType{msg: "test err"}
		base := serrors.New("base err")
		joinedErr := serrors.JoinNoStack(base, err, "someCtx", "someValue")
		var errAs *testErrType
		require.True(t, errors.As(joinedErr, &errAs))
		assert.Equal(t, err, errAs)
	})
	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, serrors.Join(nil, nil))
		assert.NoError(t, serrors.JoinNoStack(nil, nil, "ctx", "ignored"))
	})
	t.Run("sentinel with context", func(t *testing.T) {
		sentinel := errors.New("resource missing")
		err := serrors.JoinNoStack(sentinel, nil, "name", "foo")
		assert.ErrorIs(t, err, sentinel)
		assert.Equal(t, "resource missing {name=foo}", err.Error())
	})
}

func TestIsTimeout(t *testing.T) {
	err := serrors.New("no timeout")
	assert.False(t, serrors.IsTimeout(err))
	wrappedErr := serrors.Wrap("timeout",
		&testToTempErr{msg: "to", timeout: true})
	assert.True(t, serrors.IsTimeout(wrappedErr))
	noTimeoutWrappingTimeout := serrors.Wrap("notimeout", &testToTempErr{
		msg:     "non timeout wraps timeout",
		timeout: false,
		cause:   &testToTempErr{msg: "timeout", timeout: true},
	})
	assert.False(t, serrors.IsTimeout(noTimeoutWrappingTimeout))
}

func TestIsTemporary(t *testing.T) {
	err := serrors.New("not temp")
	assert.False(t, serrors.IsTemporary(err))
	wrappedErr := serrors.Wrap("temp",
		&testToTempErr{msg: "to", temporary: true})
	assert.True(t, serrors.IsTemporary(wrappedErr))
	noTempWrappingTemp := serrors.Wrap("notemp", &testToTempErr{
		msg:       "non temp wraps temp",
		temporary: false,
		cause:     &testToTempErr{msg: "temp", temporary: true},
	})
	assert.False(t, serrors.IsTemporary(noTempWrappingTemp))
}

func TestList(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var l serrors.List
		assert.NoError(t, l.ToError())
	})
	t.Run("non-empty", func(t *testing.T) {
		l := serrors.List{errors.New("one"), errors.New("two")}
		err := l.ToError()
		require.Error(t, err)
		assert.Equal(t, "[ one; two ]", err.Error())
	})
}

func ExampleWrap() {
	sentinel := errors.New("pool exhausted")
	err := serrors.WrapNoStack("allocating range", sentinel, "key", "hub@net/prod")
	fmt.Println(err)
	// Output: allocating range {key=hub@net/prod}: pool exhausted
}
