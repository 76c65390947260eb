// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"gitlab.com/accumulatenetwork/fraction/internal/encoding"
)

// Success returns true if the status represents success.
func (s Status) Success() bool { return s < 300 }

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// IsClientError returns true if the status is a client error, that is an
// error caused by the arguments of the call.
func (s Status) IsClientError() bool { return s >= 400 && s < 500 }

// IsServerError returns true if the status is a server error.
func (s Status) IsServerError() bool { return s >= 500 }

// Error implements error.
func (s Status) Error() string { return s.String() }

// Skip returns a factory that attributes errors to the caller N frames above
// its own caller. Helpers that construct errors use Skip(1).
func (s Status) Skip(n int) Factory {
	return Factory{skip: n, code: s}
}

// Wrap wraps err with the status. Wrap returns nil if err is nil.
func (s Status) Wrap(err error) error {
	return s.Skip(1).Wrap(err)
}

// With returns an error with the status and a message formatted with
// fmt.Sprint.
func (s Status) With(v ...interface{}) *Error {
	return s.Skip(1).With(v...)
}

// WithFormat returns an error with the status and a message formatted with
// fmt.Errorf. A %w verb sets the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	return s.Skip(1).WithFormat(format, args...)
}

// WithCauseAndFormat returns an error with the status, the given cause, and a
// formatted message.
func (s Status) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	return s.Skip(1).WithCauseAndFormat(cause, format, args...)
}

// Factory creates errors with a status.
type Factory struct {
	skip int
	code Status
}

func (f Factory) Wrap(err error) error {
	if err == nil {
		// Must be an untyped nil
		return nil
	}

	// An unknown status adds nothing to an existing Error
	if e, ok := err.(*Error); ok && !f.code.IsKnownError() && !trackLocation {
		return e
	}

	e := f.make()
	e.chain(fromError(err))
	return e
}

func (f Factory) With(v ...interface{}) *Error {
	e := f.make()
	e.Message = fmt.Sprint(v...)
	return e
}

func (f Factory) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := f.make()
	e.Message = err.Error()
	if cause := errors.Unwrap(err); cause != nil {
		e.chain(fromError(cause))
	}
	return e
}

func (f Factory) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	e := f.make()
	e.Message = fmt.Sprintf(format, args...)
	if cause != nil {
		e.chain(fromError(cause))
	}
	return e
}

func (f Factory) make() *Error {
	e := &Error{Code: f.code}
	e.record(3 + f.skip)
	return e
}

// fromError returns err as an Error. Errors from the encoding package get
// EncodingError and any other foreign error gets UnknownError.
func fromError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var s Status
	if errors.As(err, &s) {
		return &Error{Code: s, Message: err.Error()}
	}

	e = &Error{Code: UnknownError, Message: err.Error()}
	var encErr encoding.Error
	if errors.As(err, &encErr) {
		e.Code = EncodingError
		err = encErr.E
	}
	if cause := errors.Unwrap(err); cause != nil {
		e.chain(fromError(cause))
	}
	return e
}

// chain sets the cause of e. If e does not have a known status it takes the
// status of the cause, and if it has no message it is replaced by the cause.
func (e *Error) chain(cause *Error) {
	e.Cause = cause
	switch {
	case cause == nil, e.Code.IsKnownError():
	case e.Message != "":
		e.Code = cause.Code
	default:
		stack := e.CallStack
		*e = *cause
		e.CallStack = append(stack, cause.CallStack...)
	}
}

func (e *Error) record(depth int) {
	if !trackLocation {
		return
	}

	pc, file, line, ok := runtime.Caller(depth)
	if !ok {
		return
	}

	cs := &CallSite{File: file, Line: int64(line)}
	if fn := runtime.FuncForPC(pc); fn != nil {
		cs.FuncName = fn.Name()
	}
	e.CallStack = append(e.CallStack, cs)
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return e.Code.String()
	}
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

// Format prints the error. %+v includes call stacks, see [Error.Print].
func (e *Error) Format(f fmt.State, verb rune) {
	if f.Flag('+') {
		_, _ = f.Write([]byte(e.Print()))
	} else {
		_, _ = f.Write([]byte(e.Error()))
	}
}

// Print prints the error and each of its causes, each followed by its call
// stack. An error without a call stack prints the same as Error.
func (e *Error) Print() string {
	if e.CallStack == nil {
		return e.Error()
	}

	var sb strings.Builder
	for ; e != nil; e = e.Cause {
		msg := e.Message
		if msg == "" {
			msg = e.Code.String()
		} else if e.Cause != nil {
			msg = strings.TrimSuffix(msg, e.Cause.Message)
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(msg)
		sb.WriteByte('\n')
		for _, cs := range e.CallStack {
			fmt.Fprintf(&sb, "%s\n    %s:%d\n", cs.FuncName, cs.File, cs.Line)
		}
	}
	return sb.String()
}

// Is returns true if e or one of its causes has the status of target, which
// may be a Status or an *Error.
func (e *Error) Is(target error) bool {
	var code Status
	switch t := target.(type) {
	case Status:
		code = t
	case *Error:
		code = t.Code
	default:
		return false
	}

	for ; e != nil; e = e.Cause {
		if e.Code == code {
			return true
		}
	}
	return false
}
