package core06

import (
	"errors"
	"strconv"
	"syscall"
)

const (
	// InternalStart is the first code reserved for errors of the rand family itself.
	InternalStart uint32 = 1 << 31
	// CustomStart is the first code reserved for errors of third-party sources.
	CustomStart = InternalStart + 1<<30
)

// ErrZeroCode is returned by FromCode for the zero code.
var ErrZeroCode = errors.New("error code must be non-zero")

// Error is an opaque error of the 0.6 generation.
//
// Rich representation holds an arbitrary error (see New). Minimal
// representation holds only an optional custom code and an optional raw
// platform code (see FromCode and FromOSError).
type Error struct {
	inner error
	code  uint32
	os    int32
	hasOS bool
}

// New wraps err into rich representation.
func New(err error) *Error {
	return &Error{inner: err}
}

// FromCode makes minimal representation with custom code.
func FromCode(code uint32) (*Error, error) {
	if code == 0 {
		return nil, ErrZeroCode
	}
	return &Error{code: code}, nil
}

// MustCode is like FromCode but panics on zero code.
func MustCode(code uint32) *Error {
	e, err := FromCode(code)
	if err != nil {
		panic(err)
	}
	return e
}

// FromOSError makes minimal representation with raw platform code. Zero is a legal platform code.
func FromOSError(code int32) *Error {
	return &Error{os: code, hasOS: true}
}

// Code returns custom code of the error, if any.
func (e *Error) Code() (uint32, bool) {
	if e == nil {
		return 0, false
	}
	if e.code != 0 {
		return e.code, true
	}
	if e.inner != nil {
		var c interface{ Code() (uint32, bool) }
		if errors.As(e.inner, &c) {
			return c.Code()
		}
	}
	return 0, false
}

// RawOSError returns platform error code, if any.
func (e *Error) RawOSError() (int32, bool) {
	if e == nil {
		return 0, false
	}
	if e.hasOS {
		return e.os, true
	}
	if e.inner != nil {
		var c interface{ RawOSError() (int32, bool) }
		if errors.As(e.inner, &c) {
			return c.RawOSError()
		}
		var errno syscall.Errno
		if errors.As(e.inner, &errno) {
			return int32(errno), true
		}
	}
	return 0, false
}

// Inner returns wrapped error of rich representation.
func (e *Error) Inner() error {
	if e == nil {
		return nil
	}
	return e.inner
}

func (e *Error) Unwrap() error {
	return e.Inner()
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.inner != nil {
		return e.inner.Error()
	}
	if e.hasOS {
		return "OS Error: " + strconv.FormatInt(int64(e.os), 10)
	}
	if e.code < InternalStart {
		return "OS Error: " + strconv.FormatUint(uint64(e.code), 10)
	}
	return "Unknown Error: " + strconv.FormatUint(uint64(e.code), 10)
}
