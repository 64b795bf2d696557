package core05

import (
	"errors"
	"syscall"
	"testing"
)

func TestError(t *testing.T) {
	t.Run("code", func(t *testing.T) {
		e := MustCode(42)
		if code, ok := e.Code(); !ok || code != 42 {
			t.Errorf("code mismatch: need 42, got %d", code)
		}
		if _, ok := e.RawOSError(); ok {
			t.Errorf("custom code must not report platform code")
		}
		if _, err := FromCode(0); !errors.Is(err, ErrZeroCode) {
			t.Errorf("zero code must be rejected")
		}
	})
	t.Run("os", func(t *testing.T) {
		e := FromOSError(0)
		if code, ok := e.RawOSError(); !ok || code != 0 {
			t.Errorf("platform code mismatch: need 0, got %d", code)
		}
		if _, ok := e.Code(); ok {
			t.Errorf("platform code must not report custom code")
		}
	})
	t.Run("rich", func(t *testing.T) {
		cause := errors.New("no entropy")
		e := New(cause)
		if !errors.Is(e, cause) || e.Inner() != cause || e.Error() != "no entropy" {
			t.Errorf("rich error must keep the cause")
		}
		e = New(syscall.Errno(11))
		if code, ok := e.RawOSError(); !ok || code != 11 {
			t.Errorf("platform code mismatch: need 11, got %d", code)
		}
		e = New(MustCode(CustomStart + 1))
		if code, ok := e.Code(); !ok || code != CustomStart+1 {
			t.Errorf("code mismatch: need %d, got %d", CustomStart+1, code)
		}
	})
	t.Run("string", func(t *testing.T) {
		stages := map[string]*Error{
			"OS error 2":                FromOSError(2),
			"custom error 3221225473":   MustCode(CustomStart + 1),
			"internal error 2147483648": MustCode(InternalStart),
			"unknown error 5":           MustCode(5),
			"<nil>":                     nil,
		}
		for need, e := range stages {
			if got := e.Error(); got != need {
				t.Errorf("message mismatch: need '%s', got '%s'", need, got)
			}
		}
	})
}

type fixed []byte

func (f fixed) NextUint32() uint32         { return 0 }
func (f fixed) NextUint64() uint64         { return 0 }
func (f fixed) FillBytes(dst []byte)       { copy(dst, f) }
func (f fixed) TryFillBytes([]byte) *Error { return nil }

func TestViaFill(t *testing.T) {
	r := fixed{1, 2, 3, 4, 5, 6, 7, 8}
	if x := NextUint32ViaFill(r); x != 0x04030201 {
		t.Errorf("uint32 mismatch: got %x", x)
	}
	if x := NextUint64ViaFill(r); x != 0x0807060504030201 {
		t.Errorf("uint64 mismatch: got %x", x)
	}
}
