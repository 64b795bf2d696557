package compat6

import (
	"bytes"
	"errors"
	"testing"

	"github.com/koykov/rngcompat"
	"github.com/koykov/rngcompat/core05"
	"github.com/koykov/rngcompat/core06"
	"github.com/koykov/rngcompat/internal/mock"
)

func minimal(t *testing.T) {
	t.Helper()
	conf := rngcompat.DefaultConfig()
	conf.ErrorMode = rngcompat.ErrorModeMinimal
	if err := rngcompat.Setup(conf); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = rngcompat.Setup(rngcompat.DefaultConfig()) })
}

func TestRng05(t *testing.T) {
	t.Run("sequence", func(t *testing.T) {
		var r core06.RngCore = NewRng05(&mock.Src05{Ints: mock.Ints{U32: []uint32{1, 2, 3}}})
		for _, need := range []uint32{1, 2, 3} {
			if got := r.NextUint32(); got != need {
				t.Errorf("uint32 mismatch: need %d, got %d", need, got)
			}
		}
	})
	t.Run("transparency", func(t *testing.T) {
		direct := &mock.Src05{Ints: mock.Ints{U64: []uint64{7, 8}}, Stream: mock.Stream{Next: 200}}
		r := NewRng05(&mock.Src05{Ints: mock.Ints{U64: []uint64{7, 8}}, Stream: mock.Stream{Next: 200}})
		for i := 0; i < 2; i++ {
			if a, b := direct.NextUint64(), r.NextUint64(); a != b {
				t.Errorf("uint64 mismatch: need %d, got %d", a, b)
			}
		}
		a, b := make([]byte, 100), make([]byte, 100)
		direct.FillBytes(a[:60])
		_ = direct.TryFillBytes(a[60:])
		r.FillBytes(b[:60])
		if err := r.TryFillBytes(b[60:]); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("bytes mismatch")
		}
	})
	t.Run("error", func(t *testing.T) {
		minimal(t)
		r := NewRng05(&mock.Src05{Fail: map[int]*core05.Error{1: core05.MustCode(42)}})
		err := r.TryFillBytes(make([]byte, 8))
		if code, ok := err.Code(); !ok || code != 42 {
			t.Errorf("code mismatch: need 42, got %d", code)
		}
		if err = r.TryFillBytes(make([]byte, 8)); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
	t.Run("crypto", func(t *testing.T) {
		var r core06.CryptoRng = NewCryptoRng05(&mock.CryptoSrc05{Src05: mock.Src05{Ints: mock.Ints{U32: []uint32{5}}}})
		if r.NextUint32() != 5 {
			t.Errorf("crypto wrapper must forward")
		}
	})
}

func TestRng09(t *testing.T) {
	r := NewRng09(&mock.Src09{Ints: mock.Ints{U32: []uint32{9}}, Stream: mock.Stream{Next: 1}})
	if r.NextUint32() != 9 {
		t.Errorf("uint32 must forward")
	}
	for n := 0; n < 40; n++ {
		buf := make([]byte, n)
		if err := r.TryFillBytes(buf); err != nil {
			t.Fatalf("size %d: infallible source must never fail, got %v", n, err)
		}
	}
	var _ core06.CryptoRng = NewCryptoRng09(&mock.CryptoSrc09{})
}

func TestTryRng09(t *testing.T) {
	cause := mock.CodeError{C: 11}
	t.Run("fill", func(t *testing.T) {
		r := NewTryRng09(&mock.Try09{Stream: mock.Stream{Next: 1}, Fail: map[int]error{3: cause}})
		want := &mock.Try09{Stream: mock.Stream{Next: 1}}
		for i := 0; i < 2; i++ {
			a, b := make([]byte, 6), make([]byte, 6)
			_ = want.TryFillBytes(a)
			r.FillBytes(b)
			if !bytes.Equal(a, b) {
				t.Errorf("call %d: bytes mismatch", i+1)
			}
		}
		defer func() {
			var fe *rngcompat.FatalError
			if err, ok := recover().(error); !ok || !errors.As(err, &fe) || !errors.Is(fe, cause) {
				t.Errorf("fatal escalation expected")
			}
		}()
		r.FillBytes(make([]byte, 6))
		t.Errorf("unreachable")
	})
	t.Run("try", func(t *testing.T) {
		minimal(t)
		r := NewTryRng09(&mock.Try09{Fail: map[int]error{1: cause}})
		if code, _ := r.TryFillBytes(make([]byte, 2)).Code(); code != 11 {
			t.Errorf("code mismatch: need 11, got %d", code)
		}
	})
	t.Run("crypto", func(t *testing.T) {
		var r core06.CryptoRng = NewTryCryptoRng09(&mock.TryCrypto09{Try09: mock.Try09{Stream: mock.Stream{Next: 4}}})
		if x := r.NextUint32(); x != mock.LE32([]byte{4, 5, 6, 7}) {
			t.Errorf("uint32 mismatch: got %x", x)
		}
	})
}
