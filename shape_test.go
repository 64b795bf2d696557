package rngcompat

import (
	"bytes"
	"errors"
	"testing"

	"github.com/koykov/rngcompat/core05"
	"github.com/koykov/rngcompat/core06"
	"github.com/koykov/rngcompat/internal/mock"
)

func catchFatal(t *testing.T, fn func()) (fe *FatalError) {
	t.Helper()
	defer func() {
		r := recover()
		var ok bool
		if fe, ok = r.(*FatalError); !ok {
			t.Errorf("*FatalError panic expected, got %v", r)
		}
	}()
	fn()
	return
}

func TestForward(t *testing.T) {
	src := &mock.Src05{Ints: mock.Ints{U32: []uint32{1, 2, 3}, U64: []uint64{1 << 40}}, Stream: mock.Stream{Next: 10}}
	f := &Forward[*mock.Src05, *core05.Error, *core06.Error, Translate5to6]{Src: src}
	for i := uint32(1); i <= 3; i++ {
		if x := f.NextUint32(); x != i {
			t.Errorf("uint32 mismatch: need %d, got %d", i, x)
		}
	}
	if x := f.NextUint64(); x != 1<<40 {
		t.Errorf("uint64 mismatch: need %d, got %d", uint64(1<<40), x)
	}
	buf := make([]byte, 5)
	f.FillBytes(buf)
	if !bytes.Equal(buf, mock.Bytes(10, 5)) {
		t.Errorf("bytes mismatch: %v", buf)
	}
	if err := f.TryFillBytes(buf); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf, mock.Bytes(15, 5)) {
		t.Errorf("bytes mismatch: %v", buf)
	}
}

func TestDerive(t *testing.T) {
	setupMode(t, ErrorModeMinimal)
	fail := core06.MustCode(9)
	src := &mock.Src06{Stream: mock.Stream{Next: 1}, Fail: map[int]*core06.Error{3: fail}}
	d := &Derive[*mock.Src06, *core06.Error, Translate6to9]{Src: src}

	x32, err := d.TryNextUint32()
	if err != nil || x32 != mock.LE32([]byte{1, 2, 3, 4}) {
		t.Errorf("uint32 mismatch: got %x, %v", x32, err)
	}
	x64, err := d.TryNextUint64()
	if err != nil || x64 != mock.LE64(mock.Bytes(5, 8)) {
		t.Errorf("uint64 mismatch: got %x, %v", x64, err)
	}
	if _, err = d.TryNextUint32(); !errors.Is(err, fail) {
		t.Errorf("source error must pass unchanged, got %v", err)
	}
}

func TestSynthesize(t *testing.T) {
	for n := 0; n <= 64; n++ {
		direct := &mock.Src09{Stream: mock.Stream{Next: byte(n)}}
		s := &Synthesize[*mock.Src09, *core05.Error]{Src: &mock.Src09{Stream: mock.Stream{Next: byte(n)}}}
		a, b := make([]byte, n), make([]byte, n)
		direct.FillBytes(a)
		if err := s.TryFillBytes(b); err != nil {
			t.Fatalf("size %d: synthesized fill must not fail, got %v", n, err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("size %d: bytes mismatch", n)
		}
	}
}

func TestEscalate(t *testing.T) {
	m := setupMode(t, ErrorModeMinimal)
	cause := errors.New("device unplugged")
	src := &mock.Try09{Stream: mock.Stream{Next: 1}, Fail: map[int]error{2: cause, 3: cause}}
	e := &Escalate[*mock.Try09, *core05.Error, Translate9to5]{Src: src}

	if x := e.NextUint32(); x != mock.LE32([]byte{1, 2, 3, 4}) {
		t.Errorf("uint32 mismatch: got %x", x)
	}
	fe := catchFatal(t, func() { e.NextUint64() })
	if fe != nil {
		if fe.Generation != G5 || !errors.Is(fe, cause) {
			t.Errorf("fatal error mismatch: %v", fe)
		}
	}
	if len(m.fatal) != 1 || m.fatal[0] != G5 {
		t.Errorf("escalation must be registered once, got %v", m.fatal)
	}
	err := e.TryFillBytes(make([]byte, 4))
	if code, _ := err.Code(); code != Unknown {
		t.Errorf("opaque error must become Unknown, got %d", code)
	}
}
