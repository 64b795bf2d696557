package jitter

import (
	"testing"
	"time"

	"github.com/koykov/rngcompat/compat9"
	"github.com/koykov/rngcompat/core09"
	"github.com/koykov/rngcompat/internal/mock"
	"github.com/koykov/rngcompat/rng"
)

// fixed makes pool of generators over 0.5 sources returning v forever.
func fixed(v uint64) *rng.Pool {
	return &rng.Pool{New: func() core09.RngCore {
		u := make([]uint64, 64)
		for i := range u {
			u[i] = v
		}
		return compat9.NewRng05(&mock.Src05{Ints: mock.Ints{U64: u}})
	}}
}

func TestJitter(t *testing.T) {
	t.Run("half", func(t *testing.T) {
		j := &Half{RNG: fixed(7)}
		if d := j.Apply(time.Second); d != 500*time.Millisecond+7 {
			t.Errorf("interval mismatch: got %s", d)
		}
	})
	t.Run("full", func(t *testing.T) {
		j := &Full{RNG: fixed(1e6 + 3)}
		if d := j.Apply(time.Millisecond); d != 3 {
			t.Errorf("interval mismatch: got %d", d)
		}
	})
	t.Run("default", func(t *testing.T) {
		var jj = []Interface{&Half{}, &Full{}, &Decorrelated{Min: time.Millisecond, Max: time.Second}}
		for _, j := range jj {
			for i := 0; i < 100; i++ {
				if d := j.Apply(time.Second); d < 0 || d > time.Second {
					t.Errorf("interval out of range: %s", d)
				}
			}
		}
	})
	t.Run("decorrelated bounds", func(t *testing.T) {
		j := &Decorrelated{
			New: func() core09.RngCore { return compat9.NewRng06(&mock.Src06{}) },
			Min: time.Millisecond,
			Max: time.Second,
		}
		// Zero source output clamps to Min.
		if d := j.Apply(time.Second); d != time.Millisecond {
			t.Errorf("interval mismatch: got %s", d)
		}
	})
}
