package rng

import (
	"math/rand"

	"github.com/koykov/rngcompat/core09"
)

// Source presents 0.9 infallible source as math/rand source.
//
// Sources of 0.5 and 0.6 generations must be wrapped first (see compat9).
type Source struct {
	Src core09.RngCore
}

var _ rand.Source64 = (*Source)(nil)

// Seed does nothing: state belongs to the wrapped source.
func (s *Source) Seed(int64) {}

func (s *Source) Int63() int64 {
	return int64(s.Src.NextUint64() & (1<<63 - 1))
}

func (s *Source) Uint64() uint64 {
	return s.Src.NextUint64()
}

// Std presents math/rand source as 0.9 infallible source.
type Std struct {
	Src rand.Source64
}

var _ core09.RngCore = (*Std)(nil)

func (s *Std) NextUint32() uint32 {
	return uint32(s.Src.Uint64() >> 32)
}

func (s *Std) NextUint64() uint64 {
	return s.Src.Uint64()
}

func (s *Std) FillBytes(dst []byte) {
	for len(dst) > 0 {
		x := s.Src.Uint64()
		for i := 0; i < 8 && len(dst) > 0; i++ {
			dst[0] = byte(x)
			x >>= 8
			dst = dst[1:]
		}
	}
}
