package rngcompat

import "github.com/koykov/rngcompat/core09"

// Synthesize presents 0.9 infallible source as legacy source with error type DE.
//
// The source can't fail, so TryFillBytes performs the fill and always
// reports success (zero DE).
type Synthesize[S core09.RngCore, DE any] struct {
	Src S
}

func (s *Synthesize[S, DE]) NextUint32() uint32 {
	return s.Src.NextUint32()
}

func (s *Synthesize[S, DE]) NextUint64() uint64 {
	return s.Src.NextUint64()
}

func (s *Synthesize[S, DE]) FillBytes(dst []byte) {
	s.Src.FillBytes(dst)
}

func (s *Synthesize[S, DE]) TryFillBytes(dst []byte) DE {
	s.Src.FillBytes(dst)
	var ok DE
	return ok
}
