package rngcompat

import "github.com/koykov/rngcompat/core09"

// Legacy describes the shape shared by 0.5 and 0.6 generations, E is the generation error type.
//
// core05.RngCore is Legacy[*core05.Error], core06.RngCore is Legacy[*core06.Error].
type Legacy[E any] interface {
	core09.RngCore
	TryFillBytes(dst []byte) E
}
