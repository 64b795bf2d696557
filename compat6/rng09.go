package compat6

import (
	"github.com/koykov/rngcompat"
	"github.com/koykov/rngcompat/core06"
	"github.com/koykov/rngcompat/core09"
)

// Rng09 wraps 0.9 infallible source.
// The source never fails, so TryFillBytes never returns an error.
type Rng09[T core09.RngCore] struct {
	rngcompat.Synthesize[T, *core06.Error]
}

func NewRng09[T core09.RngCore](src T) *Rng09[T] {
	rngcompat.Expect(rngcompat.G9, rngcompat.G6)
	w := &Rng09[T]{}
	w.Src = src
	return w
}

// CryptoRng09 wraps 0.9 crypto source and keeps the crypto marker.
type CryptoRng09[T core09.CryptoRng] struct {
	Rng09[T]
}

func NewCryptoRng09[T core09.CryptoRng](src T) *CryptoRng09[T] {
	return &CryptoRng09[T]{*NewRng09[T](src)}
}

func (*CryptoRng09[T]) CryptoRngV6() {}

// TryRng09 wraps 0.9 fallible source.
//
// The 0.6 interface can't express fallible sources perfectly: NextUint32,
// NextUint64 and FillBytes panic with *rngcompat.FatalError on source failure.
// Use TryFillBytes to get the error instead.
type TryRng09[T core09.TryRngCore] struct {
	rngcompat.Escalate[T, *core06.Error, rngcompat.Translate9to6]
}

func NewTryRng09[T core09.TryRngCore](src T) *TryRng09[T] {
	rngcompat.Expect(rngcompat.G9, rngcompat.G6)
	w := &TryRng09[T]{}
	w.Src = src
	return w
}

// TryCryptoRng09 wraps 0.9 fallible crypto source and keeps the crypto marker.
type TryCryptoRng09[T core09.TryCryptoRng] struct {
	TryRng09[T]
}

func NewTryCryptoRng09[T core09.TryCryptoRng](src T) *TryCryptoRng09[T] {
	return &TryCryptoRng09[T]{*NewTryRng09[T](src)}
}

func (*TryCryptoRng09[T]) CryptoRngV6() {}

var (
	_ core06.RngCore   = (*Rng09[core09.RngCore])(nil)
	_ core06.CryptoRng = (*CryptoRng09[core09.CryptoRng])(nil)
	_ core06.RngCore   = (*TryRng09[core09.TryRngCore])(nil)
	_ core06.CryptoRng = (*TryCryptoRng09[core09.TryCryptoRng])(nil)
)
