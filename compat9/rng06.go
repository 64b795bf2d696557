package compat9

import (
	"github.com/koykov/rngcompat"
	"github.com/koykov/rngcompat/core06"
	"github.com/koykov/rngcompat/core09"
)

// Rng06 wraps 0.6 source as infallible source.
// Failures of the source are handled by the source's own FillBytes.
type Rng06[T core06.RngCore] struct {
	rngcompat.Narrow[T]
}

func NewRng06[T core06.RngCore](src T) *Rng06[T] {
	rngcompat.Expect(rngcompat.G6, rngcompat.G9)
	w := &Rng06[T]{}
	w.Src = src
	return w
}

// CryptoRng06 wraps 0.6 crypto source and keeps the crypto marker.
type CryptoRng06[T core06.CryptoRng] struct {
	Rng06[T]
}

func NewCryptoRng06[T core06.CryptoRng](src T) *CryptoRng06[T] {
	return &CryptoRng06[T]{*NewRng06[T](src)}
}

func (*CryptoRng06[T]) CryptoRngV9() {}

// TryRng06 wraps 0.6 source as fallible source.
//
// TryNextUint32 and TryNextUint64 are built on TryFillBytes since 0.6
// generation has no fallible integer methods. Errors are *core06.Error.
type TryRng06[T core06.RngCore] struct {
	rngcompat.Derive[T, *core06.Error, rngcompat.Translate6to9]
}

func NewTryRng06[T core06.RngCore](src T) *TryRng06[T] {
	rngcompat.Expect(rngcompat.G6, rngcompat.G9)
	w := &TryRng06[T]{}
	w.Src = src
	return w
}

// TryCryptoRng06 wraps 0.6 crypto source and keeps the crypto marker.
type TryCryptoRng06[T core06.CryptoRng] struct {
	TryRng06[T]
}

func NewTryCryptoRng06[T core06.CryptoRng](src T) *TryCryptoRng06[T] {
	return &TryCryptoRng06[T]{*NewTryRng06[T](src)}
}

func (*TryCryptoRng06[T]) TryCryptoRngV9() {}

var (
	_ core09.RngCore      = (*Rng06[core06.RngCore])(nil)
	_ core09.CryptoRng    = (*CryptoRng06[core06.CryptoRng])(nil)
	_ core09.TryRngCore   = (*TryRng06[core06.RngCore])(nil)
	_ core09.TryCryptoRng = (*TryCryptoRng06[core06.CryptoRng])(nil)
)
