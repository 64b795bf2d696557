// Package compat9 presents sources of legacy generations as 0.9 generation sources.
//
// Each legacy source may be presented either as infallible source (Rng05,
// Rng06) or as fallible one (TryRng05, TryRng06).
package compat9

import (
	"github.com/koykov/rngcompat"
	"github.com/koykov/rngcompat/core05"
	"github.com/koykov/rngcompat/core09"
)

// Rng05 wraps 0.5 source as infallible source.
// Failures of the source are handled by the source's own FillBytes.
type Rng05[T core05.RngCore] struct {
	rngcompat.Narrow[T]
}

func NewRng05[T core05.RngCore](src T) *Rng05[T] {
	rngcompat.Expect(rngcompat.G5, rngcompat.G9)
	w := &Rng05[T]{}
	w.Src = src
	return w
}

// CryptoRng05 wraps 0.5 crypto source and keeps the crypto marker.
type CryptoRng05[T core05.CryptoRng] struct {
	Rng05[T]
}

func NewCryptoRng05[T core05.CryptoRng](src T) *CryptoRng05[T] {
	return &CryptoRng05[T]{*NewRng05[T](src)}
}

func (*CryptoRng05[T]) CryptoRngV9() {}

// TryRng05 wraps 0.5 source as fallible source.
//
// TryNextUint32 and TryNextUint64 are built on TryFillBytes since 0.5
// generation has no fallible integer methods. Errors are *core05.Error.
type TryRng05[T core05.RngCore] struct {
	rngcompat.Derive[T, *core05.Error, rngcompat.Translate5to9]
}

func NewTryRng05[T core05.RngCore](src T) *TryRng05[T] {
	rngcompat.Expect(rngcompat.G5, rngcompat.G9)
	w := &TryRng05[T]{}
	w.Src = src
	return w
}

// TryCryptoRng05 wraps 0.5 crypto source and keeps the crypto marker.
type TryCryptoRng05[T core05.CryptoRng] struct {
	TryRng05[T]
}

func NewTryCryptoRng05[T core05.CryptoRng](src T) *TryCryptoRng05[T] {
	return &TryCryptoRng05[T]{*NewTryRng05[T](src)}
}

func (*TryCryptoRng05[T]) TryCryptoRngV9() {}

var (
	_ core09.RngCore      = (*Rng05[core05.RngCore])(nil)
	_ core09.CryptoRng    = (*CryptoRng05[core05.CryptoRng])(nil)
	_ core09.TryRngCore   = (*TryRng05[core05.RngCore])(nil)
	_ core09.TryCryptoRng = (*TryCryptoRng05[core05.CryptoRng])(nil)
)
