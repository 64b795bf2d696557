// Package compat6 presents sources of other generations as 0.6 generation sources.
package compat6

import (
	"github.com/koykov/rngcompat"
	"github.com/koykov/rngcompat/core05"
	"github.com/koykov/rngcompat/core06"
)

// Rng05 wraps 0.5 source. Since both generations have the same shape, it forwards perfectly.
type Rng05[T core05.RngCore] struct {
	rngcompat.Forward[T, *core05.Error, *core06.Error, rngcompat.Translate5to6]
}

func NewRng05[T core05.RngCore](src T) *Rng05[T] {
	rngcompat.Expect(rngcompat.G5, rngcompat.G6)
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

func (*CryptoRng05[T]) CryptoRngV6() {}

var (
	_ core06.RngCore   = (*Rng05[core05.RngCore])(nil)
	_ core06.CryptoRng = (*CryptoRng05[core05.CryptoRng])(nil)
)
