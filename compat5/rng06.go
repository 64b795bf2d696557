// Package compat5 presents sources of other generations as 0.5 generation sources.
package compat5

import (
	"github.com/koykov/rngcompat"
	"github.com/koykov/rngcompat/core05"
	"github.com/koykov/rngcompat/core06"
)

// Rng06 wraps 0.6 source. Since both generations have the same shape, it forwards perfectly.
type Rng06[T core06.RngCore] struct {
	rngcompat.Forward[T, *core06.Error, *core05.Error, rngcompat.Translate6to5]
}

func NewRng06[T core06.RngCore](src T) *Rng06[T] {
	rngcompat.Expect(rngcompat.G6, rngcompat.G5)
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

func (*CryptoRng06[T]) CryptoRngV5() {}

var (
	_ core05.RngCore   = (*Rng06[core06.RngCore])(nil)
	_ core05.CryptoRng = (*CryptoRng06[core06.CryptoRng])(nil)
)
