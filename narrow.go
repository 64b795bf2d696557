package rngcompat

import "github.com/koykov/rngcompat/core09"

// Narrow presents a legacy source as 0.9 infallible source.
// Fallible fill of the source stays hidden.
type Narrow[S core09.RngCore] struct {
	Src S
}

func (n *Narrow[S]) NextUint32() uint32 {
	return n.Src.NextUint32()
}

func (n *Narrow[S]) NextUint64() uint64 {
	return n.Src.NextUint64()
}

func (n *Narrow[S]) FillBytes(dst []byte) {
	n.Src.FillBytes(dst)
}
