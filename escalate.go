package rngcompat

import (
	"encoding/binary"

	"github.com/koykov/rngcompat/core09"
)

// Escalate presents 0.9 fallible source as legacy source with error type DE.
//
// NextUint32, NextUint64 and FillBytes have no error channel. Any source
// failure on them panics with *FatalError. TryFillBytes is the only path
// that returns the failure, translated by X.
type Escalate[S core09.TryRngCore, DE any, X Translator[error, DE]] struct {
	Src S
}

func (e *Escalate[S, DE, X]) NextUint32() uint32 {
	var buf [4]byte
	e.FillBytes(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

func (e *Escalate[S, DE, X]) NextUint64() uint64 {
	var buf [8]byte
	e.FillBytes(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}

func (e *Escalate[S, DE, X]) FillBytes(dst []byte) {
	if err := e.Src.TryFillBytes(dst); err != nil {
		var x X
		escalate(x.To(), err)
	}
}

func (e *Escalate[S, DE, X]) TryFillBytes(dst []byte) DE {
	var x X
	return x.Translate(e.Src.TryFillBytes(dst))
}

func escalate(gen Generation, err error) {
	c := Active()
	if c.l() != nil {
		c.l().Printf("rngcompat: %s source failed behind %s infallible method: %s\n", G9, gen, err.Error())
	}
	c.m().FatalEscalation(gen)
	panic(&FatalError{Generation: gen, Err: err})
}
