// Package mock provides scripted sources of every generation for tests.
//
// Byte streams are deterministic: each fill continues the sequence Next,
// Next+1, Next+2, ... (wrapping at 255).
package mock

import (
	"encoding/binary"
	"strconv"
)

// Stream is a deterministic byte sequence.
type Stream struct {
	Next byte
}

func (s *Stream) fill(dst []byte) {
	for i := range dst {
		dst[i] = s.Next
		s.Next++
	}
}

// Bytes returns n next bytes of the sequence starting at b.
func Bytes(b byte, n int) []byte {
	s := Stream{Next: b}
	buf := make([]byte, n)
	s.fill(buf)
	return buf
}

// Ints hands out scripted integers in order, then zeros.
type Ints struct {
	U32 []uint32
	U64 []uint64
}

func (i *Ints) nextUint32() (x uint32) {
	if len(i.U32) > 0 {
		x, i.U32 = i.U32[0], i.U32[1:]
	}
	return
}

func (i *Ints) nextUint64() (x uint64) {
	if len(i.U64) > 0 {
		x, i.U64 = i.U64[0], i.U64[1:]
	}
	return
}

// CodeError is an error of the 0.9 generation that exposes a custom code.
type CodeError struct {
	C uint32
}

func (e CodeError) Error() string {
	return "mock failure " + strconv.FormatUint(uint64(e.C), 10)
}

func (e CodeError) Code() (uint32, bool) {
	return e.C, true
}

// LE32 decodes little-endian uint32.
func LE32(p []byte) uint32 {
	return binary.LittleEndian.Uint32(p)
}

// LE64 decodes little-endian uint64.
func LE64(p []byte) uint64 {
	return binary.LittleEndian.Uint64(p)
}
