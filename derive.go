package rngcompat

import "encoding/binary"

// Derive presents a legacy source as 0.9 fallible source.
//
// Legacy generations have no fallible integer methods, so TryNextUint32 and
// TryNextUint64 fill 4 and 8 bytes using TryFillBytes and decode them in
// little-endian order.
type Derive[S Legacy[SE], SE any, X Translator[SE, error]] struct {
	Src S
}

func (d *Derive[S, SE, X]) TryNextUint32() (uint32, error) {
	var buf [4]byte
	if err := d.TryFillBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (d *Derive[S, SE, X]) TryNextUint64() (uint64, error) {
	var buf [8]byte
	if err := d.TryFillBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (d *Derive[S, SE, X]) TryFillBytes(dst []byte) error {
	var x X
	return x.Translate(d.Src.TryFillBytes(dst))
}
