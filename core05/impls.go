package core05

import "encoding/binary"

// NextUint32ViaFill assembles uint32 from 4 bytes of r.FillBytes in little-endian order.
func NextUint32ViaFill(r RngCore) uint32 {
	var buf [4]byte
	r.FillBytes(buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// NextUint64ViaFill assembles uint64 from 8 bytes of r.FillBytes in little-endian order.
func NextUint64ViaFill(r RngCore) uint64 {
	var buf [8]byte
	r.FillBytes(buf[:])
	return binary.LittleEndian.Uint64(buf[:])
}
