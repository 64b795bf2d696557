package mock

import "encoding/binary"

// Src09 is a 0.9 infallible source.
type Src09 struct {
	Ints
	Stream
}

func (s *Src09) NextUint32() uint32   { return s.nextUint32() }
func (s *Src09) NextUint64() uint64   { return s.nextUint64() }
func (s *Src09) FillBytes(dst []byte) { s.fill(dst) }

// CryptoSrc09 is Src09 with crypto marker.
type CryptoSrc09 struct {
	Src09
}

func (*CryptoSrc09) CryptoRngV9() {}

// Try09 is a scripted 0.9 fallible source.
//
// Every method call counts; calls (1-based) listed in Fail return the error
// and consume no bytes.
type Try09 struct {
	Stream
	Fail  map[int]error
	Calls int
}

func (s *Try09) TryNextUint32() (uint32, error) {
	var buf [4]byte
	if err := s.TryFillBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (s *Try09) TryNextUint64() (uint64, error) {
	var buf [8]byte
	if err := s.TryFillBytes(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

func (s *Try09) TryFillBytes(dst []byte) error {
	s.Calls++
	if err, ok := s.Fail[s.Calls]; ok {
		return err
	}
	s.fill(dst)
	return nil
}

// TryCrypto09 is Try09 with crypto marker.
type TryCrypto09 struct {
	Try09
}

func (*TryCrypto09) TryCryptoRngV9() {}
