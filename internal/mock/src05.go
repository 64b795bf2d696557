package mock

import "github.com/koykov/rngcompat/core05"

// Src05 is a scripted 0.5 source.
//
// TryFillBytes fails on calls (1-based) listed in Fail and consumes no bytes
// then. FillBytes never fails.
type Src05 struct {
	Ints
	Stream
	Fail  map[int]*core05.Error
	Calls int
}

func (s *Src05) NextUint32() uint32   { return s.nextUint32() }
func (s *Src05) NextUint64() uint64   { return s.nextUint64() }
func (s *Src05) FillBytes(dst []byte) { s.fill(dst) }

func (s *Src05) TryFillBytes(dst []byte) *core05.Error {
	s.Calls++
	if err, ok := s.Fail[s.Calls]; ok {
		return err
	}
	s.fill(dst)
	return nil
}

// CryptoSrc05 is Src05 with crypto marker.
type CryptoSrc05 struct {
	Src05
}

func (*CryptoSrc05) CryptoRngV5() {}
