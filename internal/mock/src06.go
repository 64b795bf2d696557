package mock

import "github.com/koykov/rngcompat/core06"

// Src06 is a scripted 0.6 source.
//
// TryFillBytes fails on calls (1-based) listed in Fail and consumes no bytes
// then. FillBytes never fails.
type Src06 struct {
	Ints
	Stream
	Fail  map[int]*core06.Error
	Calls int
}

func (s *Src06) NextUint32() uint32   { return s.nextUint32() }
func (s *Src06) NextUint64() uint64   { return s.nextUint64() }
func (s *Src06) FillBytes(dst []byte) { s.fill(dst) }

func (s *Src06) TryFillBytes(dst []byte) *core06.Error {
	s.Calls++
	if err, ok := s.Fail[s.Calls]; ok {
		return err
	}
	s.fill(dst)
	return nil
}

// CryptoSrc06 is Src06 with crypto marker.
type CryptoSrc06 struct {
	Src06
}

func (*CryptoSrc06) CryptoRngV6() {}
