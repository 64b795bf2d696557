package rngcompat

import "github.com/koykov/bitset"

// Generation indicates a version of the randomness source contract.
type Generation uint

const (
	// G5 is the 0.5 generation (see package core05).
	G5 Generation = iota
	// G6 is the 0.6 generation (see package core06). Same shape as G5.
	G6
	// G9 is the 0.9 generation (see package core09). Splits infallible and fallible access.
	G9

	generationCount
)

func (g Generation) String() string {
	switch g {
	case G5:
		return "0.5"
	case G6:
		return "0.6"
	case G9:
		return "0.9"
	default:
		return "unknown"
	}
}

// Generations is a set of generations.
type Generations struct {
	bs bitset.Bitset
}

// NewGenerations makes a set of given generations.
func NewGenerations(gens ...Generation) Generations {
	var s Generations
	for _, g := range gens {
		s.Add(g)
	}
	return s
}

// AllGenerations returns a set of all known generations.
func AllGenerations() Generations {
	return NewGenerations(G5, G6, G9)
}

// Add puts g to the set. Unknown generations are ignored.
func (s *Generations) Add(g Generation) *Generations {
	if g < generationCount {
		s.bs.SetBit(int(g), true)
	}
	return s
}

// Del removes g from the set.
func (s *Generations) Del(g Generation) *Generations {
	if g < generationCount {
		s.bs.SetBit(int(g), false)
	}
	return s
}

// Has checks if g belongs to the set.
func (s *Generations) Has(g Generation) bool {
	if g >= generationCount {
		return false
	}
	return s.bs.CheckBit(int(g))
}

// Len returns count of generations in the set.
func (s *Generations) Len() (n int) {
	for g := G5; g < generationCount; g++ {
		if s.Has(g) {
			n++
		}
	}
	return
}

func (s *Generations) String() string {
	var buf []byte
	for g := G5; g < generationCount; g++ {
		if !s.Has(g) {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, g.String()...)
	}
	return "{" + string(buf) + "}"
}
