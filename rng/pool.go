package rng

import (
	"math/rand"
	"sync"
	"time"

	"github.com/koykov/rngcompat/core09"
)

// Pool keeps math/rand generators on top of sources made by New.
//
// Each generator owns its source exclusively, so New must return a fresh
// source on every call.
type Pool struct {
	p    sync.Pool
	New  func() core09.RngCore
	once sync.Once
}

func (p *Pool) Get() *rand.Rand {
	p.once.Do(func() {
		if p.New == nil {
			p.New = func() core09.RngCore {
				s := rand.NewSource(time.Now().UnixNano())
				return &Std{Src: any(s).(rand.Source64)}
			}
		}
	})
	raw := p.p.Get()
	if raw == nil {
		return rand.New(&Source{Src: p.New()})
	}
	return raw.(*rand.Rand)
}

func (p *Pool) Put(x *rand.Rand) {
	if x == nil {
		return
	}
	p.p.Put(x)
}

func (p *Pool) Int63n(n int64) int64 {
	r := p.Get()
	defer p.Put(r)
	return r.Int63n(n)
}

func (p *Pool) Intn(n int) int {
	r := p.Get()
	defer p.Put(r)
	return r.Intn(n)
}

var _ RNG = (*Pool)(nil)
