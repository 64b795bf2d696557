package jitter

import (
	"math/rand"
	"sync"
	"time"

	"github.com/koykov/rngcompat/core09"
	"github.com/koykov/rngcompat/rng"
)

type dcjTuple struct {
	cntr int64
	rng  *rand.Rand
}

// Decorrelated grows interval randomly up to tripled previous value, bounded by [Min...Max].
type Decorrelated struct {
	// New makes a fresh source for every internal generator.
	// If this param omit time-seeded math/rand source will use instead.
	New      func() core09.RngCore
	Min, Max time.Duration

	p    sync.Pool
	once sync.Once
}

func (j *Decorrelated) Apply(interval time.Duration) time.Duration {
	j.once.Do(func() {
		if j.New == nil {
			j.New = func() core09.RngCore {
				s := rand.NewSource(time.Now().UnixNano())
				return &rng.Std{Src: any(s).(rand.Source64)}
			}
		}
	})
	raw := j.p.Get()
	if raw == nil {
		raw = &dcjTuple{
			cntr: int64(interval),
			rng:  rand.New(&rng.Source{Src: j.New()}),
		}
	}
	defer j.p.Put(raw)

	t := raw.(*dcjTuple)
	cntr := t.cntr
	if cntr > 0 {
		cntr = t.rng.Int63n(3 * t.cntr)
	}
	if cntr < int64(j.Min) {
		cntr = int64(j.Min)
	}
	if cntr > int64(j.Max) {
		cntr = int64(j.Max)
	}
	t.cntr = cntr
	return time.Duration(cntr)
}
