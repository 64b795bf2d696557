package jitter

import (
	"sync"
	"time"

	"github.com/koykov/rngcompat/rng"
)

// Full returns random value of [0...interval).
type Full struct {
	RNG  rng.RNG
	once sync.Once
}

func (j *Full) Apply(interval time.Duration) time.Duration {
	j.once.Do(func() {
		if j.RNG == nil {
			j.RNG = &rng.Pool{}
		}
	})
	if interval <= 0 {
		return interval
	}
	return time.Duration(j.RNG.Int63n(int64(interval)))
}
