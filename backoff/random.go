package backoff

import (
	"sync"
	"time"

	"github.com/koykov/rngcompat/rng"
)

// Random (aka Full Jitter) applies to interval random value according formula `value/2 + random(value)`.
type Random struct {
	RNG  rng.RNG
	once sync.Once
}

func (b *Random) Next(interval time.Duration, _ int) time.Duration {
	b.once.Do(func() {
		if b.RNG == nil {
			b.RNG = &rng.Pool{}
		}
	})
	if interval <= 0 {
		return interval
	}
	return interval/2 + time.Duration(b.RNG.Int63n(int64(interval)))
}
