// Package jitter spreads intervals using randomness of any source generation.
package jitter

import "time"

// Interface describes jitter applied to the interval.
type Interface interface {
	Apply(interval time.Duration) time.Duration
}
