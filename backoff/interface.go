// Package backoff grows retry intervals with randomness of any source generation.
package backoff

import "time"

// Interface describes retry interval growth.
type Interface interface {
	Next(interval time.Duration, attempt int) time.Duration
}
