package refresh

import (
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultInterval is the base refresh cadence and the first backoff step.
	DefaultInterval = 5 * time.Minute

	// backoffCapExponent bounds the growth to base * 2^(capExponent-1).
	backoffCapExponent = 5
)

// Backoff returns how long to wait after failures consecutive failed attempts:
// base * 2^(min(failures, 5) - 1). It returns 0 when there are no failures.
func Backoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return 0
	}
	if base <= 0 {
		base = DefaultInterval
	}
	steps := min(failures, backoffCapExponent)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = base
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = base << (backoffCapExponent - 1)
	b.Reset()

	var wait time.Duration
	for i := 0; i < steps; i++ {
		wait = b.NextBackOff()
	}
	return wait
}
