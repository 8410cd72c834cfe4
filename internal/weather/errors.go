package weather

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed marks a provider payload that is missing expected fields
	// or cannot be decoded.
	ErrMalformed = errors.New("malformed provider response")

	// ErrCircuitOpen is returned while the provider circuit breaker rejects calls.
	ErrCircuitOpen = errors.New("provider circuit open")
)

// StatusError reports a non-2xx provider response.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Endpoint, e.Code)
}

// Malformed wraps ErrMalformed with a description of what was wrong.
func Malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformed, fmt.Sprintf(format, args...))
}
