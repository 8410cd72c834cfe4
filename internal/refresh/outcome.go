package refresh

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/five82/weatherframe/internal/weather"
)

// Classification narrows a transient failure for logging. Every class takes
// the same retry path; DNS failures are only logged at a higher severity.
type Classification int

const (
	ClassUnknown Classification = iota
	ClassNetwork
	ClassTimeout
	ClassDNS
	ClassStatus
	ClassMalformed
	ClassCircuitOpen
)

func (c Classification) String() string {
	switch c {
	case ClassNetwork:
		return "network"
	case ClassTimeout:
		return "timeout"
	case ClassDNS:
		return "dns"
	case ClassStatus:
		return "status"
	case ClassMalformed:
		return "malformed"
	case ClassCircuitOpen:
		return "circuit_open"
	default:
		return "unknown"
	}
}

// Classify maps a fetch error onto a Classification.
func Classify(err error) Classification {
	if err == nil {
		return ClassUnknown
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ClassDNS
	}
	if errors.Is(err, weather.ErrMalformed) {
		return ClassMalformed
	}
	if errors.Is(err, weather.ErrCircuitOpen) {
		return ClassCircuitOpen
	}
	var statusErr *weather.StatusError
	if errors.As(err, &statusErr) {
		return ClassStatus
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ClassTimeout
		}
		return ClassNetwork
	}
	return ClassUnknown
}

// OutcomeKind tags a FetchOutcome.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeTransient
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeTransient:
		return "transient"
	case OutcomeFatal:
		return "fatal"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// FetchOutcome is the result of one refresh attempt. It is built on a worker
// goroutine and consumed once on the interactive loop.
type FetchOutcome struct {
	Kind     OutcomeKind
	Snapshot weather.Snapshot // set for OutcomeSuccess
	Class    Classification   // set for OutcomeTransient
	Err      error            // set for failures
}

// Success wraps a completed snapshot.
func Success(snap weather.Snapshot) FetchOutcome {
	return FetchOutcome{Kind: OutcomeSuccess, Snapshot: snap}
}

// TransientFailure wraps a provider or network error that may clear up.
func TransientFailure(err error) FetchOutcome {
	return FetchOutcome{Kind: OutcomeTransient, Class: Classify(err), Err: err}
}

// FatalFailure wraps an error the fetcher could not classify, such as a panic.
func FatalFailure(err error) FetchOutcome {
	return FetchOutcome{Kind: OutcomeFatal, Err: err}
}

// Failed reports whether the outcome counts against the failure streak.
func (o FetchOutcome) Failed() bool {
	return o.Kind != OutcomeSuccess
}

// Message is the failure text, or "" on success.
func (o FetchOutcome) Message() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}
