package manager

import "lingod/pkg/types"

// unknownDirectionError signals a direction with no configured bundle, for
// 400-style mapping.
type unknownDirectionError struct{ d string }

func (e unknownDirectionError) Error() string { return "unknown direction: " + e.d }

// ErrUnknownDirection constructs an unknownDirectionError.
func ErrUnknownDirection(d string) error { return unknownDirectionError{d: d} }

// IsUnknownDirection reports whether err indicates an unconfigured direction.
func IsUnknownDirection(err error) bool {
	_, ok := err.(unknownDirectionError)
	return ok
}

// modelLoadError signals a missing or corrupt local bundle. It is cached on
// the direction's entry until an explicit Reset.
type modelLoadError struct {
	direction types.Direction
	cause     error
}

func (e modelLoadError) Error() string {
	return "load bundle " + e.direction.String() + ": " + e.cause.Error()
}

func (e modelLoadError) Unwrap() error { return e.cause }

// ErrModelLoad wraps cause as a load failure for direction.
func ErrModelLoad(d types.Direction, cause error) error {
	return modelLoadError{direction: d, cause: cause}
}

// IsModelLoad reports whether err indicates a bundle load failure.
func IsModelLoad(err error) bool {
	_, ok := err.(modelLoadError)
	return ok
}

// timeoutError signals a bounded wait that expired: either waiting on an
// in-flight load or waiting for a bundle's decode slot. Distinct from hard
// failures so callers can retry later.
type timeoutError struct {
	op string // "load-wait" or "queue"
	d  types.Direction
}

func (e timeoutError) Error() string { return e.op + " timeout for " + e.d.String() }

// IsTimeout reports whether err indicates an expired bounded wait.
func IsTimeout(err error) bool {
	_, ok := err.(timeoutError)
	return ok
}

// drainingError signals a bundle that is being evicted and rejects new work.
type drainingError struct{ d types.Direction }

func (e drainingError) Error() string { return "bundle draining: " + e.d.String() }

// IsDraining reports whether err indicates an eviction in progress.
func IsDraining(err error) bool {
	_, ok := err.(drainingError)
	return ok
}
