// Package runtime defines the opaque inference capability behind the
// decoding loop. A Handle wraps one loaded quantized model and exposes a
// single operation: token history in, next-token distribution out. The
// numeric execution itself lives behind this interface and is out of scope
// for the serving core.
package runtime

import (
	"context"

	"lingod/pkg/types"
)

// Handle is a loaded model for one direction. Implementations are not
// required to be safe for concurrent Step calls; the manager serializes
// access per handle.
type Handle interface {
	// Step returns the next-token distribution (one score per vocabulary id)
	// conditioned on the encoded source sequence and the target tokens
	// generated so far.
	Step(ctx context.Context, source, generated []int32) ([]float32, error)
	// ModelID identifies the loaded artifact.
	ModelID() string
	// Close releases resources held by the handle.
	Close() error
}

// Factory opens Handles from on-disk bundle specs. The manager owns exactly
// one Factory; tests substitute fakes.
type Factory interface {
	Open(ctx context.Context, spec types.BundleSpec) (Handle, error)
}

// unavailableError signals that no native inference backend is linked into
// this build. It maps to a model-load failure, not an inference fault.
type unavailableError struct{ msg string }

func (e unavailableError) Error() string { return e.msg }

// ErrUnavailable constructs an unavailableError.
func ErrUnavailable(msg string) error { return unavailableError{msg: msg} }

// IsUnavailable reports whether err indicates a missing inference backend.
func IsUnavailable(err error) bool {
	_, ok := err.(unavailableError)
	return ok
}
