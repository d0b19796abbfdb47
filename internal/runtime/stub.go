package runtime

import (
	"context"

	"lingod/pkg/types"
)

// StubFactory is the default factory when no native backend is linked in.
// It still validates the artifact on disk so corrupt bundles surface as
// corrupt rather than as a missing backend, then fails closed. There is no
// mock generation path.
type StubFactory struct{}

// Open validates the artifact header and reports the backend as unavailable.
func (StubFactory) Open(ctx context.Context, spec types.BundleSpec) (Handle, error) {
	if _, err := ReadArtifactHeader(spec.ModelPath); err != nil {
		return nil, err
	}
	return nil, ErrUnavailable("native inference backend not built in")
}
