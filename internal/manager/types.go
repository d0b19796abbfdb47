package manager

import (
	"time"

	"lingod/internal/runtime"
	"lingod/internal/tokenizer"
	"lingod/pkg/types"
)

// State is the lifecycle state of one direction's cache entry.
type State string

const (
	StateAbsent   State = "absent"
	StateLoading  State = "loading"
	StateReady    State = "ready"
	StateFailed   State = "failed"
	StateDraining State = "draining"
)

// Bundle owns exactly one tokenizer and one runtime handle for a direction.
// It is immutable after construction and shared by all requests for that
// direction.
type Bundle struct {
	Direction types.Direction
	ModelID   string
	Tokenizer *tokenizer.Tokenizer
	Handle    runtime.Handle
	Artifact  runtime.ArtifactInfo
}

// entry tracks one direction's state. All fields are guarded by Manager.mu
// except the channels, which are safe by construction: done is closed exactly
// once by the loader, and queueCh/genCh are fixed-capacity semaphores.
type entry struct {
	state  State
	bundle *Bundle
	err    error

	// done is closed when an in-flight load resolves to ready or failed.
	// Nil unless state is loading.
	done chan struct{}

	loadTime time.Duration
	lastUsed time.Time
	hits     uint64
	misses   uint64

	// Admission: queueCh bounds waiters, genCh (size 1) serializes decodes.
	queueCh chan struct{}
	genCh   chan struct{}
}
