package manager

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lingod/internal/runtime"
	"lingod/pkg/types"
)

// Manager owns the process-wide direction-to-bundle cache. All state
// transitions for a direction go through Get, Evict, and Reset; everything
// else only reads.
type Manager struct {
	mu      sync.RWMutex
	specs   map[types.Direction]types.BundleSpec
	entries map[types.Direction]*entry
	factory runtime.Factory
	log     zerolog.Logger

	maxQueueDepth int
	loadTimeout   time.Duration
	queueTimeout  time.Duration
	drainTimeout  time.Duration
	startTime     time.Time
}

// Directions returns all configured directions, loaded or not.
func (m *Manager) Directions() []types.Direction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]types.Direction, 0, len(m.specs))
	for d := range m.specs {
		out = append(out, d)
	}
	return out
}

// Known reports whether a direction has a configured bundle on disk.
func (m *Manager) Known(d types.Direction) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.specs[d]
	return ok
}

// IsReady reports whether the direction's bundle is loaded and usable.
func (m *Manager) IsReady(d types.Direction) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e := m.entries[d]
	return e != nil && e.state == StateReady
}

// Ready reports whether any configured direction is ready, for /readyz.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.state == StateReady {
			return true
		}
	}
	return false
}

// Close evicts every loaded bundle, draining in-flight work first. A load
// still in flight is waited on (bounded by the drain timeout) so its handle
// is not leaked when it lands ready during shutdown.
func (m *Manager) Close() {
	for _, d := range m.Directions() {
		m.mu.RLock()
		var done chan struct{}
		if e := m.entries[d]; e != nil && e.state == StateLoading {
			done = e.done
		}
		m.mu.RUnlock()
		if done != nil {
			select {
			case <-done:
			case <-time.After(m.drainTimeout):
			}
		}
		if m.IsReady(d) {
			_ = m.Evict(d)
		}
	}
}

// newEntry builds an idle cache entry with its admission channels.
func (m *Manager) newEntry() *entry {
	return &entry{
		state:   StateAbsent,
		queueCh: make(chan struct{}, m.maxQueueDepth),
		genCh:   make(chan struct{}, 1),
	}
}
