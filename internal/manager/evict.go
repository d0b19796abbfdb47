package manager

import (
	"time"

	"lingod/pkg/types"
)

// Evict gracefully removes a loaded bundle (ready -> absent): new work is
// rejected while in-flight and queued requests drain, then the runtime handle
// is closed and the entry removed. Nothing triggers eviction automatically;
// it exists for cache-pressure handling driven from above.
func (m *Manager) Evict(d types.Direction) error {
	m.mu.Lock()
	e := m.entries[d]
	if e == nil || e.state != StateReady {
		m.mu.Unlock()
		return ErrUnknownDirection(d.String())
	}
	e.state = StateDraining
	bundle := e.bundle
	m.mu.Unlock()
	m.log.Info().Str("direction", d.String()).Msg("evict start")

	deadline := time.Now().Add(m.drainTimeout)
	for {
		m.mu.RLock()
		queueLen, inflight := e.inflightLocked()
		m.mu.RUnlock()
		if queueLen == 0 && inflight == 0 {
			break
		}
		if time.Now().After(deadline) {
			m.log.Warn().Str("direction", d.String()).
				Int("queue", queueLen).Int("inflight", inflight).
				Msg("evict drain timeout")
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if bundle != nil && bundle.Handle != nil {
		_ = bundle.Handle.Close()
	}

	m.mu.Lock()
	delete(m.entries, d)
	m.mu.Unlock()
	m.log.Info().Str("direction", d.String()).Msg("evict done")
	return nil
}

// Reset clears a cached load failure so the next Get retries the filesystem.
// A no-op for any other state.
func (m *Manager) Reset(d types.Direction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.entries[d]; e != nil && e.state == StateFailed {
		delete(m.entries, d)
		m.log.Info().Str("direction", d.String()).Msg("failed state reset")
	}
}
