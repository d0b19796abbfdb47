package manager

import (
	"time"

	"lingod/pkg/types"
)

// Stats builds the per-direction cache report for /stats. Directions that
// were never requested appear with zero counters.
func (m *Manager) Stats() types.StatsResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := types.StatsResponse{
		Directions:    make(map[string]types.DirectionStats, len(m.specs)),
		UptimeSeconds: int64(time.Since(m.startTime) / time.Second),
	}
	for d := range m.specs {
		var ds types.DirectionStats
		if e := m.entries[d]; e != nil {
			ds.Loaded = e.state == StateReady
			ds.LoadTimeMS = e.loadTime.Milliseconds()
			ds.HitCount = e.hits
			ds.MissCount = e.misses
			if e.err != nil {
				ds.LastError = e.err.Error()
			}
			ds.QueueLen, ds.Inflight = e.inflightLocked()
		}
		out.Directions[d.String()] = ds
	}
	return out
}

// Health reports per-direction readiness for the health endpoint.
func (m *Manager) Health() map[string]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]bool, len(m.specs))
	for d := range m.specs {
		e := m.entries[d]
		out[d.String()] = e != nil && e.state == StateReady
	}
	return out
}
