package manager

import (
	"context"
	"time"

	"lingod/pkg/types"
)

// BeginTranslation reserves a queue slot and then the single in-flight slot
// for the direction's bundle. The runtime handle is not reentrant, so decodes
// against one bundle are serialized here; different directions proceed in
// parallel. Returns a release func that must run on every exit path,
// including failure and cancellation.
func (m *Manager) BeginTranslation(ctx context.Context, d types.Direction) (func(), error) {
	m.mu.RLock()
	e := m.entries[d]
	var state State
	if e != nil {
		state = e.state
	}
	m.mu.RUnlock()
	if e == nil || state != StateReady {
		if state == StateDraining {
			return func() {}, drainingError{d: d}
		}
		return func() {}, ErrUnknownDirection(d.String())
	}

	// Respect an already-canceled context before queueing.
	if err := ctx.Err(); err != nil {
		return func() {}, err
	}

	timer := time.NewTimer(m.queueTimeout)
	defer timer.Stop()
	select {
	case e.queueCh <- struct{}{}:
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-timer.C:
		return func() {}, timeoutError{op: "queue", d: d}
	}

	acquired := false
	defer func() {
		if !acquired {
			<-e.queueCh
		}
	}()
	timer2 := time.NewTimer(m.queueTimeout)
	defer timer2.Stop()
	select {
	case e.genCh <- struct{}{}:
		acquired = true
		m.mu.Lock()
		e.lastUsed = time.Now()
		m.mu.Unlock()
		return func() { <-e.genCh; <-e.queueCh }, nil
	case <-ctx.Done():
		return func() {}, ctx.Err()
	case <-timer2.C:
		return func() {}, timeoutError{op: "queue", d: d}
	}
}

// inflightLocked reports queue depth and in-flight count for stats. Caller
// holds at least a read lock.
func (e *entry) inflightLocked() (queueLen, inflight int) {
	return len(e.queueCh) - len(e.genCh), len(e.genCh)
}
