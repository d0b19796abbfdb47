package manager

import (
	"context"
	"errors"
	"time"

	"lingod/internal/metrics"
	"lingod/internal/runtime"
	"lingod/internal/tokenizer"
	"lingod/pkg/types"
)

// Get returns the ready bundle for a direction, loading it on first demand.
// The concurrency contract: at most one load runs per direction; callers that
// arrive while a load is in flight wait on its outcome instead of starting a
// second load. A failed load is cached and fails fast until Reset.
//
// Every call updates the direction's hit/miss counters: a hit means the
// bundle was already ready, a miss means this call triggered, waited on, or
// observed a load failure.
func (m *Manager) Get(ctx context.Context, d types.Direction) (*Bundle, error) {
	m.mu.Lock()
	spec, known := m.specs[d]
	if !known {
		m.mu.Unlock()
		return nil, ErrUnknownDirection(d.String())
	}
	e := m.entries[d]
	if e == nil {
		e = m.newEntry()
		m.entries[d] = e
	}
	switch e.state {
	case StateReady:
		e.hits++
		e.lastUsed = time.Now()
		b := e.bundle
		m.mu.Unlock()
		return b, nil

	case StateFailed:
		e.misses++
		err := e.err
		m.mu.Unlock()
		return nil, err

	case StateDraining:
		m.mu.Unlock()
		return nil, drainingError{d: d}

	case StateLoading:
		e.misses++
		done := e.done
		m.mu.Unlock()
		return m.awaitLoad(ctx, d, done)
	}

	// Absent: this caller owns the load.
	e.state = StateLoading
	e.err = nil
	e.misses++
	e.done = make(chan struct{})
	done := e.done
	m.mu.Unlock()

	m.log.Info().Str("direction", d.String()).Msg("bundle load start")
	start := time.Now()
	b, loadErr := m.loadBundle(spec)
	dur := time.Since(start)
	metrics.ModelLoad(d.String(), dur, loadErr)

	m.mu.Lock()
	if loadErr != nil {
		e.state = StateFailed
		e.err = ErrModelLoad(d, loadErr)
		e.bundle = nil
	} else {
		e.state = StateReady
		e.bundle = b
		e.loadTime = dur
		e.lastUsed = time.Now()
	}
	e.done = nil
	err := e.err
	m.mu.Unlock()
	close(done)

	if loadErr != nil {
		m.log.Error().Str("direction", d.String()).Err(err).Msg("bundle load failed")
		return nil, err
	}
	m.log.Info().Str("direction", d.String()).Str("model_id", b.ModelID).
		Dur("dur", dur).Msg("bundle ready")
	return b, nil
}

// awaitLoad blocks until the in-flight load for d resolves, the caller's
// context is canceled, or the load-wait bound expires.
func (m *Manager) awaitLoad(ctx context.Context, d types.Direction, done <-chan struct{}) (*Bundle, error) {
	timer := time.NewTimer(m.loadTimeout)
	defer timer.Stop()
	select {
	case <-done:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		return nil, timeoutError{op: "load-wait", d: d}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	e := m.entries[d]
	switch {
	case e == nil:
		return nil, ErrModelLoad(d, errors.New("bundle evicted while waiting"))
	case e.state == StateReady:
		return e.bundle, nil
	case e.state == StateFailed:
		return nil, e.err
	default:
		return nil, ErrModelLoad(d, errors.New("bundle evicted while waiting"))
	}
}

// loadBundle performs the actual load: tokenizer definition, artifact header,
// runtime handle. It only touches the local bundle directory; there is no
// fallback source of any kind. The load deliberately runs on a detached
// context so one canceled caller cannot poison the outcome that concurrent
// waiters share.
func (m *Manager) loadBundle(spec types.BundleSpec) (*Bundle, error) {
	tok, err := tokenizer.Load(spec.TokenizerPath)
	if err != nil {
		return nil, err
	}
	info, err := runtime.ReadArtifactHeader(spec.ModelPath)
	if err != nil {
		return nil, err
	}
	h, err := m.factory.Open(context.Background(), spec)
	if err != nil {
		return nil, err
	}
	modelID := h.ModelID()
	if modelID == "" {
		modelID = info.ModelID
	}
	return &Bundle{
		Direction: spec.Direction,
		ModelID:   modelID,
		Tokenizer: tok,
		Handle:    h,
		Artifact:  info,
	}, nil
}

// Warmup eagerly loads the given directions, typically at startup. Failures
// are collected rather than aborting the remaining loads.
func (m *Manager) Warmup(ctx context.Context, dirs []types.Direction) error {
	var errs []error
	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := m.Get(ctx, d); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
