// Package manager owns the per-direction cache of loaded model bundles and
// coordinates access to them. It is structured into small files by concern:
//
//   - manager.go: core Manager type, constructor, readiness getters.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - types.go: internal state types (State, Bundle, entry).
//   - errors.go: error types and helpers (IsUnknownDirection, IsModelLoad, IsTimeout).
//   - get.go: the load/transition protocol behind Get (absent/loading/ready/failed).
//   - admission.go: per-bundle queueing; a bundle runs at most one decode at a time.
//   - evict.go: explicit eviction (ready -> absent) and Reset of cached failures.
//   - stats.go: hit/miss and load-time reporting for the stats endpoint.
//
// The manager never performs network I/O: bundles are read from the local
// models directory and a missing or corrupt bundle fails closed.
//
// External packages should treat this package as the lifecycle layer and use
// public methods only (NewWithConfig, Get, BeginTranslation, IsReady, Stats,
// Evict, Reset, Close). Internal types are subject to change.
package manager
