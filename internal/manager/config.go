package manager

import (
	"time"

	"github.com/rs/zerolog"

	"lingod/internal/runtime"
	"lingod/pkg/types"
)

// Defaults applied when corresponding Config fields are unset.
const (
	defaultMaxQueueDepth = 32
	defaultLoadTimeout   = 30 * time.Second
	defaultQueueTimeout  = 30 * time.Second
	defaultDrainTimeout  = 5 * time.Second
)

// Config encapsulates all tunables for Manager construction.
type Config struct {
	// Registry lists the bundle specs discovered on disk.
	Registry []types.BundleSpec
	// Factory opens runtime handles; defaults to the fail-closed stub.
	Factory runtime.Factory
	// Logger receives lifecycle events; defaults to a nop logger.
	Logger *zerolog.Logger

	// MaxQueueDepth caps queued requests per bundle.
	MaxQueueDepth int
	// LoadTimeout bounds how long a caller waits on another caller's load.
	LoadTimeout time.Duration
	// QueueTimeout bounds how long a caller waits for a bundle's decode slot.
	QueueTimeout time.Duration
	// DrainTimeout bounds how long Evict waits for in-flight work.
	DrainTimeout time.Duration
}

// NewWithConfig constructs a Manager from Config, applying defaults for
// unset fields.
func NewWithConfig(cfg Config) *Manager {
	m := &Manager{
		specs:   make(map[types.Direction]types.BundleSpec, len(cfg.Registry)),
		entries: make(map[types.Direction]*entry, len(cfg.Registry)),
		factory: cfg.Factory,
		log:     zerolog.Nop(),

		maxQueueDepth: cfg.MaxQueueDepth,
		loadTimeout:   cfg.LoadTimeout,
		queueTimeout:  cfg.QueueTimeout,
		drainTimeout:  cfg.DrainTimeout,
		startTime:     time.Now(),
	}
	for _, spec := range cfg.Registry {
		m.specs[spec.Direction] = spec
	}
	if m.factory == nil {
		m.factory = runtime.StubFactory{}
	}
	if cfg.Logger != nil {
		m.log = *cfg.Logger
	}
	if m.maxQueueDepth <= 0 {
		m.maxQueueDepth = defaultMaxQueueDepth
	}
	if m.loadTimeout <= 0 {
		m.loadTimeout = defaultLoadTimeout
	}
	if m.queueTimeout <= 0 {
		m.queueTimeout = defaultQueueTimeout
	}
	if m.drainTimeout <= 0 {
		m.drainTimeout = defaultDrainTimeout
	}
	return m
}
