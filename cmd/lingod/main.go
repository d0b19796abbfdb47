package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"lingod/internal/config"
	"lingod/internal/httpapi"
	"lingod/internal/manager"
	"lingod/internal/pipeline"
	"lingod/internal/registry"
	"lingod/pkg/types"
)

type options struct {
	addr            string
	modelsDir       string
	configPath      string
	logLevel        string
	logFormat       string
	warmup          []string
	defaultMaxLen   int
	loadTimeoutSec  int
	queueTimeoutSec int
	maxQueueDepth   int
}

func main() {
	opts := &options{}
	root := &cobra.Command{
		Use:   "lingod",
		Short: "Offline bidirectional text translation daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
		SilenceUsage: true,
	}
	f := root.Flags()
	f.StringVar(&opts.addr, "addr", "", "HTTP listen address, e.g. :8080")
	f.StringVar(&opts.modelsDir, "models-dir", "", "directory holding per-direction model bundles")
	f.StringVar(&opts.configPath, "config", "", "config file (.yaml/.json/.toml)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&opts.logFormat, "log-format", "", "log format: json or console")
	f.StringSliceVar(&opts.warmup, "warmup", nil, "directions to load eagerly at startup, e.g. en-hi,hi-en")
	f.IntVar(&opts.defaultMaxLen, "default-max-length", 0, "token length ceiling when the request omits max_length")
	f.IntVar(&opts.loadTimeoutSec, "load-timeout-sec", 0, "bound on waiting for a model load")
	f.IntVar(&opts.queueTimeoutSec, "queue-timeout-sec", 0, "bound on waiting for a bundle's decode slot")
	f.IntVar(&opts.maxQueueDepth, "max-queue-depth", 0, "queued requests per bundle before rejection")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts *options) error {
	var cfg config.Config
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	applyFlags(&cfg, opts)
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.ModelsDir == "" {
		cfg.ModelsDir = "~/models/translate"
	}

	log := newLogger(cfg.LogLevel, cfg.LogFormat)

	specs, err := registry.LoadDir(cfg.ModelsDir)
	if err != nil {
		return fmt.Errorf("scan models dir: %w", err)
	}
	if len(specs) == 0 {
		log.Warn().Str("dir", cfg.ModelsDir).Msg("no model bundles found")
	}

	mgr := manager.NewWithConfig(manager.Config{
		Registry:      specs,
		Logger:        &log,
		MaxQueueDepth: cfg.MaxQueueDepth,
		LoadTimeout:   cfg.LoadTimeout(),
		QueueTimeout:  cfg.QueueTimeout(),
	})
	defer mgr.Close()

	pipe := pipeline.New(pipeline.Config{
		Manager:          mgr,
		DefaultMaxLength: cfg.DefaultMaxLength,
		Logger:           &log,
	})

	// Base context canceled on shutdown so in-flight pipeline work stops with
	// the server.
	baseCtx, stopBase := context.WithCancel(context.Background())
	defer stopBase()
	httpapi.SetBaseContext(baseCtx)
	httpapi.SetLogger(log)
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{"GET", "POST", "OPTIONS"}, []string{"Content-Type"})

	if len(cfg.Warmup) > 0 {
		dirs := make([]types.Direction, 0, len(cfg.Warmup))
		for _, s := range cfg.Warmup {
			d, err := types.ParseDirection(s)
			if err != nil {
				return fmt.Errorf("warmup: %w", err)
			}
			dirs = append(dirs, d)
		}
		if err := mgr.Warmup(baseCtx, dirs); err != nil {
			log.Warn().Err(err).Msg("warmup finished with failures")
		}
	}

	mux := httpapi.NewMux(&service{pipe: pipe, mgr: mgr})
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Str("models_dir", cfg.ModelsDir).
			Int("directions", len(specs)).Msg("lingod listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	stopBase()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
	return nil
}

// applyFlags overlays non-zero flag values on top of the file config.
func applyFlags(cfg *config.Config, opts *options) {
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}
	if opts.modelsDir != "" {
		cfg.ModelsDir = opts.modelsDir
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if len(opts.warmup) > 0 {
		cfg.Warmup = opts.warmup
	}
	if opts.defaultMaxLen > 0 {
		cfg.DefaultMaxLength = opts.defaultMaxLen
	}
	if opts.loadTimeoutSec > 0 {
		cfg.LoadTimeoutSec = opts.loadTimeoutSec
	}
	if opts.queueTimeoutSec > 0 {
		cfg.QueueTimeoutSec = opts.queueTimeoutSec
	}
	if opts.maxQueueDepth > 0 {
		cfg.MaxQueueDepth = opts.maxQueueDepth
	}
}

// newLogger builds the process logger: JSON by default, console for dev.
func newLogger(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if format == "console" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		log = zerolog.New(os.Stderr)
	}
	return log.Level(lvl).With().Timestamp().Logger()
}

// service adapts the pipeline and manager to the HTTP layer.
type service struct {
	pipe *pipeline.Pipeline
	mgr  *manager.Manager
}

func (s *service) Translate(ctx context.Context, req types.TranslateRequest) types.TranslateResponse {
	return s.pipe.Translate(ctx, req)
}
func (s *service) Health() map[string]bool    { return s.mgr.Health() }
func (s *service) Stats() types.StatsResponse { return s.mgr.Stats() }
func (s *service) Ready() bool                { return s.mgr.Ready() }
