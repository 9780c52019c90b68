package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhava-app/bhava/internal/api"
	"github.com/bhava-app/bhava/internal/app/progress"
	"github.com/bhava-app/bhava/internal/app/syncer"
	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/health"
	"github.com/bhava-app/bhava/internal/infra/remote"
	"github.com/bhava-app/bhava/internal/infra/sqlite"
	"github.com/bhava-app/bhava/internal/logger"
)

// Daemon is the bhava runtime. It wires together all services.
type Daemon struct {
	Config  Config
	Log     zerolog.Logger
	DB      *sqlite.DB
	Store   *progress.Store
	Tracker *progress.Tracker
	Health  *health.Checker
	Server  *api.Server

	// nil when sync is disabled
	Remote *remote.Client
	Syncer *syncer.Syncer

	cancel context.CancelFunc
}

// New loads the configuration and creates a Daemon.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	log := logger.New(cfg.Logging.Level, cfg.Logging.Pretty)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	dir := cfg.Storage.Dir
	if dir == "" {
		dir = bhavaHome()
	}
	db, err := sqlite.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &Daemon{
		Config: cfg,
		Log:    log,
		DB:     db,
		Store:  progress.NewStore(db, log),
	}

	var dispatcher domain.SyncDispatcher
	if cfg.Sync.Enabled {
		d.Remote = remote.New(cfg.Sync.URL, cfg.Sync.APIKey, parseDuration(cfg.Sync.Timeout, 10*time.Second))
		d.Syncer = syncer.New(d.Remote, db,
			syncer.WithLogger(log),
			syncer.WithTimeout(parseDuration(cfg.Sync.Timeout, 10*time.Second)),
		)
		dispatcher = d.Syncer
	} else {
		log.Debug().Msg("remote sync disabled")
	}

	d.Tracker = progress.NewTracker(d.Store, dispatcher,
		progress.WithLocation(loc),
		progress.WithLogger(log),
	)

	var backend health.RemotePinger
	if d.Remote != nil {
		backend = d.Remote
	}
	d.Health = health.NewChecker(db, dir, backend)

	d.Server = api.NewServer(d.Tracker)
	d.Server.SetHealth(d.Health)
	if d.Remote != nil {
		d.Server.SetStats(d.Remote.Stats)
	}
	if cfg.API.Metrics {
		d.Server.EnableMetrics()
	}

	return d, nil
}

// Stats returns backend-wide counts, or domain.ErrSyncDisabled.
func (d *Daemon) Stats(ctx context.Context) (remote.Stats, error) {
	if d.Remote == nil {
		return remote.Stats{}, domain.ErrSyncDisabled
	}
	return d.Remote.Stats(ctx)
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
	}()

	d.Log.Info().Str("addr", "http://"+addr).Bool("sync", d.Syncer != nil).Msg("bhava serving")
	if d.Config.API.Metrics {
		d.Log.Info().Str("url", "http://"+addr+"/metrics").Msg("metrics enabled")
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Flush gives in-flight sync tasks until the configured flush timeout to
// finish. Whatever is still running afterwards is abandoned.
func (d *Daemon) Flush() {
	if d.Syncer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), parseDuration(d.Config.Sync.FlushTimeout, 3*time.Second))
	defer cancel()
	if err := d.Syncer.Wait(ctx); err != nil {
		d.Log.Debug().Err(err).Msg("abandoning in-flight sync")
	}
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	d.Flush()
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
