// Package health runs periodic checks on local storage and the optional
// sync backend, exposing the latest results for /health.
package health

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bhava-app/bhava/internal/infra/metrics"
)

// Check defines a single health check with optional recovery action.
type Check struct {
	Name      string
	CheckFn   func(ctx context.Context) error
	RecoverFn func(ctx context.Context) error
}

// Status represents the result of a health check.
type Status struct {
	Name      string    `json:"name"`
	Healthy   bool      `json:"healthy"`
	Error     string    `json:"error,omitempty"`
	CheckedAt time.Time `json:"checked_at"`
}

// Pinger is satisfied by *sqlite.DB.
type Pinger interface {
	Ping() error
}

// RemotePinger is satisfied by *remote.Client.
type RemotePinger interface {
	Ping(ctx context.Context) error
}

// Checker runs periodic health checks with auto-recovery.
type Checker struct {
	mu       sync.RWMutex
	checks   []Check
	statuses []Status
	interval time.Duration
}

// NewChecker creates a checker for the state database and its directory.
// A nil backend skips the sync_remote check.
func NewChecker(db Pinger, dataDir string, backend RemotePinger) *Checker {
	checks := []Check{
		{
			Name: "sqlite",
			CheckFn: func(ctx context.Context) error {
				return db.Ping()
			},
		},
		{
			Name: "data_dir",
			CheckFn: func(ctx context.Context) error {
				return checkWritable(dataDir)
			},
			RecoverFn: func(ctx context.Context) error {
				return os.MkdirAll(dataDir, 0700)
			},
		},
	}
	if backend != nil {
		checks = append(checks, Check{
			Name: "sync_remote",
			CheckFn: func(ctx context.Context) error {
				ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
				defer cancel()
				return backend.Ping(ctx)
			},
		})
	}
	return &Checker{interval: 60 * time.Second, checks: checks}
}

// Run starts the health check loop. Call in a goroutine.
func (c *Checker) Run(ctx context.Context) {
	c.RunOnce(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.RunOnce(ctx)
		}
	}
}

// RunOnce runs every check and stores the results.
func (c *Checker) RunOnce(ctx context.Context) {
	statuses := make([]Status, len(c.checks))
	for i, check := range c.checks {
		s := Status{
			Name:      check.Name,
			CheckedAt: time.Now(),
		}
		if err := check.CheckFn(ctx); err != nil {
			s.Error = err.Error()
			if check.RecoverFn != nil {
				_ = check.RecoverFn(ctx)
			}
			metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(0)
		} else {
			s.Healthy = true
			metrics.HealthCheckStatus.WithLabelValues(check.Name).Set(1)
		}
		statuses[i] = s
	}

	c.mu.Lock()
	c.statuses = statuses
	c.mu.Unlock()
}

// Statuses returns the latest health check results.
func (c *Checker) Statuses() []Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]Status, len(c.statuses))
	copy(result, c.statuses)
	return result
}

// IsHealthy reports whether local storage is healthy. The remote backend
// is optional, so sync_remote never makes the process unhealthy.
func (c *Checker) IsHealthy() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.statuses {
		if !s.Healthy && s.Name != "sync_remote" {
			return false
		}
	}
	return true
}

// ─── Check Implementations ──────────────────────────────────────────────────

func checkWritable(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("check data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	f, err := os.CreateTemp(dir, ".health-*")
	if err != nil {
		return fmt.Errorf("data dir not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(filepath.Clean(name))
}
