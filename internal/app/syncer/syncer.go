// Package syncer pushes check-ins to the remote backend in the background.
// Local state stays authoritative: every step is best-effort, failures are
// logged and counted, and nothing is retried.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
	"github.com/bhava-app/bhava/internal/infra/metrics"
	"github.com/bhava-app/bhava/internal/infra/remote"
)

// UserIDKey is the local state key caching the anonymous remote identity.
const UserIDKey = "bhava_user_id"

// Step names used in logs and metrics.
const (
	StepIdentity = "identity"
	StepMood     = "mood_entry"
	StepStreak   = "streak"
	StepBadges   = "badges"
)

// Backend is the remote surface the syncer writes to.
type Backend interface {
	CreateUser(ctx context.Context, now time.Time) (string, error)
	TouchUser(ctx context.Context, userID string, now time.Time) error
	InsertMoodEntry(ctx context.Context, e remote.MoodEntry) error
	UpdateStreak(ctx context.Context, userID string, streak int, now time.Time) error
	ListBadgeNames(ctx context.Context, userID string) ([]string, error)
	InsertBadges(ctx context.Context, userID string, names []string) error
}

// Syncer implements domain.SyncDispatcher.
type Syncer struct {
	backend Backend
	state   domain.StateStore
	log     zerolog.Logger
	now     func() time.Time
	timeout time.Duration

	identityMu sync.Mutex
	inflight   sync.WaitGroup
}

var _ domain.SyncDispatcher = (*Syncer)(nil)

// Option configures a Syncer.
type Option func(*Syncer)

// WithLogger sets the syncer's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Syncer) { s.log = log.With().Str("component", "syncer").Logger() }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) { s.now = now }
}

// WithTimeout bounds a single background sync task.
func WithTimeout(d time.Duration) Option {
	return func(s *Syncer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New creates a syncer. state caches the anonymous user id.
func New(backend Backend, state domain.StateStore, opts ...Option) *Syncer {
	s := &Syncer{
		backend: backend,
		state:   state,
		log:     zerolog.Nop(),
		now:     time.Now,
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch starts a background sync of one check-in and returns at once.
func (s *Syncer) Dispatch(checkIn domain.CheckIn, progress domain.Progress) {
	metrics.SyncDispatched.Inc()
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		start := time.Now()
		if err := s.Sync(ctx, checkIn, progress); err != nil {
			s.log.Debug().Err(err).Msg("sync finished with errors")
		}
		metrics.SyncLatency.Observe(time.Since(start).Seconds())
	}()
}

// Wait blocks until every dispatched task has finished or ctx is done.
// Tasks still running when ctx ends are abandoned.
func (s *Syncer) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Sync runs every step for one check-in. Without an identity nothing else
// is attempted; the remaining steps run independently of each other.
// The returned error joins every step failure.
func (s *Syncer) Sync(ctx context.Context, checkIn domain.CheckIn, progress domain.Progress) error {
	userID, err := s.ensureIdentity(ctx)
	if err != nil {
		return s.fail(StepIdentity, err)
	}

	var errs []error
	now := s.now()

	if err := s.backend.InsertMoodEntry(ctx, remote.MoodEntry{
		UserID:    userID,
		Emotion:   checkIn.EmotionID,
		Intensity: checkIn.Intensity,
		CreatedAt: now,
	}); err != nil {
		errs = append(errs, s.fail(StepMood, err))
	}

	if err := s.backend.UpdateStreak(ctx, userID, progress.CurrentStreak, now); err != nil {
		errs = append(errs, s.fail(StepStreak, err))
	}

	if err := s.syncBadges(ctx, userID, progress); err != nil {
		errs = append(errs, s.fail(StepBadges, err))
	}

	return errors.Join(errs...)
}

// UserID returns the cached anonymous identity, if one was created.
func (s *Syncer) UserID() (string, bool) {
	raw, err := s.state.GetState(UserIDKey)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// ensureIdentity returns the cached user id, touching its last_active, or
// creates and caches a new one.
func (s *Syncer) ensureIdentity(ctx context.Context) (string, error) {
	s.identityMu.Lock()
	defer s.identityMu.Unlock()

	if id, ok := s.UserID(); ok {
		if err := s.backend.TouchUser(ctx, id, s.now()); err != nil {
			s.log.Debug().Err(err).Str("user_id", id).Msg("touch user failed")
		}
		return id, nil
	}

	id, err := s.backend.CreateUser(ctx, s.now())
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNoIdentity, err)
	}
	if err := s.state.PutState(UserIDKey, []byte(id)); err != nil {
		s.log.Warn().Err(err).Msg("cache user id")
	}
	s.log.Info().Str("user_id", id).Msg("created anonymous identity")
	return id, nil
}

// syncBadges inserts unlocked badge names the backend does not have yet.
func (s *Syncer) syncBadges(ctx context.Context, userID string, progress domain.Progress) error {
	var unlocked []string
	for _, b := range progress.Badges {
		if !b.Unlocked {
			continue
		}
		def, err := catalog.Badge(b.ID)
		if err != nil {
			continue
		}
		unlocked = append(unlocked, def.Name)
	}
	if len(unlocked) == 0 {
		return nil
	}

	existing, err := s.backend.ListBadgeNames(ctx, userID)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, n := range existing {
		have[n] = true
	}

	var missing []string
	for _, n := range unlocked {
		if !have[n] {
			missing = append(missing, n)
		}
	}
	return s.backend.InsertBadges(ctx, userID, missing)
}

func (s *Syncer) fail(step string, err error) error {
	metrics.SyncStepFailures.WithLabelValues(step).Inc()
	s.log.Warn().Str("step", step).Err(err).Msg("sync step failed")
	return fmt.Errorf("%s: %w", step, err)
}
