package progress

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
	"github.com/bhava-app/bhava/internal/infra/metrics"
)

// Result is what a check-in hands back to the view layer.
type Result struct {
	Progress     domain.Progress   `json:"progress"`
	PointsEarned int               `json:"pointsEarned"`
	Unlocked     []domain.BadgeDef `json:"unlocked"`
}

// Tracker owns the session's in-memory aggregate. Each mutation runs the
// pure transition, persists the result, then dispatches a sync task.
// Calls are serialized so only one transition runs at a time.
type Tracker struct {
	mu      sync.Mutex
	store   *Store
	sync    domain.SyncDispatcher
	loc     *time.Location
	now     func() time.Time
	log     zerolog.Logger
	current domain.Progress
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithLocation sets the time zone that defines calendar days.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithLogger sets the tracker's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(t *Tracker) { t.log = log.With().Str("component", "tracker").Logger() }
}

// NewTracker loads the aggregate once from store. dispatcher may be nil,
// in which case check-ins are never synced.
func NewTracker(store *Store, dispatcher domain.SyncDispatcher, opts ...Option) *Tracker {
	t := &Tracker{
		store: store,
		sync:  dispatcher,
		loc:   time.Local,
		now:   time.Now,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.current = store.Load()
	return t
}

// Current returns a copy of the session aggregate.
func (t *Tracker) Current() domain.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current.Clone()
}

// Location returns the time zone used for calendar days.
func (t *Tracker) Location() *time.Location {
	return t.loc
}

// CheckIn records one check-in.
func (t *Tracker) CheckIn(req domain.CheckInRequest) Result {
	t.mu.Lock()
	before := t.current
	after := ProcessCheckIn(before, req, t.now(), t.loc)
	t.current = after
	t.store.Save(after)
	// Sync tasks start in check-in order.
	if t.sync != nil {
		t.sync.Dispatch(after.CheckIns[len(after.CheckIns)-1], after.Clone())
	}
	t.mu.Unlock()

	res := Result{
		Progress:     after.Clone(),
		PointsEarned: after.CheckIns[len(after.CheckIns)-1].PointsEarned,
		Unlocked:     NewlyUnlocked(before, after),
	}

	metrics.CheckIns.WithLabelValues(req.EmotionID).Inc()
	if res.PointsEarned > 0 {
		metrics.PointsAwarded.Add(float64(res.PointsEarned))
	}
	for _, b := range res.Unlocked {
		metrics.BadgesUnlocked.WithLabelValues(b.ID).Inc()
	}
	t.log.Debug().
		Str("emotion", req.EmotionID).
		Int("points", res.PointsEarned).
		Int("streak", after.CurrentStreak).
		Int("unlocked", len(res.Unlocked)).
		Msg("check-in processed")

	return res
}

// CompleteCrisis records the end of a crisis session: one synthetic
// crisis action with crisis mode flagged.
func (t *Tracker) CompleteCrisis(emotionID, subEmotion string, intensity int) Result {
	return t.CheckIn(domain.CheckInRequest{
		EmotionID:      emotionID,
		SubEmotion:     subEmotion,
		Intensity:      intensity,
		Actions:        []domain.CompletedAction{CrisisAction},
		UsedCrisisMode: true,
	})
}

// SetRegion selects the crisis-resource region and persists it.
// Region changes are local only and never synced.
func (t *Tracker) SetRegion(regionID string) (domain.Progress, error) {
	if regionID != "" {
		if _, err := catalog.Region(regionID); err != nil {
			return domain.Progress{}, fmt.Errorf("set region: %w", err)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = SetRegion(t.current, regionID)
	t.store.Save(t.current)
	return t.current.Clone(), nil
}
