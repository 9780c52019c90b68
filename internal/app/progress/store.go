// Package progress implements the bhava progression engine: the default
// aggregate, schema-tolerant load, best-effort persistence, the pure
// check-in transition with streak and badge evaluation, and the Tracker
// that orchestrates persistence and remote sync around it.
package progress

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
	"github.com/bhava-app/bhava/internal/infra/metrics"
)

// StorageKey is the fixed key the aggregate is persisted under.
const StorageKey = "feels-moves-game-state"

// Default returns the first-run aggregate: all counters zero, no history,
// every catalog badge present and locked.
func Default() domain.Progress {
	badges := make([]domain.BadgeState, len(catalog.Badges))
	for i, b := range catalog.Badges {
		badges[i] = domain.BadgeState{ID: b.ID}
	}
	return domain.Progress{
		CheckIns:       []domain.CheckIn{},
		Badges:         badges,
		UniqueEmotions: []string{},
	}
}

// Store reads and writes the aggregate through a StateStore.
// Neither direction ever returns an error: load falls back to Default and
// save failures are logged and dropped.
type Store struct {
	state domain.StateStore
	log   zerolog.Logger
}

// NewStore creates a store backed by state.
func NewStore(state domain.StateStore, log zerolog.Logger) *Store {
	return &Store{state: state, log: log.With().Str("component", "progress_store").Logger()}
}

// Load returns the persisted aggregate merged onto Default.
func (s *Store) Load() domain.Progress {
	raw, err := s.state.GetState(StorageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrStateNotFound) {
			s.log.Warn().Err(err).Msg("read stored progress, using defaults")
		}
		return Default()
	}
	p, err := decodeStored(raw)
	if err != nil {
		s.log.Warn().Err(err).Msg("stored progress is corrupt, using defaults")
		return Default()
	}
	return p
}

// Save overwrites the persisted aggregate.
func (s *Store) Save(p domain.Progress) {
	raw, err := json.Marshal(p)
	if err != nil {
		metrics.StateWriteFailures.Inc()
		s.log.Warn().Err(err).Msg("encode progress")
		return
	}
	if err := s.state.PutState(StorageKey, raw); err != nil {
		metrics.StateWriteFailures.Inc()
		s.log.Warn().Err(err).Msg("persist progress, keeping in-memory state")
	}
}

// storedProgress mirrors domain.Progress with every field optional, so an
// aggregate written by an older schema decodes with its gaps visible.
type storedProgress struct {
	TotalPoints             *int                `json:"totalPoints"`
	CurrentStreak           *int                `json:"currentStreak"`
	LongestStreak           *int                `json:"longestStreak"`
	LastCheckInDate         *time.Time          `json:"lastCheckInDate"`
	CheckIns                *[]domain.CheckIn   `json:"checkIns"`
	Badges                  []domain.BadgeState `json:"badges"`
	UniqueEmotions          *[]string           `json:"uniqueEmotions"`
	TotalActionsCompleted   *int                `json:"totalActionsCompleted"`
	SocialActionsCompleted  *int                `json:"socialActionsCompleted"`
	BodyActionsCompleted    *int                `json:"bodyActionsCompleted"`
	MindfulActionsCompleted *int                `json:"mindfulActionsCompleted"`
	UsedCrisisMode          *bool               `json:"usedCrisisMode"`
	SelectedRegion          *string             `json:"selectedRegion"`
}

func decodeStored(raw []byte) (domain.Progress, error) {
	var s storedProgress
	if err := json.Unmarshal(raw, &s); err != nil {
		return domain.Progress{}, err
	}
	return mergeStored(Default(), s), nil
}

// mergeStored fills p from s. Stored values win field by field; fields the
// stored copy lacks keep their default. Badge membership always follows the
// catalog: catalog ids take the stored state when present, stored ids the
// catalog no longer knows are dropped.
func mergeStored(p domain.Progress, s storedProgress) domain.Progress {
	setInt(&p.TotalPoints, s.TotalPoints)
	setInt(&p.CurrentStreak, s.CurrentStreak)
	setInt(&p.LongestStreak, s.LongestStreak)
	setInt(&p.TotalActionsCompleted, s.TotalActionsCompleted)
	setInt(&p.SocialActionsCompleted, s.SocialActionsCompleted)
	setInt(&p.BodyActionsCompleted, s.BodyActionsCompleted)
	setInt(&p.MindfulActionsCompleted, s.MindfulActionsCompleted)

	if s.LastCheckInDate != nil {
		p.LastCheckInDate = s.LastCheckInDate
	}
	if s.CheckIns != nil {
		p.CheckIns = *s.CheckIns
	}
	if s.UniqueEmotions != nil {
		p.UniqueEmotions = *s.UniqueEmotions
	}
	if s.UsedCrisisMode != nil {
		p.UsedCrisisMode = *s.UsedCrisisMode
	}
	if s.SelectedRegion != nil {
		p.SelectedRegion = s.SelectedRegion
	}

	stored := make(map[string]domain.BadgeState, len(s.Badges))
	for _, b := range s.Badges {
		stored[b.ID] = b
	}
	for i, b := range p.Badges {
		if sb, ok := stored[b.ID]; ok {
			p.Badges[i] = sb
		}
	}
	return p
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
