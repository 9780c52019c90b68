// Package domain holds the pure types shared by every layer of bhava:
// the persisted progress aggregate, check-in records, content catalog
// entries, sentinel errors and the storage/sync boundaries.
package domain

import "time"

// ─── Action Categories ──────────────────────────────────────────────────────

// ActionCategory is the fixed taxonomy a micro-action belongs to.
type ActionCategory string

const (
	CategoryBody     ActionCategory = "body"
	CategorySocial   ActionCategory = "social"
	CategoryCreative ActionCategory = "creative"
	CategoryMindful  ActionCategory = "mindful"
	CategoryFun      ActionCategory = "fun"
)

// CompletedAction is the slice of a micro-action the progression engine reads.
type CompletedAction struct {
	ID       string         `json:"id"`
	Points   int            `json:"points"`
	Category ActionCategory `json:"category"`
}

// ─── Progress Aggregate ─────────────────────────────────────────────────────

// CheckIn is one appended history record. Immutable once appended.
type CheckIn struct {
	Date             string   `json:"date"` // YYYY-MM-DD
	EmotionID        string   `json:"emotionId"`
	SubEmotion       string   `json:"subEmotion"`
	Intensity        int      `json:"intensity"`
	ActionsCompleted []string `json:"actionsCompleted"`
	PointsEarned     int      `json:"pointsEarned"`
	UsedCrisisMode   bool     `json:"usedCrisisMode"`
	ContextTags      []string `json:"contextTags"`
	JournalNote      string   `json:"journalNote"`
}

// BadgeState is the mutable runtime half of a catalog badge.
type BadgeState struct {
	ID       string `json:"id"`
	Unlocked bool   `json:"unlocked"`
}

// Progress is the single persisted aggregate per device.
// Field names are the persisted JSON layout.
type Progress struct {
	TotalPoints             int          `json:"totalPoints"`
	CurrentStreak           int          `json:"currentStreak"`
	LongestStreak           int          `json:"longestStreak"`
	LastCheckInDate         *time.Time   `json:"lastCheckInDate"`
	CheckIns                []CheckIn    `json:"checkIns"`
	Badges                  []BadgeState `json:"badges"`
	UniqueEmotions          []string     `json:"uniqueEmotions"`
	TotalActionsCompleted   int          `json:"totalActionsCompleted"`
	SocialActionsCompleted  int          `json:"socialActionsCompleted"`
	BodyActionsCompleted    int          `json:"bodyActionsCompleted"`
	MindfulActionsCompleted int          `json:"mindfulActionsCompleted"`
	UsedCrisisMode          bool         `json:"usedCrisisMode"`
	SelectedRegion          *string      `json:"selectedRegion"`
}

// Badge returns the state for id and whether it exists.
func (p Progress) Badge(id string) (BadgeState, bool) {
	for _, b := range p.Badges {
		if b.ID == id {
			return b, true
		}
	}
	return BadgeState{}, false
}

// IsUnlocked reports whether badge id is unlocked.
func (p Progress) IsUnlocked(id string) bool {
	b, ok := p.Badge(id)
	return ok && b.Unlocked
}

// UnlockedCount returns how many badges are unlocked.
func (p Progress) UnlockedCount() int {
	n := 0
	for _, b := range p.Badges {
		if b.Unlocked {
			n++
		}
	}
	return n
}

// HasEmotion reports whether emotionID was ever checked in with.
func (p Progress) HasEmotion(emotionID string) bool {
	for _, e := range p.UniqueEmotions {
		if e == emotionID {
			return true
		}
	}
	return false
}

// Region returns the selected region id, or "" if none was chosen.
func (p Progress) Region() string {
	if p.SelectedRegion == nil {
		return ""
	}
	return *p.SelectedRegion
}

// Clone returns a deep copy so callers can derive a new aggregate without
// touching the receiver's slices.
func (p Progress) Clone() Progress {
	out := p
	if p.LastCheckInDate != nil {
		t := *p.LastCheckInDate
		out.LastCheckInDate = &t
	}
	if p.SelectedRegion != nil {
		r := *p.SelectedRegion
		out.SelectedRegion = &r
	}
	out.CheckIns = make([]CheckIn, len(p.CheckIns))
	for i, c := range p.CheckIns {
		c.ActionsCompleted = append([]string(nil), c.ActionsCompleted...)
		c.ContextTags = append([]string(nil), c.ContextTags...)
		out.CheckIns[i] = c
	}
	out.Badges = append([]BadgeState(nil), p.Badges...)
	out.UniqueEmotions = append([]string(nil), p.UniqueEmotions...)
	return out
}

// ─── Check-In Input ─────────────────────────────────────────────────────────

// CheckInRequest carries the facts of one check-in collected by the view layer.
// Values are trusted as-is; nothing here is validated.
type CheckInRequest struct {
	EmotionID      string
	SubEmotion     string
	Intensity      int
	Actions        []CompletedAction
	UsedCrisisMode bool
	ContextTags    []string
	JournalNote    string
}
