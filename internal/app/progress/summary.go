package progress

import (
	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

const (
	recentEmotionWindow = 10
	recentCheckInWindow = 5
)

// Summary is the read model behind the progress screen.
type Summary struct {
	TotalPoints      int              `json:"totalPoints"`
	CurrentStreak    int              `json:"currentStreak"`
	LongestStreak    int              `json:"longestStreak"`
	CheckInCount     int              `json:"checkInCount"`
	ActionsCompleted int              `json:"actionsCompleted"`
	BadgesUnlocked   int              `json:"badgesUnlocked"`
	BadgesTotal      int              `json:"badgesTotal"`
	ExploredEmotions []string         `json:"exploredEmotions"`
	RecentEmotions   []string         `json:"recentEmotions"`
	RecentCheckIns   []domain.CheckIn `json:"recentCheckIns"`
	Region           string           `json:"region,omitempty"`
}

// Summarize derives the progress screen from p.
// ExploredEmotions follows catalog order. RecentEmotions holds the distinct
// emotions of the last ten check-ins in first-seen order. RecentCheckIns
// holds the last five, newest first.
func Summarize(p domain.Progress) Summary {
	s := Summary{
		TotalPoints:      p.TotalPoints,
		CurrentStreak:    p.CurrentStreak,
		LongestStreak:    p.LongestStreak,
		CheckInCount:     len(p.CheckIns),
		ActionsCompleted: p.TotalActionsCompleted,
		BadgesUnlocked:   p.UnlockedCount(),
		BadgesTotal:      len(p.Badges),
		ExploredEmotions: []string{},
		RecentEmotions:   []string{},
		RecentCheckIns:   []domain.CheckIn{},
		Region:           p.Region(),
	}

	for _, e := range catalog.Emotions {
		if p.HasEmotion(e.ID) {
			s.ExploredEmotions = append(s.ExploredEmotions, e.ID)
		}
	}

	seen := make(map[string]bool)
	for _, c := range p.CheckIns[max(0, len(p.CheckIns)-recentEmotionWindow):] {
		if !seen[c.EmotionID] {
			seen[c.EmotionID] = true
			s.RecentEmotions = append(s.RecentEmotions, c.EmotionID)
		}
	}

	for i := len(p.CheckIns) - 1; i >= 0 && len(s.RecentCheckIns) < recentCheckInWindow; i-- {
		s.RecentCheckIns = append(s.RecentCheckIns, p.CheckIns[i])
	}
	return s
}
