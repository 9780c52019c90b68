package progress

import (
	"time"

	"github.com/bhava-app/bhava/internal/domain"
)

// CrisisAction is the synthetic action posted when a crisis session ends.
var CrisisAction = domain.CompletedAction{ID: "crisis-game", Points: 25, Category: domain.CategoryMindful}

// ProcessCheckIn folds one check-in into current and returns the new
// aggregate. current is not modified. loc decides calendar-day boundaries
// for the streak and the record's date.
//
// Inputs are trusted: negative points or out-of-range intensities pass
// through unchanged.
func ProcessCheckIn(current domain.Progress, req domain.CheckInRequest, now time.Time, loc *time.Location) domain.Progress {
	if loc == nil {
		loc = time.Local
	}
	next := current.Clone()

	pointsEarned := 0
	actionIDs := make([]string, 0, len(req.Actions))
	for _, a := range req.Actions {
		pointsEarned += a.Points
		actionIDs = append(actionIDs, a.ID)

		// creative and fun only count toward the total
		switch a.Category {
		case domain.CategorySocial:
			next.SocialActionsCompleted++
		case domain.CategoryBody:
			next.BodyActionsCompleted++
		case domain.CategoryMindful:
			next.MindfulActionsCompleted++
		}
	}

	streak := nextStreak(current, now, loc)
	next.CurrentStreak = streak
	next.LongestStreak = max(current.LongestStreak, streak)
	at := now
	next.LastCheckInDate = &at

	if !next.HasEmotion(req.EmotionID) {
		next.UniqueEmotions = append(next.UniqueEmotions, req.EmotionID)
	}

	next.TotalPoints += pointsEarned
	next.TotalActionsCompleted += len(req.Actions)

	next.CheckIns = append(next.CheckIns, domain.CheckIn{
		Date:             now.In(loc).Format(time.DateOnly),
		EmotionID:        req.EmotionID,
		SubEmotion:       req.SubEmotion,
		Intensity:        req.Intensity,
		ActionsCompleted: actionIDs,
		PointsEarned:     pointsEarned,
		UsedCrisisMode:   req.UsedCrisisMode,
		ContextTags:      append([]string{}, req.ContextTags...),
		JournalNote:      req.JournalNote,
	})

	next.UsedCrisisMode = current.UsedCrisisMode || req.UsedCrisisMode

	next.Badges = evaluateBadges(next)
	return next
}

// SetRegion returns a copy of p with the crisis-resource region set.
// An empty id clears the selection.
func SetRegion(p domain.Progress, regionID string) domain.Progress {
	next := p.Clone()
	if regionID == "" {
		next.SelectedRegion = nil
		return next
	}
	next.SelectedRegion = &regionID
	return next
}
