package progress

import (
	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

// badgeRule unlocks a badge once Metric reaches Target. Metrics read
// independent counters, so evaluation order does not matter.
type badgeRule struct {
	ID     string
	Target int
	Metric func(domain.Progress) int
}

func (r badgeRule) met(p domain.Progress) bool {
	return r.Metric(p) >= r.Target
}

var badgeRules = []badgeRule{
	{ID: "first-check", Target: 1, Metric: func(p domain.Progress) int { return len(p.CheckIns) }},
	{ID: "explorer", Target: 3, Metric: func(p domain.Progress) int { return len(p.UniqueEmotions) }},
	{ID: "streak-3", Target: 3, Metric: func(p domain.Progress) int { return p.CurrentStreak }},
	{ID: "streak-7", Target: 7, Metric: func(p domain.Progress) int { return p.CurrentStreak }},
	{ID: "action-hero", Target: 10, Metric: func(p domain.Progress) int { return p.TotalActionsCompleted }},
	{ID: "all-emotions", Target: 6, Metric: func(p domain.Progress) int { return len(p.UniqueEmotions) }},
	{ID: "crisis-calm", Target: 1, Metric: func(p domain.Progress) int { return boolInt(p.UsedCrisisMode) }},
	{ID: "social-star", Target: 5, Metric: func(p domain.Progress) int { return p.SocialActionsCompleted }},
	{ID: "body-mover", Target: 5, Metric: func(p domain.Progress) int { return p.BodyActionsCompleted }},
	{ID: "points-100", Target: 100, Metric: func(p domain.Progress) int { return p.TotalPoints }},
	{ID: "points-500", Target: 500, Metric: func(p domain.Progress) int { return p.TotalPoints }},
	{ID: "mindful-5", Target: 5, Metric: func(p domain.Progress) int { return p.MindfulActionsCompleted }},
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func ruleFor(id string) (badgeRule, bool) {
	for _, r := range badgeRules {
		if r.ID == id {
			return r, true
		}
	}
	return badgeRule{}, false
}

// evaluateBadges returns p's badge states with every locked badge whose
// predicate now holds flipped to unlocked. Unlocked badges are never touched.
func evaluateBadges(p domain.Progress) []domain.BadgeState {
	out := make([]domain.BadgeState, len(p.Badges))
	for i, b := range p.Badges {
		out[i] = b
		if b.Unlocked {
			continue
		}
		if r, ok := ruleFor(b.ID); ok && r.met(p) {
			out[i].Unlocked = true
		}
	}
	return out
}

// NewlyUnlocked returns the catalog definitions of badges unlocked in after
// but not in before, in catalog order.
func NewlyUnlocked(before, after domain.Progress) []domain.BadgeDef {
	var defs []domain.BadgeDef
	for _, b := range after.Badges {
		if !b.Unlocked || before.IsUnlocked(b.ID) {
			continue
		}
		def, err := catalog.Badge(b.ID)
		if err != nil {
			continue
		}
		defs = append(defs, def)
	}
	return defs
}

// BadgeProgress is how far p is from one badge.
type BadgeProgress struct {
	Badge    domain.BadgeDef `json:"badge"`
	Unlocked bool            `json:"unlocked"`
	Current  int             `json:"current"`
	Target   int             `json:"target"`
}

// Progressions reports every catalog badge with its counter and threshold.
// Current is capped at Target; an unlocked badge whose counter has since
// dropped, like a broken streak, still reports Target.
func Progressions(p domain.Progress) []BadgeProgress {
	out := make([]BadgeProgress, 0, len(catalog.Badges))
	for _, def := range catalog.Badges {
		r, ok := ruleFor(def.ID)
		if !ok {
			continue
		}
		bp := BadgeProgress{
			Badge:    def,
			Unlocked: p.IsUnlocked(def.ID),
			Current:  min(r.Metric(p), r.Target),
			Target:   r.Target,
		}
		if bp.Unlocked {
			bp.Current = r.Target
		}
		out = append(out, bp)
	}
	return out
}
