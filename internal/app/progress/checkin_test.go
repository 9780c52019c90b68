package progress_test

import (
	"slices"
	"testing"
	"time"

	"github.com/bhava-app/bhava/internal/app/progress"
	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

var day0 = time.Date(2025, 7, 1, 9, 30, 0, 0, time.UTC)

func act(id string, points int, cat domain.ActionCategory) domain.CompletedAction {
	return domain.CompletedAction{ID: id, Points: points, Category: cat}
}

func checkIn(p domain.Progress, emotion string, at time.Time, actions ...domain.CompletedAction) domain.Progress {
	return progress.ProcessCheckIn(p, domain.CheckInRequest{
		EmotionID:  emotion,
		SubEmotion: "test",
		Intensity:  2,
		Actions:    actions,
	}, at, time.UTC)
}

// ═══════════════════════════════════════════════════════════════════════════
// Default Aggregate
// ═══════════════════════════════════════════════════════════════════════════

func TestDefault_AllBadgesLocked(t *testing.T) {
	p := progress.Default()
	if p.TotalPoints != 0 || p.CurrentStreak != 0 || p.LongestStreak != 0 {
		t.Errorf("expected zero counters, got %+v", p)
	}
	if len(p.CheckIns) != 0 {
		t.Errorf("expected no check-ins, got %d", len(p.CheckIns))
	}
	if p.LastCheckInDate != nil {
		t.Error("expected no last check-in date")
	}
	if len(p.Badges) != len(catalog.Badges) {
		t.Fatalf("expected %d badges, got %d", len(catalog.Badges), len(p.Badges))
	}
	for i, b := range p.Badges {
		if b.ID != catalog.Badges[i].ID {
			t.Errorf("badge %d: expected %s, got %s", i, catalog.Badges[i].ID, b.ID)
		}
		if b.Unlocked {
			t.Errorf("badge %s should be locked", b.ID)
		}
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Check-In Transition
// ═══════════════════════════════════════════════════════════════════════════

func TestProcessCheckIn_FirstCheckIn(t *testing.T) {
	p := progress.ProcessCheckIn(progress.Default(), domain.CheckInRequest{
		EmotionID:  "joy",
		SubEmotion: "excited",
		Intensity:  2,
		Actions:    []domain.CompletedAction{act("j1", 10, domain.CategoryMindful)},
	}, day0, time.UTC)

	if p.TotalPoints != 10 {
		t.Errorf("expected 10 points, got %d", p.TotalPoints)
	}
	if p.CurrentStreak != 1 || p.LongestStreak != 1 {
		t.Errorf("expected streak 1/1, got %d/%d", p.CurrentStreak, p.LongestStreak)
	}
	if len(p.CheckIns) != 1 {
		t.Fatalf("expected 1 check-in, got %d", len(p.CheckIns))
	}
	for _, b := range p.Badges {
		want := b.ID == "first-check"
		if b.Unlocked != want {
			t.Errorf("badge %s: unlocked=%v, want %v", b.ID, b.Unlocked, want)
		}
	}

	c := p.CheckIns[0]
	if c.Date != "2025-07-01" {
		t.Errorf("expected date 2025-07-01, got %s", c.Date)
	}
	if c.EmotionID != "joy" || c.SubEmotion != "excited" || c.Intensity != 2 {
		t.Errorf("unexpected record: %+v", c)
	}
	if !slices.Equal(c.ActionsCompleted, []string{"j1"}) {
		t.Errorf("expected [j1], got %v", c.ActionsCompleted)
	}
	if c.PointsEarned != 10 {
		t.Errorf("expected 10 points earned, got %d", c.PointsEarned)
	}
	if p.MindfulActionsCompleted != 1 || p.TotalActionsCompleted != 1 {
		t.Errorf("expected 1 mindful/1 total, got %d/%d", p.MindfulActionsCompleted, p.TotalActionsCompleted)
	}
}

func TestProcessCheckIn_DoesNotMutateInput(t *testing.T) {
	before := checkIn(progress.Default(), "joy", day0, act("a", 5, domain.CategoryBody))
	snapshot := before.Clone()

	_ = checkIn(before, "anger", day0.Add(time.Hour), act("b", 7, domain.CategorySocial))

	if before.TotalPoints != snapshot.TotalPoints || len(before.CheckIns) != len(snapshot.CheckIns) {
		t.Error("input aggregate was modified")
	}
	if len(before.UniqueEmotions) != 1 {
		t.Errorf("input emotions modified: %v", before.UniqueEmotions)
	}
	if before.SocialActionsCompleted != 0 {
		t.Error("input counters modified")
	}
}

func TestProcessCheckIn_PointsConservation(t *testing.T) {
	p := progress.Default()
	want := 0
	for i := range 8 {
		actions := []domain.CompletedAction{
			act("a", i*3, domain.CategoryCreative),
			act("b", 4, domain.CategoryFun),
		}
		want += i*3 + 4
		p = checkIn(p, "calm", day0.AddDate(0, 0, i/2), actions...)
	}

	if p.TotalPoints != want {
		t.Errorf("expected %d points, got %d", want, p.TotalPoints)
	}
	sum, actions := 0, 0
	for _, c := range p.CheckIns {
		sum += c.PointsEarned
		actions += len(c.ActionsCompleted)
	}
	if sum != p.TotalPoints {
		t.Errorf("record sum %d != total %d", sum, p.TotalPoints)
	}
	if actions != p.TotalActionsCompleted {
		t.Errorf("record actions %d != total %d", actions, p.TotalActionsCompleted)
	}
}

func TestProcessCheckIn_CategoryCounters(t *testing.T) {
	p := checkIn(progress.Default(), "joy", day0,
		act("a", 1, domain.CategoryBody),
		act("b", 1, domain.CategoryBody),
		act("c", 1, domain.CategorySocial),
		act("d", 1, domain.CategoryMindful),
		act("e", 1, domain.CategoryCreative),
		act("f", 1, domain.CategoryFun),
	)

	if p.BodyActionsCompleted != 2 {
		t.Errorf("body: expected 2, got %d", p.BodyActionsCompleted)
	}
	if p.SocialActionsCompleted != 1 || p.MindfulActionsCompleted != 1 {
		t.Errorf("social/mindful: expected 1/1, got %d/%d", p.SocialActionsCompleted, p.MindfulActionsCompleted)
	}
	// creative and fun have no dedicated counter
	if p.TotalActionsCompleted != 6 {
		t.Errorf("total: expected 6, got %d", p.TotalActionsCompleted)
	}
}

func TestProcessCheckIn_EmptyActions(t *testing.T) {
	p := checkIn(progress.Default(), "sadness", day0)
	if p.TotalPoints != 0 || p.TotalActionsCompleted != 0 {
		t.Errorf("expected zero totals, got %+v", p)
	}
	if p.CheckIns[0].ActionsCompleted == nil {
		t.Error("expected empty, non-nil action list")
	}
	if !p.IsUnlocked("first-check") {
		t.Error("first-check should unlock without actions")
	}
}

func TestProcessCheckIn_CrisisSticky(t *testing.T) {
	p := progress.ProcessCheckIn(progress.Default(), domain.CheckInRequest{
		EmotionID:      "fear",
		Intensity:      9,
		Actions:        []domain.CompletedAction{progress.CrisisAction},
		UsedCrisisMode: true,
	}, day0, time.UTC)

	if !p.UsedCrisisMode || !p.IsUnlocked("crisis-calm") {
		t.Fatal("expected crisis mode and crisis-calm")
	}
	if p.TotalPoints != 25 || p.MindfulActionsCompleted != 1 {
		t.Errorf("crisis action: expected 25 points/1 mindful, got %d/%d", p.TotalPoints, p.MindfulActionsCompleted)
	}

	p = checkIn(p, "calm", day0.Add(time.Hour))
	if !p.UsedCrisisMode {
		t.Error("crisis flag should stay set")
	}
	if p.CheckIns[1].UsedCrisisMode {
		t.Error("second record should not be flagged")
	}
}

func TestProcessCheckIn_RegionPassesThrough(t *testing.T) {
	p := progress.SetRegion(progress.Default(), "uk")
	p = checkIn(p, "joy", day0)
	if p.Region() != "uk" {
		t.Errorf("expected region uk, got %q", p.Region())
	}
}

func TestProcessCheckIn_CopiesContextTags(t *testing.T) {
	tags := []string{"school", "family"}
	p := progress.ProcessCheckIn(progress.Default(), domain.CheckInRequest{
		EmotionID:   "anger",
		ContextTags: tags,
		JournalNote: "long day",
	}, day0, time.UTC)
	tags[0] = "changed"

	c := p.CheckIns[0]
	if !slices.Equal(c.ContextTags, []string{"school", "family"}) {
		t.Errorf("tags aliased caller slice: %v", c.ContextTags)
	}
	if c.JournalNote != "long day" {
		t.Errorf("expected journal note, got %q", c.JournalNote)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Streaks
// ═══════════════════════════════════════════════════════════════════════════

func TestStreak_SameDayUnchanged(t *testing.T) {
	p := checkIn(progress.Default(), "joy", day0)
	p = checkIn(p, "joy", day0.Add(2*time.Hour))
	p = checkIn(p, "joy", time.Date(2025, 7, 1, 23, 59, 0, 0, time.UTC))

	if p.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", p.CurrentStreak)
	}
	if len(p.CheckIns) != 3 {
		t.Errorf("expected 3 records, got %d", len(p.CheckIns))
	}
}

func TestStreak_ConsecutiveDays(t *testing.T) {
	p := progress.Default()
	for i := range 7 {
		p = checkIn(p, "calm", day0.AddDate(0, 0, i))
		if p.CurrentStreak != i+1 {
			t.Fatalf("day %d: expected streak %d, got %d", i, i+1, p.CurrentStreak)
		}
		if p.LongestStreak != i+1 {
			t.Fatalf("day %d: expected longest %d, got %d", i, i+1, p.LongestStreak)
		}
	}
	if !p.IsUnlocked("streak-3") || !p.IsUnlocked("streak-7") {
		t.Error("expected streak badges unlocked")
	}
}

func TestStreak_MidnightBoundary(t *testing.T) {
	late := time.Date(2025, 7, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2025, 7, 2, 0, 1, 0, 0, time.UTC)

	p := checkIn(progress.Default(), "joy", late)
	p = checkIn(p, "joy", early)
	if p.CurrentStreak != 2 {
		t.Errorf("expected streak 2 across midnight, got %d", p.CurrentStreak)
	}
}

func TestStreak_NearlyTwoDaysResets(t *testing.T) {
	early := time.Date(2025, 7, 1, 0, 1, 0, 0, time.UTC)
	late := time.Date(2025, 7, 2, 23, 59, 0, 0, time.UTC)

	p := checkIn(progress.Default(), "joy", early)
	p = checkIn(p, "joy", late)
	if p.CurrentStreak != 2 {
		t.Errorf("next calendar day should extend, got %d", p.CurrentStreak)
	}

	p = checkIn(p, "joy", late.Add(25*time.Hour))
	if p.CurrentStreak != 1 {
		t.Errorf("two calendar days later should reset, got %d", p.CurrentStreak)
	}
}

func TestStreak_GapResetKeepsLongest(t *testing.T) {
	last := day0.AddDate(0, 0, -3)
	p := progress.Default()
	p.CurrentStreak = 5
	p.LongestStreak = 5
	p.LastCheckInDate = &last

	p = checkIn(p, "joy", day0)
	if p.CurrentStreak != 1 {
		t.Errorf("expected streak reset to 1, got %d", p.CurrentStreak)
	}
	if p.LongestStreak != 5 {
		t.Errorf("expected longest 5, got %d", p.LongestStreak)
	}
}

func TestStreak_BackdatedResets(t *testing.T) {
	last := day0.AddDate(0, 0, 2)
	p := progress.Default()
	p.CurrentStreak = 4
	p.LongestStreak = 4
	p.LastCheckInDate = &last

	p = checkIn(p, "joy", day0)
	if p.CurrentStreak != 1 {
		t.Errorf("expected reset to 1, got %d", p.CurrentStreak)
	}
}

func TestStreak_LocationDefinesDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 20:00 UTC on Jul 1 is 05:00 Jul 2 in Tokyo.
	first := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2025, 7, 1, 20, 0, 0, 0, time.UTC)

	req := domain.CheckInRequest{EmotionID: "joy"}
	utc := progress.ProcessCheckIn(progress.ProcessCheckIn(progress.Default(), req, first, time.UTC), req, second, time.UTC)
	jst := progress.ProcessCheckIn(progress.ProcessCheckIn(progress.Default(), req, first, tokyo), req, second, tokyo)

	if utc.CurrentStreak != 1 {
		t.Errorf("utc: expected same day, got streak %d", utc.CurrentStreak)
	}
	if jst.CurrentStreak != 2 {
		t.Errorf("jst: expected next day, got streak %d", jst.CurrentStreak)
	}
	if jst.CheckIns[1].Date != "2025-07-02" {
		t.Errorf("jst: expected local date 2025-07-02, got %s", jst.CheckIns[1].Date)
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Badges
// ═══════════════════════════════════════════════════════════════════════════

func TestBadges_ActionHeroThreshold(t *testing.T) {
	p := progress.Default()
	for i := range 9 {
		p = checkIn(p, "joy", day0.Add(time.Duration(i)*time.Minute), act("x", 0, domain.CategoryFun))
	}
	if p.IsUnlocked("action-hero") {
		t.Fatal("action-hero unlocked after 9 actions")
	}
	p = checkIn(p, "joy", day0.Add(time.Hour), act("x", 0, domain.CategoryFun))
	if !p.IsUnlocked("action-hero") {
		t.Error("action-hero should unlock at 10 actions")
	}
}

func TestBadges_AllEmotionsSaturate(t *testing.T) {
	ids := []string{"calm", "joy", "joy", "fear", "anger", "sadness", "calm", "surprise", "joy"}
	p := progress.Default()
	for i, id := range ids {
		p = checkIn(p, id, day0.Add(time.Duration(i)*time.Minute))
		if len(p.UniqueEmotions) > len(catalog.Emotions) {
			t.Fatalf("unique emotions exceeded catalog: %v", p.UniqueEmotions)
		}
	}
	if len(p.UniqueEmotions) != 6 {
		t.Errorf("expected 6 unique emotions, got %v", p.UniqueEmotions)
	}
	if !p.IsUnlocked("all-emotions") || !p.IsUnlocked("explorer") {
		t.Error("expected all-emotions and explorer unlocked")
	}
}

func TestBadges_Thresholds(t *testing.T) {
	tests := []struct {
		badge   string
		actions []domain.CompletedAction
		locked  []domain.CompletedAction
	}{
		{"social-star", repeat(act("s", 1, domain.CategorySocial), 5), repeat(act("s", 1, domain.CategorySocial), 4)},
		{"body-mover", repeat(act("b", 1, domain.CategoryBody), 5), repeat(act("b", 1, domain.CategoryBody), 4)},
		{"mindful-5", repeat(act("m", 1, domain.CategoryMindful), 5), repeat(act("m", 1, domain.CategoryMindful), 4)},
		{"points-100", []domain.CompletedAction{act("p", 100, domain.CategoryFun)}, []domain.CompletedAction{act("p", 99, domain.CategoryFun)}},
		{"points-500", []domain.CompletedAction{act("p", 500, domain.CategoryFun)}, []domain.CompletedAction{act("p", 499, domain.CategoryFun)}},
	}
	for _, tt := range tests {
		t.Run(tt.badge, func(t *testing.T) {
			if p := checkIn(progress.Default(), "joy", day0, tt.locked...); p.IsUnlocked(tt.badge) {
				t.Errorf("%s unlocked below threshold", tt.badge)
			}
			if p := checkIn(progress.Default(), "joy", day0, tt.actions...); !p.IsUnlocked(tt.badge) {
				t.Errorf("%s not unlocked at threshold", tt.badge)
			}
		})
	}
}

func TestBadges_Monotone(t *testing.T) {
	p := progress.Default()
	for i := range 7 {
		p = checkIn(p, "joy", day0.AddDate(0, 0, i), act("x", 20, domain.CategoryBody))
	}
	unlocked := map[string]bool{}
	for _, b := range p.Badges {
		if b.Unlocked {
			unlocked[b.ID] = true
		}
	}
	if !unlocked["streak-7"] {
		t.Fatal("expected streak-7 before the gap")
	}

	// a long gap resets the streak but not the badge
	p = checkIn(p, "joy", day0.AddDate(0, 1, 0))
	for id := range unlocked {
		if !p.IsUnlocked(id) {
			t.Errorf("badge %s reverted", id)
		}
	}
}

func TestNewlyUnlocked(t *testing.T) {
	before := checkIn(progress.Default(), "joy", day0)
	after := checkIn(before, "anger", day0.AddDate(0, 0, 1), act("p", 100, domain.CategoryBody))
	after = checkIn(after, "fear", day0.AddDate(0, 0, 1))

	got := progress.NewlyUnlocked(before, after)
	var ids []string
	for _, d := range got {
		ids = append(ids, d.ID)
	}
	if !slices.Equal(ids, []string{"explorer", "points-100"}) {
		t.Errorf("expected [explorer points-100], got %v", ids)
	}
	if got[0].Name != "Emotion Explorer" {
		t.Errorf("expected catalog definition, got %+v", got[0])
	}

	if again := progress.NewlyUnlocked(after, after); len(again) != 0 {
		t.Errorf("expected nothing new, got %v", again)
	}
}

func repeat(a domain.CompletedAction, n int) []domain.CompletedAction {
	out := make([]domain.CompletedAction, n)
	for i := range out {
		out[i] = a
	}
	return out
}

func TestProgressions(t *testing.T) {
	p := checkIn(progress.Default(), "joy", day0, act("a", 40, domain.CategorySocial), act("b", 30, domain.CategorySocial))
	got := progress.Progressions(p)
	if len(got) != len(catalog.Badges) {
		t.Fatalf("expected %d entries, got %d", len(catalog.Badges), len(got))
	}

	byID := map[string]progress.BadgeProgress{}
	for _, bp := range got {
		byID[bp.Badge.ID] = bp
	}
	if bp := byID["first-check"]; !bp.Unlocked || bp.Current != 1 || bp.Target != 1 {
		t.Errorf("first-check: %+v", bp)
	}
	if bp := byID["social-star"]; bp.Unlocked || bp.Current != 2 || bp.Target != 5 {
		t.Errorf("social-star: %+v", bp)
	}
	if bp := byID["points-100"]; bp.Current != 70 || bp.Target != 100 {
		t.Errorf("points-100: %+v", bp)
	}
	if bp := byID["crisis-calm"]; bp.Current != 0 || bp.Target != 1 {
		t.Errorf("crisis-calm: %+v", bp)
	}

	// a broken streak keeps its unlocked badge full
	for i := 1; i < 3; i++ {
		p = checkIn(p, "joy", day0.AddDate(0, 0, i))
	}
	p = checkIn(p, "joy", day0.AddDate(0, 0, 10))
	for _, bp := range progress.Progressions(p) {
		if bp.Badge.ID == "streak-3" && (!bp.Unlocked || bp.Current != 3) {
			t.Errorf("streak-3 after reset: %+v", bp)
		}
	}
}
