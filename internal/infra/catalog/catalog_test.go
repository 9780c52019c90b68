package catalog

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/bhava-app/bhava/internal/domain"
)

func TestCatalogShape(t *testing.T) {
	if len(Emotions) != 6 {
		t.Errorf("emotions = %d, want 6", len(Emotions))
	}
	if len(Badges) != 12 {
		t.Errorf("badges = %d, want 12", len(Badges))
	}
	if len(ContextTags) != 14 {
		t.Errorf("context tags = %d, want 14", len(ContextTags))
	}
	if len(Regions) != 10 {
		t.Errorf("regions = %d, want 10", len(Regions))
	}
}

func TestMicroActions_EveryEmotionAndBand(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range Emotions {
		bands, ok := MicroActions[e.ID]
		if !ok {
			t.Errorf("no actions for %s", e.ID)
			continue
		}
		for _, band := range []domain.IntensityBand{domain.BandLow, domain.BandMedium, domain.BandHigh} {
			actions := bands[band]
			if len(actions) < 3 {
				t.Errorf("%s/%s has %d actions, want at least 3", e.ID, band, len(actions))
			}
			for _, a := range actions {
				if seen[a.ID] {
					t.Errorf("duplicate action id %s", a.ID)
				}
				seen[a.ID] = true
				if a.Points <= 0 {
					t.Errorf("action %s has no points", a.ID)
				}
				if _, ok := CategoryIcons[a.Category]; !ok {
					t.Errorf("action %s has unknown category %q", a.ID, a.Category)
				}
			}
		}
	}
}

func TestIntensityBand(t *testing.T) {
	tests := []struct {
		level int
		want  domain.IntensityBand
	}{
		{1, domain.BandLow},
		{2, domain.BandLow},
		{3, domain.BandMedium},
		{4, domain.BandHigh},
		{5, domain.BandHigh},
		{0, domain.BandMedium},
		{8, domain.BandMedium},
	}
	for _, tt := range tests {
		if got := IntensityBand(tt.level); got != tt.want {
			t.Errorf("IntensityBand(%d) = %s, want %s", tt.level, got, tt.want)
		}
	}
}

func TestIsCrisisIntensity(t *testing.T) {
	if IsCrisisIntensity(6) {
		t.Error("6 should not be crisis")
	}
	if !IsCrisisIntensity(7) || !IsCrisisIntensity(10) {
		t.Error("7 and above should be crisis")
	}
}

func TestSuggestActions(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	all := ActionsFor("sadness", 3)

	got := SuggestActions("sadness", 3, rng)
	if len(got) != min(5, len(all)) {
		t.Fatalf("got %d suggestions, want %d", len(got), min(5, len(all)))
	}
	for _, a := range got {
		if _, err := Action(a.ID); err != nil {
			t.Errorf("suggested unknown action %s", a.ID)
		}
	}
	if len(all) > 0 && &all[0] == &got[0] {
		t.Error("suggestions should not alias the catalog")
	}

	if got := SuggestActions("nope", 3, nil); len(got) != 0 {
		t.Errorf("unknown emotion should suggest nothing, got %d", len(got))
	}
}

func TestLookups(t *testing.T) {
	if e, err := Emotion("fear"); err != nil || e.Label != "Anxious" {
		t.Errorf("Emotion(fear) = %+v, %v", e, err)
	}
	if _, err := Emotion("bliss"); !errors.Is(err, domain.ErrUnknownEmotion) {
		t.Errorf("Emotion(bliss) error = %v", err)
	}
	if a, err := Action("j1"); err != nil || a.Points != 10 || a.Category != domain.CategoryMindful {
		t.Errorf("Action(j1) = %+v, %v", a, err)
	}
	if _, err := Action("zz"); !errors.Is(err, domain.ErrUnknownAction) {
		t.Errorf("Action(zz) error = %v", err)
	}
	if b, err := Badge("points-500"); err != nil || b.Name != "High Scorer" {
		t.Errorf("Badge(points-500) = %+v, %v", b, err)
	}
	if _, err := Badge("x"); !errors.Is(err, domain.ErrUnknownBadge) {
		t.Errorf("Badge(x) error = %v", err)
	}
	if _, err := ContextTag("exams"); err != nil {
		t.Errorf("ContextTag(exams) error = %v", err)
	}
	if _, err := ContextTag("weather"); !errors.Is(err, domain.ErrUnknownTag) {
		t.Errorf("ContextTag(weather) error = %v", err)
	}
	if r, err := Region("global"); err != nil || len(r.Helplines) == 0 {
		t.Errorf("Region(global) = %+v, %v", r, err)
	}
	if _, err := Region("mars"); !errors.Is(err, domain.ErrUnknownRegion) {
		t.Errorf("Region(mars) error = %v", err)
	}
}

func TestCheckInInput_Resolve(t *testing.T) {
	req, err := CheckInInput{
		EmotionID:   "joy",
		Intensity:   2,
		ActionIDs:   []string{"j1", "j2"},
		ContextTags: []string{"school"},
		JournalNote: "ok",
	}.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if req.SubEmotion != "Happy" {
		t.Errorf("empty sub-emotion should default to the label, got %q", req.SubEmotion)
	}
	if len(req.Actions) != 2 || req.Actions[1] != (domain.CompletedAction{ID: "j2", Points: 15, Category: domain.CategorySocial}) {
		t.Errorf("unexpected actions: %+v", req.Actions)
	}

	tests := []struct {
		name string
		in   CheckInInput
		want error
	}{
		{"emotion", CheckInInput{EmotionID: "bliss"}, domain.ErrUnknownEmotion},
		{"action", CheckInInput{EmotionID: "joy", ActionIDs: []string{"j1", "nope"}}, domain.ErrUnknownAction},
		{"tag", CheckInInput{EmotionID: "joy", ContextTags: []string{"weather"}}, domain.ErrUnknownTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.in.Resolve(); !errors.Is(err, tt.want) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.want)
			}
		})
	}
}
