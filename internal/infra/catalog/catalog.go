// Package catalog provides the built-in content bhava ships with:
// the emotion wheel, micro-actions per intensity band, the badge list,
// intensity options, context tags and the crisis-resource directory.
// Everything here is static display data; the progression engine only
// reads ids, points and categories from it.
package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/bhava-app/bhava/internal/domain"
)

// CrisisThreshold is the slider level (1–10) at which crisis tools are offered.
const CrisisThreshold = 7

// Emotions is the emotion wheel, based on Plutchik's wheel and adapted for
// teen, young adult and immigrant audiences.
var Emotions = []domain.Emotion{
	{ID: "joy", Label: "Happy", Color: "#FFD166", Icon: "Sun",
		SubEmotions: []string{"excited", "grateful", "proud", "peaceful", "hopeful", "loved"}},
	{ID: "sadness", Label: "Sad", Color: "#118AB2", Icon: "CloudRain",
		SubEmotions: []string{"lonely", "disappointed", "grief", "empty", "homesick", "lost"}},
	{ID: "anger", Label: "Angry", Color: "#EF476F", Icon: "Flame",
		SubEmotions: []string{"frustrated", "annoyed", "resentful", "overwhelmed", "misunderstood", "disrespected"}},
	{ID: "fear", Label: "Anxious", Color: "#06D6A0", Icon: "Wind",
		SubEmotions: []string{"worried", "nervous", "panicked", "insecure", "uncertain", "pressured"}},
	{ID: "surprise", Label: "Confused", Color: "#FF6B35", Icon: "Zap",
		SubEmotions: []string{"shocked", "overwhelmed", "disoriented", "culture-shocked", "out-of-place", "unsure"}},
	{ID: "calm", Label: "Calm", Color: "#A78BFA", Icon: "Leaf",
		SubEmotions: []string{"content", "relaxed", "balanced", "grounded", "safe", "present"}},
}

// IntensityOptions are the labelled levels of the intensity picker.
var IntensityOptions = []domain.IntensityOption{
	{Level: 1, Label: "A whisper", Description: "Barely there, just a hint", Band: domain.BandLow},
	{Level: 2, Label: "Noticeable", Description: "I can feel it, but it's manageable", Band: domain.BandLow},
	{Level: 3, Label: "Strong", Description: "Hard to ignore, taking up space", Band: domain.BandMedium},
	{Level: 4, Label: "Intense", Description: "Really powerful, I need to do something", Band: domain.BandHigh, IsCrisis: true},
	{Level: 5, Label: "Overwhelming", Description: "It's all I can think about right now", Band: domain.BandHigh, IsCrisis: true},
}

// CategoryIcons maps action categories to their icon names.
var CategoryIcons = map[domain.ActionCategory]string{
	domain.CategoryBody:     "Dumbbell",
	domain.CategorySocial:   "Heart",
	domain.CategoryCreative: "Palette",
	domain.CategoryMindful:  "Brain",
	domain.CategoryFun:      "Sparkles",
}

// Emotion finds an emotion by id.
func Emotion(id string) (domain.Emotion, error) {
	for _, e := range Emotions {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Emotion{}, fmt.Errorf("%w: %q", domain.ErrUnknownEmotion, id)
}

// IntensityBand maps an intensity level to its action band.
// Levels without a labelled option fall back to medium.
func IntensityBand(level int) domain.IntensityBand {
	for _, o := range IntensityOptions {
		if o.Level == level {
			return o.Band
		}
	}
	return domain.BandMedium
}

// IsCrisisIntensity reports whether a slider level should surface crisis tools.
func IsCrisisIntensity(level int) bool {
	return level >= CrisisThreshold
}

// ActionsFor returns the full action list for an emotion at a given intensity.
func ActionsFor(emotionID string, intensity int) []domain.MicroAction {
	return MicroActions[emotionID][IntensityBand(intensity)]
}

// SuggestActions shuffles the actions for an emotion/intensity and returns
// between 3 and 5 of them (fewer only if the band itself has fewer).
// A nil rng uses the package-level source.
func SuggestActions(emotionID string, intensity int, rng *rand.Rand) []domain.MicroAction {
	actions := append([]domain.MicroAction(nil), ActionsFor(emotionID, intensity)...)
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(actions), func(i, j int) { actions[i], actions[j] = actions[j], actions[i] })
	return actions[:min(5, len(actions))]
}

// Action finds a micro-action by id across every emotion and band.
func Action(id string) (domain.MicroAction, error) {
	for _, bands := range MicroActions {
		for _, actions := range bands {
			for _, a := range actions {
				if a.ID == id {
					return a, nil
				}
			}
		}
	}
	return domain.MicroAction{}, fmt.Errorf("%w: %q", domain.ErrUnknownAction, id)
}

// Badge finds a badge definition by id.
func Badge(id string) (domain.BadgeDef, error) {
	for _, b := range Badges {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.BadgeDef{}, fmt.Errorf("%w: %q", domain.ErrUnknownBadge, id)
}

// ContextTag finds a context tag by id.
func ContextTag(id string) (domain.ContextTag, error) {
	for _, t := range ContextTags {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.ContextTag{}, fmt.Errorf("%w: %q", domain.ErrUnknownTag, id)
}

// Region finds a crisis-resource region by id.
func Region(id string) (domain.RegionResources, error) {
	for _, r := range Regions {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.RegionResources{}, fmt.Errorf("%w: %q", domain.ErrUnknownRegion, id)
}
