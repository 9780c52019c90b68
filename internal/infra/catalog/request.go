package catalog

import "github.com/bhava-app/bhava/internal/domain"

// CheckInInput is a check-in as a view collects it: catalog ids only.
type CheckInInput struct {
	EmotionID      string
	SubEmotion     string
	Intensity      int
	ActionIDs      []string
	UsedCrisisMode bool
	ContextTags    []string
	JournalNote    string
}

// Resolve checks every id against the catalog and returns the request the
// progress engine consumes. An empty sub-emotion defaults to the emotion's
// label.
func (in CheckInInput) Resolve() (domain.CheckInRequest, error) {
	emotion, err := Emotion(in.EmotionID)
	if err != nil {
		return domain.CheckInRequest{}, err
	}

	actions := make([]domain.CompletedAction, 0, len(in.ActionIDs))
	for _, id := range in.ActionIDs {
		a, err := Action(id)
		if err != nil {
			return domain.CheckInRequest{}, err
		}
		actions = append(actions, a.Completed())
	}

	for _, id := range in.ContextTags {
		if _, err := ContextTag(id); err != nil {
			return domain.CheckInRequest{}, err
		}
	}

	sub := in.SubEmotion
	if sub == "" {
		sub = emotion.Label
	}

	return domain.CheckInRequest{
		EmotionID:      emotion.ID,
		SubEmotion:     sub,
		Intensity:      in.Intensity,
		Actions:        actions,
		UsedCrisisMode: in.UsedCrisisMode,
		ContextTags:    in.ContextTags,
		JournalNote:    in.JournalNote,
	}, nil
}
