package domain

// ─── Content Catalog Types ──────────────────────────────────────────────────
// Read-only display content. The progression engine only ever reads
// ids, points and categories off these.

// Emotion is one wedge of the emotion wheel.
type Emotion struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	SubEmotions []string `json:"subEmotions"`
}

// IntensityBand selects which micro-action list applies.
type IntensityBand string

const (
	BandLow    IntensityBand = "low"
	BandMedium IntensityBand = "medium"
	BandHigh   IntensityBand = "high"
)

// MicroAction is a suggested coping action.
type MicroAction struct {
	ID            string         `json:"id"`
	Text          string         `json:"text"`
	Category      ActionCategory `json:"category"`
	TimeMinutes   int            `json:"timeMinutes"`
	Points        int            `json:"points"`
	CulturalNote  string         `json:"culturalNote,omitempty"`
	ResearchBasis string         `json:"researchBasis,omitempty"`
}

// Completed projects the action onto the fields the engine consumes.
func (a MicroAction) Completed() CompletedAction {
	return CompletedAction{ID: a.ID, Points: a.Points, Category: a.Category}
}

// BadgeDef is the static description of a badge.
type BadgeDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
}

// IntensityOption describes one labelled intensity level.
type IntensityOption struct {
	Level       int           `json:"level"`
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Band        IntensityBand `json:"band"`
	IsCrisis    bool          `json:"isCrisis"`
}

// ContextTag describes what a feeling is about.
type ContextTag struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// SupportGroupType classifies a support group.
type SupportGroupType string

const (
	GroupCommunity SupportGroupType = "community"
	GroupPeer      SupportGroupType = "peer"
	GroupCultural  SupportGroupType = "cultural"
	GroupYouth     SupportGroupType = "youth"
	GroupOnline    SupportGroupType = "online"
)

// Helpline is a crisis phone/text/chat service.
type Helpline struct {
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	SMS    string `json:"sms,omitempty"`
	Chat   string `json:"chat,omitempty"`
}

// SupportGroup is a longer-term support resource.
type SupportGroup struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	URL         string           `json:"url,omitempty"`
	Type        SupportGroupType `json:"type"`
}

// RegionResources is the crisis directory entry for one locale.
type RegionResources struct {
	ID            string         `json:"id"`
	Label         string         `json:"label"`
	Flag          string         `json:"flag"`
	Helplines     []Helpline     `json:"helplines"`
	SupportGroups []SupportGroup `json:"supportGroups"`
}
