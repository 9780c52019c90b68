package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

// badgeView joins a catalog badge with its runtime state.
type badgeView struct {
	domain.BadgeDef
	Unlocked bool `json:"unlocked"`
}

func (s *Server) handleBadges(w http.ResponseWriter, r *http.Request) {
	p := s.tracker.Current()
	out := make([]badgeView, 0, len(catalog.Badges))
	for _, b := range catalog.Badges {
		out = append(out, badgeView{BadgeDef: b, Unlocked: p.IsUnlocked(b.ID)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEmotions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"emotions":         catalog.Emotions,
		"intensityOptions": catalog.IntensityOptions,
		"crisisThreshold":  catalog.CrisisThreshold,
	})
}

// handleActions suggests actions for an emotion. ?all=true returns the
// whole band instead of a shuffled selection.
func (s *Server) handleActions(w http.ResponseWriter, r *http.Request) {
	emotion, err := catalog.Emotion(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	intensity := 3
	if v := r.URL.Query().Get("intensity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "intensity must be an integer")
			return
		}
		intensity = n
	}

	var actions []domain.MicroAction
	if r.URL.Query().Get("all") == "true" {
		actions = catalog.ActionsFor(emotion.ID, intensity)
	} else {
		actions = catalog.SuggestActions(emotion.ID, intensity, nil)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"emotion": emotion.ID,
		"band":    catalog.IntensityBand(intensity),
		"actions": actions,
	})
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.ContextTags)
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	type regionSummary struct {
		ID    string `json:"id"`
		Label string `json:"label"`
		Flag  string `json:"flag"`
	}
	out := make([]regionSummary, 0, len(catalog.Regions))
	for _, rg := range catalog.Regions {
		out = append(out, regionSummary{ID: rg.ID, Label: rg.Label, Flag: rg.Flag})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRegionResources(w http.ResponseWriter, r *http.Request) {
	rg, err := catalog.Region(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, rg)
}
