package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/bhava-app/bhava/internal/app/progress"
	"github.com/bhava-app/bhava/internal/domain"
	"github.com/bhava-app/bhava/internal/infra/catalog"
)

// checkInRequest is the POST /api/checkins body.
type checkInRequest struct {
	EmotionID      string   `json:"emotionId" validate:"required"`
	SubEmotion     string   `json:"subEmotion" validate:"max=200"`
	Intensity      int      `json:"intensity" validate:"min=1,max=10"`
	Actions        []string `json:"actions" validate:"max=20,dive,required"`
	UsedCrisisMode bool     `json:"usedCrisisMode"`
	ContextTags    []string `json:"contextTags" validate:"max=14,dive,required"`
	JournalNote    string   `json:"journalNote" validate:"max=500"`
}

// crisisRequest is the POST /api/crisis body.
type crisisRequest struct {
	EmotionID  string `json:"emotionId" validate:"required"`
	SubEmotion string `json:"subEmotion" validate:"max=200"`
	Intensity  int    `json:"intensity" validate:"min=1,max=10"`
}

// regionRequest is the PUT /api/region body. An empty region clears it.
type regionRequest struct {
	Region string `json:"region"`
}

// checkInResponse wraps a check-in result with crisis guidance.
type checkInResponse struct {
	progress.Result
	ShowCrisis bool `json:"showCrisis"`
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.Current())
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, progress.Summarize(s.tracker.Current()))
}

func (s *Server) handleCheckIn(w http.ResponseWriter, r *http.Request) {
	var req checkInRequest
	if !s.decode(w, r, &req) {
		return
	}

	in, err := catalog.CheckInInput{
		EmotionID:      req.EmotionID,
		SubEmotion:     req.SubEmotion,
		Intensity:      req.Intensity,
		ActionIDs:      req.Actions,
		UsedCrisisMode: req.UsedCrisisMode,
		ContextTags:    req.ContextTags,
		JournalNote:    req.JournalNote,
	}.Resolve()
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, checkInResponse{
		Result:     s.tracker.CheckIn(in),
		ShowCrisis: catalog.IsCrisisIntensity(req.Intensity),
	})
}

func (s *Server) handleCrisis(w http.ResponseWriter, r *http.Request) {
	var req crisisRequest
	if !s.decode(w, r, &req) {
		return
	}
	emotion, err := catalog.Emotion(req.EmotionID)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	sub := req.SubEmotion
	if sub == "" {
		sub = emotion.Label
	}
	writeJSON(w, http.StatusCreated, s.tracker.CompleteCrisis(emotion.ID, sub, req.Intensity))
}

func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	var req regionRequest
	if !s.decode(w, r, &req) {
		return
	}
	p, err := s.tracker.SetRegion(req.Region)
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		writeError(w, http.StatusServiceUnavailable, domain.ErrSyncDisabled.Error())
		return
	}
	stats, err := s.stats(r.Context())
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// decode reads and validates a JSON body, writing a 400 on failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, http.StatusBadRequest, "invalid "+verrs[0].Field()+": failed "+verrs[0].Tag())
			return false
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// statusFor maps catalog lookup failures to 404/400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownEmotion),
		errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrUnknownTag),
		errors.Is(err, domain.ErrUnknownRegion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
