package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

type createScorecardRequest struct {
	AttendeeID sharedtypes.AttendeeID `json:"attendee_id"`
	CourseID   sharedtypes.CourseID   `json:"course_id"`
	Tee        sharedtypes.TeeColor   `json:"tee"`
}

// CreateScorecard finds or creates the caller's scorecard for a round.
func (h *Handlers) CreateScorecard(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	var req createScorecardRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if req.Tee == "" {
		req.Tee = sharedtypes.TeeWhite
	}

	scorecard, err := h.scorecards.GetOrCreateScorecard(r.Context(), roundID, req.AttendeeID, req.CourseID, req.Tee)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scorecard)
}

// GetScorecard returns a scorecard by id.
func (h *Handlers) GetScorecard(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}

	scorecard, err := h.scorecards.GetScorecard(r.Context(), scorecardID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scorecard)
}

// ListHoleScores returns the scorecard's hole ledger.
func (h *Handlers) ListHoleScores(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}

	scores, err := h.scorecards.ListHoleScores(r.Context(), scorecardID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scores)
}

type recordStrokesRequest struct {
	Strokes int `json:"strokes"`
}

// RecordStrokes writes one hole's stroke count and returns the updated totals.
func (h *Handlers) RecordStrokes(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}
	holeID, ok := h.holeIDParam(w, r)
	if !ok {
		return
	}

	var req recordStrokesRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.scorecards.RecordHoleStrokes(r.Context(), scorecardID, holeID, req.Strokes)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type recordPuttsRequest struct {
	Putts int `json:"putts"`
}

// RecordPutts writes one hole's putt count.
func (h *Handlers) RecordPutts(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}
	holeID, ok := h.holeIDParam(w, r)
	if !ok {
		return
	}

	var req recordPuttsRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.scorecards.RecordHolePutts(r.Context(), scorecardID, holeID, req.Putts); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearHoleScore removes one hole's strokes and returns the updated totals.
func (h *Handlers) ClearHoleScore(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}
	holeID, ok := h.holeIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.scorecards.ClearHoleScore(r.Context(), scorecardID, holeID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

type changeTeeRequest struct {
	Tee sharedtypes.TeeColor `json:"tee"`
}

// ChangeTee switches the scorecard's tee selection.
func (h *Handlers) ChangeTee(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}

	var req changeTeeRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.scorecards.ChangeTee(r.Context(), scorecardID, req.Tee); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type holeNotesRequest struct {
	Notes string `json:"notes"`
}

// UpdateHoleNotes attaches notes to a hole.
func (h *Handlers) UpdateHoleNotes(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}
	holeID, ok := h.holeIDParam(w, r)
	if !ok {
		return
	}

	var req holeNotesRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.scorecards.UpdateHoleNotes(r.Context(), scorecardID, holeID, req.Notes); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type holePhotoRequest struct {
	PhotoURL string `json:"photo_url"`
}

// AttachHolePhoto stores a photo URL against a hole.
func (h *Handlers) AttachHolePhoto(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}
	holeID, ok := h.holeIDParam(w, r)
	if !ok {
		return
	}

	var req holePhotoRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.scorecards.AttachHolePhoto(r.Context(), scorecardID, holeID, req.PhotoURL); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteScorecard closes out a finished card.
func (h *Handlers) CompleteScorecard(w http.ResponseWriter, r *http.Request) {
	scorecardID, ok := h.scorecardIDParam(w, r)
	if !ok {
		return
	}

	scorecard, err := h.scorecards.CompleteScorecard(r.Context(), scorecardID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, scorecard)
}

func (h *Handlers) scorecardIDParam(w http.ResponseWriter, r *http.Request) (sharedtypes.ScorecardID, bool) {
	var id sharedtypes.ScorecardID
	if err := id.UnmarshalText([]byte(chi.URLParam(r, "scorecardID"))); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid scorecard id"})
		return id, false
	}
	return id, true
}

func (h *Handlers) holeIDParam(w http.ResponseWriter, r *http.Request) (sharedtypes.HoleID, bool) {
	var id sharedtypes.HoleID
	if err := id.UnmarshalText([]byte(chi.URLParam(r, "holeID"))); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid hole id"})
		return id, false
	}
	return id, true
}

func (h *Handlers) roundIDParam(w http.ResponseWriter, r *http.Request) (sharedtypes.RoundID, bool) {
	var id sharedtypes.RoundID
	if err := id.UnmarshalText([]byte(chi.URLParam(r, "roundID"))); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid round id"})
		return id, false
	}
	return id, true
}
