package handlers

import (
	"net/http"

	roundservice "github.com/fairway-crew/tripbot/app/modules/round/application"
	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

type createRoundRequest struct {
	TripDay   int                  `json:"trip_day"`
	Name      string               `json:"name"`
	CourseID  sharedtypes.CourseID `json:"course_id"`
	TeeTime   string               `json:"tee_time"`
	DressCode string               `json:"dress_code"`
	Notes     string               `json:"notes"`
}

// CreateRound adds an itinerary entry.
func (h *Handlers) CreateRound(w http.ResponseWriter, r *http.Request) {
	var req createRoundRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	round, err := h.rounds.CreateRound(r.Context(), roundservice.CreateRoundParams{
		TripDay:      req.TripDay,
		Name:         req.Name,
		CourseID:     req.CourseID,
		TeeTimeInput: req.TeeTime,
		DressCode:    req.DressCode,
		Notes:        req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, round)
}

// GetItinerary lists the trip's rounds in day order.
func (h *Handlers) GetItinerary(w http.ResponseWriter, r *http.Request) {
	rounds, err := h.rounds.Itinerary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rounds)
}

// GetRound returns one itinerary entry.
func (h *Handlers) GetRound(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	round, err := h.rounds.GetRound(r.Context(), roundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

type rescheduleRequest struct {
	TeeTime string `json:"tee_time"`
}

// RescheduleTeeTime moves a round's tee time.
func (h *Handlers) RescheduleTeeTime(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	var req rescheduleRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	round, err := h.rounds.RescheduleTeeTime(r.Context(), roundID, req.TeeTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, round)
}

type setPairingsRequest struct {
	Groups [][]sharedtypes.AttendeeID `json:"groups"`
}

// SetPairings replaces the round's tee groups.
func (h *Handlers) SetPairings(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	var req setPairingsRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if err := h.rounds.SetPairings(r.Context(), roundID, req.Groups); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPairings returns the round's tee groups.
func (h *Handlers) ListPairings(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	pairings, err := h.rounds.ListPairings(r.Context(), roundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, pairings)
}
