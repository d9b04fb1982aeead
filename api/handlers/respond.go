// Package handlers implements the HTTP API.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	attendeedb "github.com/fairway-crew/tripbot/app/modules/attendee/infrastructure/repositories"
	courseservice "github.com/fairway-crew/tripbot/app/modules/course/application"
	coursedb "github.com/fairway-crew/tripbot/app/modules/course/infrastructure/repositories"
	leaderboardservice "github.com/fairway-crew/tripbot/app/modules/leaderboard/application"
	roundservice "github.com/fairway-crew/tripbot/app/modules/round/application"
	rounddb "github.com/fairway-crew/tripbot/app/modules/round/infrastructure/repositories"
	scorecardservice "github.com/fairway-crew/tripbot/app/modules/scorecard/application"
	scorecarddb "github.com/fairway-crew/tripbot/app/modules/scorecard/infrastructure/repositories"
	"github.com/fairway-crew/tripbot/app/shared/attr"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps service errors onto HTTP statuses. Unrecognized errors become 500s
// with a generic body so internals never leak to the wifi.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, scorecarddb.ErrNotFound),
		errors.Is(err, coursedb.ErrCourseNotFound),
		errors.Is(err, coursedb.ErrHoleNotFound),
		errors.Is(err, rounddb.ErrRoundNotFound),
		errors.Is(err, rounddb.ErrNoRowsAffected),
		errors.Is(err, attendeedb.ErrAttendeeNotFound):
		status = http.StatusNotFound
		msg = "not found"
	case errors.Is(err, scorecardservice.ErrInvalidStrokes),
		errors.Is(err, scorecardservice.ErrInvalidPutts),
		errors.Is(err, scorecardservice.ErrInvalidTee),
		errors.Is(err, roundservice.ErrEmptyPairing),
		errors.Is(err, roundservice.ErrBadTeeTime):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, scorecardservice.ErrScorecardIncomplete),
		errors.Is(err, leaderboardservice.ErrNoStartedPlayers):
		status = http.StatusConflict
		msg = err.Error()
	}

	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "Request failed",
			attr.String("path", r.URL.Path),
			attr.Error(err),
		)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// Handlers carries the services the API fronts.
type Handlers struct {
	scorecards  scorecardservice.Service
	leaderboard leaderboardservice.Service
	rounds      roundservice.Service
	courses     courseservice.Service
	logger      *slog.Logger
}

// NewHandlers creates the API handler set.
func NewHandlers(
	scorecards scorecardservice.Service,
	leaderboard leaderboardservice.Service,
	rounds roundservice.Service,
	courses courseservice.Service,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		scorecards:  scorecards,
		leaderboard: leaderboard,
		rounds:      rounds,
		courses:     courses,
		logger:      logger,
	}
}
