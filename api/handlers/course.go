package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fairway-crew/tripbot/app/shared/sharedtypes"
)

// GetCourse returns one course from the catalog.
func (h *Handlers) GetCourse(w http.ResponseWriter, r *http.Request) {
	courseID, ok := h.courseIDParam(w, r)
	if !ok {
		return
	}

	course, err := h.courses.GetCourse(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// ListCourseHoles returns the card for a course, ordered by hole number.
func (h *Handlers) ListCourseHoles(w http.ResponseWriter, r *http.Request) {
	courseID, ok := h.courseIDParam(w, r)
	if !ok {
		return
	}

	holes, err := h.courses.ListHoles(r.Context(), courseID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, holes)
}

func (h *Handlers) courseIDParam(w http.ResponseWriter, r *http.Request) (sharedtypes.CourseID, bool) {
	var id sharedtypes.CourseID
	if err := id.UnmarshalText([]byte(chi.URLParam(r, "courseID"))); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid course id"})
		return id, false
	}
	return id, true
}
