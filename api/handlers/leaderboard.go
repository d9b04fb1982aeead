package handlers

import "net/http"

// GetLeaderboard serves the round's current standings snapshot. Clients poll this
// endpoint; there is no push channel.
func (h *Handlers) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	snapshot, err := h.leaderboard.GetLeaderboard(r.Context(), roundID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// GetLeaderboardChart serves the vs-par bar chart as PNG.
func (h *Handlers) GetLeaderboardChart(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := h.leaderboard.RenderVsParChart(r.Context(), roundID, w); err != nil {
		// Headers may already be out; best effort.
		h.writeError(w, r, err)
	}
}

// ExportLeaderboard serves the standings as an xlsx download.
func (h *Handlers) ExportLeaderboard(w http.ResponseWriter, r *http.Request) {
	roundID, ok := h.roundIDParam(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="results.xlsx"`)
	if err := h.leaderboard.ExportResults(r.Context(), roundID, w); err != nil {
		h.writeError(w, r, err)
	}
}
