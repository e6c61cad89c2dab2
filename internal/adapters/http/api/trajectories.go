// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// TrajectoryHandler handles rank-history requests.
type TrajectoryHandler struct {
	deps Dependencies
}

// NewTrajectoryHandler creates a new trajectory handler.
func NewTrajectoryHandler(deps Dependencies) *TrajectoryHandler {
	return &TrajectoryHandler{deps: deps}
}

// HandleAll handles GET /boards/{id}/trajectories.
func (h *TrajectoryHandler) HandleAll(w http.ResponseWriter, r *http.Request, boardID string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	all, err := h.deps.Trajectories(r.Context(), boardID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, all)
}

// HandleCard handles GET /boards/{id}/trajectories/{cardID}.
func (h *TrajectoryHandler) HandleCard(w http.ResponseWriter, r *http.Request, boardID, cardID string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	tr, err := h.deps.Trajectory(r.Context(), boardID, cardID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}
