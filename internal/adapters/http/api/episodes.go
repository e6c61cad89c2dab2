// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// EpisodesHandler handles snapshot capture and history requests.
type EpisodesHandler struct {
	deps Dependencies
}

// NewEpisodesHandler creates a new episodes handler.
func NewEpisodesHandler(deps Dependencies) *EpisodesHandler {
	return &EpisodesHandler{deps: deps}
}

type captureEpisodeRequest struct {
	Label string `json:"label"`
	Notes string `json:"notes"`
}

type updateEpisodeRequest struct {
	Label string `json:"label"`
	Notes string `json:"notes"`
}

// HandleCollection handles GET and POST /boards/{id}/episodes.
func (h *EpisodesHandler) HandleCollection(w http.ResponseWriter, r *http.Request, boardID string) {
	switch r.Method {
	case http.MethodGet:
		episodes, err := h.deps.Episodes(r.Context(), boardID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, episodes)
	case http.MethodPost:
		var req captureEpisodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		snap, err := h.deps.CaptureEpisode(r.Context(), boardID, req.Label, req.Notes)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, snap)
	default:
		http.NotFound(w, r)
	}
}

// HandleEpisode handles PATCH and DELETE /boards/{id}/episodes/{snapshotID}.
// Only label and notes are editable; rankings and numbering are immutable.
func (h *EpisodesHandler) HandleEpisode(w http.ResponseWriter, r *http.Request, _ string, snapshotID string) {
	switch r.Method {
	case http.MethodPatch:
		var req updateEpisodeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		snap, err := h.deps.UpdateEpisodeMeta(r.Context(), snapshotID, req.Label, req.Notes)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, snap)
	case http.MethodDelete:
		if err := h.deps.DeleteEpisode(r.Context(), snapshotID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}
