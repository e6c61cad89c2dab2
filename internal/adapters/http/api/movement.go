// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"
)

// MovementHandler handles comparison requests.
type MovementHandler struct {
	deps Dependencies
}

// NewMovementHandler creates a new movement handler.
func NewMovementHandler(deps Dependencies) *MovementHandler {
	return &MovementHandler{deps: deps}
}

// HandleMovement handles GET /boards/{id}/movement?baseline=N[&target=M].
// Without target the baseline is compared against the live order; an absent
// or zero baseline means "no history" and reports every card as a debut.
func (h *MovementHandler) HandleMovement(w http.ResponseWriter, r *http.Request, boardID string) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	baseline := 0
	if raw := r.URL.Query().Get("baseline"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		baseline = n
	}

	if raw := r.URL.Query().Get("target"); raw != "" {
		target, err := strconv.Atoi(raw)
		if err != nil || target < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		results, err := h.deps.MovementBetween(r.Context(), boardID, baseline, target)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, results)
		return
	}

	results, err := h.deps.Movement(r.Context(), boardID, baseline)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
