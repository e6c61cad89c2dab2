// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// ReorderHandler handles reorder commits for a board.
type ReorderHandler struct {
	deps Dependencies
}

// NewReorderHandler creates a new reorder handler.
func NewReorderHandler(deps Dependencies) *ReorderHandler {
	return &ReorderHandler{deps: deps}
}

// reorderRequest carries either an index pair or a full desired ID order.
// A gesture commit sends from/to; a generic list-reorder event sends order
// and is bridged through the single-relocation scanner.
type reorderRequest struct {
	From  *int     `json:"from,omitempty"`
	To    *int     `json:"to,omitempty"`
	Order []string `json:"order,omitempty"`
}

type reorderResponse struct {
	Changed bool `json:"changed"`
}

// HandleReorder handles POST /boards/{id}/reorder.
func (h *ReorderHandler) HandleReorder(w http.ResponseWriter, r *http.Request, boardID string) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}

	var (
		changed bool
		err     error
	)
	switch {
	case req.From != nil && req.To != nil:
		changed, err = h.deps.Reorder(r.Context(), boardID, *req.From, *req.To)
	case len(req.Order) > 0:
		changed, err = h.deps.ReorderToOrder(r.Context(), boardID, req.Order)
	default:
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reorderResponse{Changed: changed})
}
