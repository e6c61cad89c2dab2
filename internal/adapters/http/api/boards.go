// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// BoardsHandler handles board collection and single-board requests.
type BoardsHandler struct {
	deps Dependencies
}

// NewBoardsHandler creates a new boards handler.
func NewBoardsHandler(deps Dependencies) *BoardsHandler {
	return &BoardsHandler{deps: deps}
}

type createBoardRequest struct {
	Name string `json:"name"`
}

// HandleCollection handles GET /boards and POST /boards.
func (h *BoardsHandler) HandleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		boards, err := h.deps.Boards(r.Context())
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, boards)
	case http.MethodPost:
		var req createBoardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		board, err := h.deps.CreateBoard(r.Context(), req.Name)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, board)
	default:
		http.NotFound(w, r)
	}
}

// HandleBoard handles DELETE /boards/{id}.
func (h *BoardsHandler) HandleBoard(w http.ResponseWriter, r *http.Request, boardID string) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	if err := h.deps.DeleteBoard(r.Context(), boardID); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
