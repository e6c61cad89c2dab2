// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// CardsHandler handles card requests under a board.
type CardsHandler struct {
	deps Dependencies
}

// NewCardsHandler creates a new cards handler.
func NewCardsHandler(deps Dependencies) *CardsHandler {
	return &CardsHandler{deps: deps}
}

type addCardRequest struct {
	Name         string `json:"name"`
	ThumbnailRef string `json:"thumbnail_ref"`
}

type renameCardRequest struct {
	Name string `json:"name"`
}

// HandleCollection handles GET and POST /boards/{id}/cards.
func (h *CardsHandler) HandleCollection(w http.ResponseWriter, r *http.Request, boardID string) {
	switch r.Method {
	case http.MethodGet:
		cards, err := h.deps.Cards(r.Context(), boardID)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, cards)
	case http.MethodPost:
		var req addCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		card, err := h.deps.AddCard(r.Context(), boardID, req.Name, req.ThumbnailRef)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, card)
	default:
		http.NotFound(w, r)
	}
}

// HandleCard handles PATCH and DELETE /boards/{id}/cards/{cardID}.
func (h *CardsHandler) HandleCard(w http.ResponseWriter, r *http.Request, boardID, cardID string) {
	switch r.Method {
	case http.MethodPatch:
		var req renameCardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		card, err := h.deps.RenameCard(r.Context(), boardID, cardID, req.Name)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, card)
	case http.MethodDelete:
		if err := h.deps.DeleteCard(r.Context(), boardID, cardID); err != nil {
			writeDomainError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		http.NotFound(w, r)
	}
}
