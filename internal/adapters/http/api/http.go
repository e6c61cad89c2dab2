// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	repository "github.com/okian/podium/internal/adapters/repository"
	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/domain/compare"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/rank"
	"github.com/okian/podium/internal/domain/trajectory"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	CreateBoard(ctx context.Context, name string) (model.Board, error)
	Boards(ctx context.Context) ([]model.Board, error)
	DeleteBoard(ctx context.Context, boardID string) error

	Cards(ctx context.Context, boardID string) ([]model.Card, error)
	AddCard(ctx context.Context, boardID, name, thumbnailRef string) (model.Card, error)
	RenameCard(ctx context.Context, boardID, cardID, name string) (model.Card, error)
	DeleteCard(ctx context.Context, boardID, cardID string) error

	Reorder(ctx context.Context, boardID string, from, to int) (bool, error)
	ReorderToOrder(ctx context.Context, boardID string, order []string) (bool, error)

	CaptureEpisode(ctx context.Context, boardID, label, notes string) (model.Snapshot, error)
	Episodes(ctx context.Context, boardID string) ([]model.Snapshot, error)
	UpdateEpisodeMeta(ctx context.Context, snapshotID, label, notes string) (model.Snapshot, error)
	DeleteEpisode(ctx context.Context, snapshotID string) error

	Movement(ctx context.Context, boardID string, baselineEpisode int) ([]compare.Result, error)
	MovementBetween(ctx context.Context, boardID string, baselineEpisode, targetEpisode int) ([]compare.Result, error)
	Trajectories(ctx context.Context, boardID string) ([]trajectory.CardTrajectory, error)
	Trajectory(ctx context.Context, boardID, cardID string) (trajectory.CardTrajectory, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	boardsHandler     *BoardsHandler
	cardsHandler      *CardsHandler
	reorderHandler    *ReorderHandler
	episodesHandler   *EpisodesHandler
	movementHandler   *MovementHandler
	trajectoryHandler *TrajectoryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		boardsHandler:     NewBoardsHandler(deps),
		cardsHandler:      NewCardsHandler(deps),
		reorderHandler:    NewReorderHandler(deps),
		episodesHandler:   NewEpisodesHandler(deps),
		movementHandler:   NewMovementHandler(deps),
		trajectoryHandler: NewTrajectoryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/boards", MetricsMiddleware(s.boardsHandler.HandleCollection, "boards"))
	mux.HandleFunc("/boards/", MetricsMiddleware(s.routeBoard, "boards"))
}

// routeBoard dispatches /boards/{id}[/resource[/{sub}]] to the resource
// handlers. The mux gives us everything under /boards/ in one handler, so
// path splitting happens here, most specific first.
func (s *Server) routeBoard(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/boards/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	boardID := parts[0]

	switch {
	case len(parts) == 1:
		s.boardsHandler.HandleBoard(w, r, boardID)
	case parts[1] == "cards" && len(parts) == 2:
		s.cardsHandler.HandleCollection(w, r, boardID)
	case parts[1] == "cards" && len(parts) == 3:
		s.cardsHandler.HandleCard(w, r, boardID, parts[2])
	case parts[1] == "reorder" && len(parts) == 2:
		s.reorderHandler.HandleReorder(w, r, boardID)
	case parts[1] == "episodes" && len(parts) == 2:
		s.episodesHandler.HandleCollection(w, r, boardID)
	case parts[1] == "episodes" && len(parts) == 3:
		s.episodesHandler.HandleEpisode(w, r, boardID, parts[2])
	case parts[1] == "movement" && len(parts) == 2:
		s.movementHandler.HandleMovement(w, r, boardID)
	case parts[1] == "trajectories" && len(parts) == 2:
		s.trajectoryHandler.HandleAll(w, r, boardID)
	case parts[1] == "trajectories" && len(parts) == 3:
		s.trajectoryHandler.HandleCard(w, r, boardID, parts[2])
	default:
		http.NotFound(w, r)
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError translates upstream sentinel errors to HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, rank.ErrInvalidIndex),
		errors.Is(err, repository.ErrInvalidRanks),
		errors.Is(err, app.ErrAmbiguousOrder):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, app.ErrBoardFull):
		writeError(w, http.StatusConflict, "board_full", err)
	case errors.Is(err, repository.ErrDuplicateID):
		writeError(w, http.StatusConflict, "conflict", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
