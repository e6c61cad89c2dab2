package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/rank"
)

// MemStore is an in-memory BoardStore and CardStore guarded by a single
// RWMutex. It deep-copies on every read and write so callers can never
// alias its internal state.
type MemStore struct {
	mu     sync.RWMutex
	boards map[string]model.Board
	cards  map[string][]model.Card // boardID -> rank order
}

var (
	_ BoardStore = (*MemStore)(nil)
	_ CardStore  = (*MemStore)(nil)
)

// NewMemStore creates an empty in-memory board/card store.
func NewMemStore() *MemStore {
	return &MemStore{
		boards: make(map[string]model.Board),
		cards:  make(map[string][]model.Card),
	}
}

// CreateBoard stores a new board.
func (s *MemStore) CreateBoard(_ context.Context, board model.Board) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.boards[board.ID]; exists {
		return fmt.Errorf("board %s: %w", board.ID, ErrDuplicateID)
	}
	s.boards[board.ID] = board
	s.cards[board.ID] = nil
	return nil
}

// Board returns one board.
func (s *MemStore) Board(_ context.Context, id string) (model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.boards[id]
	if !ok {
		return model.Board{}, fmt.Errorf("board %s: %w", id, ErrNotFound)
	}
	return b, nil
}

// Boards returns all boards ordered by creation time, then ID for stability.
func (s *MemStore) Boards(_ context.Context) ([]model.Board, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Board, 0, len(s.boards))
	for _, b := range s.boards {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// DeleteBoard removes a board and its cards.
func (s *MemStore) DeleteBoard(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[id]; !ok {
		return fmt.Errorf("board %s: %w", id, ErrNotFound)
	}
	delete(s.boards, id)
	delete(s.cards, id)
	return nil
}

// CardsByBoard returns the board's cards in rank order.
func (s *MemStore) CardsByBoard(_ context.Context, boardID string) ([]model.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.boards[boardID]; !ok {
		return nil, fmt.Errorf("board %s: %w", boardID, ErrNotFound)
	}
	cards := s.cards[boardID]
	out := make([]model.Card, len(cards))
	copy(out, cards)
	return out, nil
}

// SaveCardsForBoard replaces the board's card sequence after validating the
// dense-rank invariant.
func (s *MemStore) SaveCardsForBoard(_ context.Context, boardID string, cards []model.Card) error {
	if err := rank.Validate(cards); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRanks, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.boards[boardID]; !ok {
		return fmt.Errorf("board %s: %w", boardID, ErrNotFound)
	}
	stored := make([]model.Card, len(cards))
	copy(stored, cards)
	sort.Slice(stored, func(i, j int) bool { return stored[i].Rank < stored[j].Rank })
	s.cards[boardID] = stored
	return nil
}

// Counts returns the number of boards and cards, used for stats and gauges.
func (s *MemStore) Counts(_ context.Context) (boards, cards int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cards {
		cards += len(c)
	}
	return len(s.boards), cards
}
