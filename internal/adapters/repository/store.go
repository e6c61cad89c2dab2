// Package repository defines the persistence interfaces the ranking engine
// calls out through, plus in-memory implementations. The engine itself
// never persists anything; these are its external collaborators.
package repository

import (
	"context"

	"github.com/okian/podium/internal/domain/model"
)

// BoardStore provides board lifecycle access.
type BoardStore interface {
	// CreateBoard stores a new board. Returns ErrDuplicateID if the ID exists.
	CreateBoard(ctx context.Context, board model.Board) error

	// Board returns one board. Returns ErrNotFound if unknown.
	Board(ctx context.Context, id string) (model.Board, error)

	// Boards returns all boards ordered by creation time.
	Boards(ctx context.Context) ([]model.Board, error)

	// DeleteBoard removes a board and its cards. Returns ErrNotFound if unknown.
	DeleteBoard(ctx context.Context, id string) error
}

// CardStore provides rank-ordered card access per board.
type CardStore interface {
	// CardsByBoard returns the board's cards in rank order.
	CardsByBoard(ctx context.Context, boardID string) ([]model.Card, error)

	// SaveCardsForBoard replaces the board's cards with the given sequence.
	// The sequence must satisfy the dense-rank invariant; the store rejects
	// violations with ErrInvalidRanks.
	SaveCardsForBoard(ctx context.Context, boardID string, cards []model.Card) error
}

// SnapshotStore provides episode history access per board.
type SnapshotStore interface {
	// SnapshotsByBoard returns the board's snapshots ordered by episode
	// number ascending.
	SnapshotsByBoard(ctx context.Context, boardID string) ([]model.Snapshot, error)

	// Snapshot returns one snapshot. Returns ErrNotFound if unknown.
	Snapshot(ctx context.Context, id string) (model.Snapshot, error)

	// SaveSnapshot stores a new snapshot. Returns ErrDuplicateID if the ID
	// exists; snapshots are never overwritten.
	SaveSnapshot(ctx context.Context, snap model.Snapshot) error

	// UpdateSnapshotMeta edits label and notes only; identity, episode
	// number and rankings are immutable.
	UpdateSnapshotMeta(ctx context.Context, id, label, notes string) (model.Snapshot, error)

	// DeleteSnapshot removes a snapshot for good. A deleted snapshot never
	// reappears in any read.
	DeleteSnapshot(ctx context.Context, id string) error

	// NextEpisodeNumber returns max(existing)+1 for the board, or 1 when
	// the board has no snapshots.
	NextEpisodeNumber(ctx context.Context, boardID string) (int, error)
}
