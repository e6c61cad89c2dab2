// Package rank owns the ordered-list model for a board: cards form a dense
// 1..N rank permutation, and Move is the only way to change their order.
package rank

import (
	"fmt"

	"github.com/okian/podium/internal/domain/model"
)

// Move removes the element at from and reinserts it at to, then reassigns
// every rank to position+1. The second return reports whether anything
// changed; callers must skip persistence when it is false.
//
// from == to is a no-op, not an error. An index outside [0, len-1] returns
// the input unchanged with ErrInvalidIndex.
//
// This is a deliberate full-rewrite (O(N) per move). Lists hold tens of
// cards; a partial shift would save nothing and risks the density invariant.
func Move(cards []model.Card, from, to int) ([]model.Card, bool, error) {
	if from == to {
		return cards, false, nil
	}
	n := len(cards)
	if from < 0 || from >= n {
		return cards, false, fmt.Errorf("from %d of %d: %w", from, n, ErrInvalidIndex)
	}
	if to < 0 || to >= n {
		return cards, false, fmt.Errorf("to %d of %d: %w", to, n, ErrInvalidIndex)
	}

	out := make([]model.Card, 0, n)
	out = append(out, cards[:from]...)
	out = append(out, cards[from+1:]...)
	// Reinsert at to in the shortened slice.
	out = append(out[:to], append([]model.Card{cards[from]}, out[to:]...)...)
	renumber(out)
	return out, true, nil
}

// Normalize reassigns ranks 1..N in slice order. Used after out-of-band
// mutation (card deletion) to restore density without changing order.
func Normalize(cards []model.Card) []model.Card {
	out := make([]model.Card, len(cards))
	copy(out, cards)
	renumber(out)
	return out
}

// Validate checks the dense-permutation invariant: the rank set of N cards
// must be exactly {1..N}, no duplicates, no gaps.
func Validate(cards []model.Card) error {
	seen := make(map[int]string, len(cards))
	for _, c := range cards {
		if c.Rank < 1 || c.Rank > len(cards) {
			return fmt.Errorf("card %s rank %d outside 1..%d: %w", c.ID, c.Rank, len(cards), ErrInvariant)
		}
		if prev, dup := seen[c.Rank]; dup {
			return fmt.Errorf("cards %s and %s share rank %d: %w", prev, c.ID, c.Rank, ErrInvariant)
		}
		seen[c.Rank] = c.ID
	}
	return nil
}

func renumber(cards []model.Card) {
	for i := range cards {
		cards[i].Rank = i + 1
	}
}
