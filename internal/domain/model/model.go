// Package model contains domain models passed between layers.
package model

import "time"

// Board is a named collection of cards sharing one rank space.
type Board struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Card is a ranked item owned by a board. Rank is 1-indexed and only
// meaningful relative to other cards with the same BoardID.
type Card struct {
	ID           string `json:"id"`
	BoardID      string `json:"board_id"`
	Name         string `json:"name"`
	Rank         int    `json:"rank"`
	ThumbnailRef string `json:"thumbnail_ref,omitempty"` // opaque, resolved by the caller
}

// RankingEntry is a denormalized, immutable copy of a card's identity and
// position at capture time. Renaming or deleting the live card later does
// not touch historical entries.
type RankingEntry struct {
	CardID       string `json:"card_id"`
	CardName     string `json:"card_name"`
	Rank         int    `json:"rank"`
	ThumbnailRef string `json:"thumbnail_ref,omitempty"`
}

// Snapshot freezes a board's rank order at a point in time. Identity,
// episode number and rankings never change after creation; only Label and
// Notes may be edited.
type Snapshot struct {
	ID            string         `json:"id"`
	BoardID       string         `json:"board_id"`
	EpisodeNumber int            `json:"episode_number"`
	Label         string         `json:"label"`
	Notes         string         `json:"notes"`
	Rankings      []RankingEntry `json:"rankings"`
	CreatedAt     time.Time      `json:"created_at"`
}

// RankOf returns the card's rank within the snapshot, or false when the
// card was not ranked in it.
func (s Snapshot) RankOf(cardID string) (int, bool) {
	for _, e := range s.Rankings {
		if e.CardID == cardID {
			return e.Rank, true
		}
	}
	return 0, false
}
