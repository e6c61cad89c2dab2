// Package episode freezes a board's current rank order into an immutable
// snapshot. Capture denormalizes card identity and position so that later
// renames or deletions never rewrite history.
package episode

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/okian/podium/internal/domain/model"
)

// Capture builds a snapshot of cards for boardID. The input is sorted by
// rank defensively; callers should already pass rank order. An empty card
// list is valid and yields a snapshot with empty rankings.
//
// The returned snapshot owns its rankings slice; mutating the input cards
// afterwards does not affect it.
func Capture(boardID string, cards []model.Card, opts ...Option) model.Snapshot {
	c := &capture{
		episodeNumber: 1,
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	ordered := make([]model.Card, len(cards))
	copy(ordered, cards)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Rank < ordered[j].Rank })

	rankings := make([]model.RankingEntry, len(ordered))
	for i, card := range ordered {
		rankings[i] = model.RankingEntry{
			CardID:       card.ID,
			CardName:     card.Name,
			Rank:         card.Rank,
			ThumbnailRef: card.ThumbnailRef,
		}
	}

	label := c.label
	if label == "" {
		label = fmt.Sprintf("Episode %d", c.episodeNumber)
	}

	return model.Snapshot{
		ID:            c.newID(),
		BoardID:       boardID,
		EpisodeNumber: c.episodeNumber,
		Label:         label,
		Notes:         c.notes,
		Rankings:      rankings,
		CreatedAt:     c.now(),
	}
}

type capture struct {
	episodeNumber int
	label         string
	notes         string
	now           func() time.Time
	newID         func() string
}
