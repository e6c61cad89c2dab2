// Package compare computes per-card movement between a baseline snapshot
// and a current rank order (live cards or another snapshot's rankings).
//
// Rank 1 is best. Movement is baseline rank minus current rank: positive
// means the card improved, negative means it fell.
package compare

import (
	"encoding/json"
	"sort"

	"github.com/okian/podium/internal/domain/model"
)

// RankUnranked marks the current rank of a card that left the board since
// the baseline. Live ranks are always >= 1.
const RankUnranked = 0

// Class is the movement classification of a single card. Exactly one class
// applies per result, which keeps the exclusivity invariant structural
// instead of a convention over nullable fields.
type Class int

const (
	// ClassRanked means the card appears in both baseline and current;
	// Movement is defined.
	ClassRanked Class = iota
	// ClassDebut means there was no baseline snapshot at all. Distinct from
	// ClassNew, which implies a baseline existed and lacked the card.
	ClassDebut
	// ClassNew means the card is in the current order but not the baseline.
	ClassNew
	// ClassRemoved means the card was in the baseline but is gone now.
	ClassRemoved
)

// Result describes one card's movement between baseline and current.
type Result struct {
	CardID       string
	CardName     string
	CurrentRank  int // RankUnranked for ClassRemoved
	BaselineRank int // 0 when the baseline lacks the card
	Class        Class
}

// Movement returns baseline minus current rank. Defined only for
// ClassRanked results.
func (r Result) Movement() (int, bool) {
	if r.Class != ClassRanked {
		return 0, false
	}
	return r.BaselineRank - r.CurrentRank, true
}

// IsNew reports whether the card appeared since the baseline.
func (r Result) IsNew() bool { return r.Class == ClassNew }

// IsRemoved reports whether the card left the board since the baseline.
func (r Result) IsRemoved() bool { return r.Class == ClassRemoved }

// resultWire is the JSON shape: movement and baseline_rank are null unless
// defined, mirroring the classification.
type resultWire struct {
	CardID       string `json:"card_id"`
	CardName     string `json:"card_name"`
	CurrentRank  int    `json:"current_rank"`
	BaselineRank *int   `json:"baseline_rank"`
	Movement     *int   `json:"movement"`
	IsNew        bool   `json:"is_new"`
	IsRemoved    bool   `json:"is_removed"`
}

// MarshalJSON renders the nullable wire shape from the class.
func (r Result) MarshalJSON() ([]byte, error) {
	w := resultWire{
		CardID:      r.CardID,
		CardName:    r.CardName,
		CurrentRank: r.CurrentRank,
		IsNew:       r.IsNew(),
		IsRemoved:   r.IsRemoved(),
	}
	if r.Class == ClassRanked || r.Class == ClassRemoved {
		baseline := r.BaselineRank
		w.BaselineRank = &baseline
	}
	if delta, ok := r.Movement(); ok {
		w.Movement = &delta
	}
	b, err := json.Marshal(w)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Compute classifies every card of current against baseline and appends one
// removed result per baseline card missing from current. A nil baseline
// yields all-debut results: there is no history to compare against.
//
// Output ordering: non-removed results by current rank ascending, then
// removed results (their relative order follows the baseline).
func Compute(baseline *model.Snapshot, current []model.Card) []Result {
	results := make([]Result, 0, len(current))

	if baseline == nil {
		for _, c := range current {
			results = append(results, Result{
				CardID:      c.ID,
				CardName:    c.Name,
				CurrentRank: c.Rank,
				Class:       ClassDebut,
			})
		}
		sortByCurrentRank(results)
		return results
	}

	seen := make(map[string]bool, len(current))
	for _, c := range current {
		seen[c.ID] = true
		r := Result{
			CardID:      c.ID,
			CardName:    c.Name,
			CurrentRank: c.Rank,
		}
		if base, ok := baseline.RankOf(c.ID); ok {
			r.BaselineRank = base
			r.Class = ClassRanked
		} else {
			r.Class = ClassNew
		}
		results = append(results, r)
	}
	sortByCurrentRank(results)

	for _, e := range baseline.Rankings {
		if seen[e.CardID] {
			continue
		}
		results = append(results, Result{
			CardID:       e.CardID,
			CardName:     e.CardName,
			CurrentRank:  RankUnranked,
			BaselineRank: e.Rank,
			Class:        ClassRemoved,
		})
	}
	return results
}

// ComputeBetween diffs two snapshots by treating the target's rankings as
// the current order.
func ComputeBetween(baseline *model.Snapshot, target model.Snapshot) []Result {
	current := make([]model.Card, len(target.Rankings))
	for i, e := range target.Rankings {
		current[i] = model.Card{
			ID:           e.CardID,
			BoardID:      target.BoardID,
			Name:         e.CardName,
			Rank:         e.Rank,
			ThumbnailRef: e.ThumbnailRef,
		}
	}
	return Compute(baseline, current)
}

func sortByCurrentRank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CurrentRank < results[j].CurrentRank
	})
}
