// Package trajectory folds an ordered sequence of snapshots into per-card
// rank histories and a compact textual summary.
package trajectory

import (
	"strconv"
	"strings"

	"github.com/okian/podium/internal/domain/model"
)

// RankAbsent marks an episode the card did not appear in.
const RankAbsent = 0

// SummarySeparator joins the present ranks of a summary.
const SummarySeparator = "→" // →

// AbsentSummary is the summary of a card present in no supplied snapshot.
const AbsentSummary = "New"

// Point is a card's rank at one episode. Rank is RankAbsent when the card
// was not in that episode.
type Point struct {
	EpisodeNumber int `json:"episode_number"`
	Rank          int `json:"rank"`
}

// Absent reports whether the card was missing from this episode.
func (p Point) Absent() bool { return p.Rank == RankAbsent }

// CardTrajectory is a card's rank across an ordered sequence of snapshots,
// one point per snapshot in the same order.
type CardTrajectory struct {
	CardID   string  `json:"card_id"`
	CardName string  `json:"card_name"`
	Points   []Point `json:"points"`
	Summary  string  `json:"summary"`
}

// Build produces the card's trajectory over snapshots, which the caller
// supplies ordered by episode number ascending.
func Build(cardID, cardName string, snapshots []model.Snapshot) CardTrajectory {
	points := make([]Point, len(snapshots))
	present := make([]string, 0, len(snapshots))
	for i, snap := range snapshots {
		p := Point{EpisodeNumber: snap.EpisodeNumber, Rank: RankAbsent}
		if r, ok := snap.RankOf(cardID); ok {
			p.Rank = r
			present = append(present, strconv.Itoa(r))
		}
		points[i] = p
	}

	summary := AbsentSummary
	if len(present) > 0 {
		summary = strings.Join(present, SummarySeparator)
	}

	return CardTrajectory{
		CardID:   cardID,
		CardName: cardName,
		Points:   points,
		Summary:  summary,
	}
}

// BuildAll computes a trajectory for every live card. Snapshot entries whose
// card no longer exists yield no trajectory.
func BuildAll(cards []model.Card, snapshots []model.Snapshot) []CardTrajectory {
	out := make([]CardTrajectory, 0, len(cards))
	for _, c := range cards {
		out = append(out, Build(c.ID, c.Name, snapshots))
	}
	return out
}
