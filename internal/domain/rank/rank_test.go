package rank_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/okian/podium/internal/domain/model"
	rank "github.com/okian/podium/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func board(names ...string) []model.Card {
	cards := make([]model.Card, len(names))
	for i, n := range names {
		cards[i] = model.Card{
			ID:      "card-" + n,
			BoardID: "board-1",
			Name:    n,
			Rank:    i + 1,
		}
	}
	return cards
}

func names(cards []model.Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Name
	}
	return out
}

func TestMove(t *testing.T) {
	Convey("Given a board of three ranked cards", t, func() {
		cards := board("A", "B", "C")

		Convey("When moving the last card to the front", func() {
			out, changed, err := rank.Move(cards, 2, 0)

			Convey("Then the order becomes C, A, B with dense ranks", func() {
				So(err, ShouldBeNil)
				So(changed, ShouldBeTrue)
				So(names(out), ShouldResemble, []string{"C", "A", "B"})
				So(out[0].Rank, ShouldEqual, 1)
				So(out[1].Rank, ShouldEqual, 2)
				So(out[2].Rank, ShouldEqual, 3)
			})

			Convey("And the input slice is not mutated", func() {
				So(names(cards), ShouldResemble, []string{"A", "B", "C"})
				So(cards[0].Rank, ShouldEqual, 1)
			})
		})

		Convey("When moving the first card to the end", func() {
			out, changed, err := rank.Move(cards, 0, 2)
			So(err, ShouldBeNil)
			So(changed, ShouldBeTrue)
			So(names(out), ShouldResemble, []string{"B", "C", "A"})
			So(rank.Validate(out), ShouldBeNil)
		})

		Convey("When from equals to", func() {
			out, changed, err := rank.Move(cards, 1, 1)

			Convey("Then it is a no-op, not an error", func() {
				So(err, ShouldBeNil)
				So(changed, ShouldBeFalse)
				So(out, ShouldResemble, cards)
			})
		})

		Convey("When from is out of range", func() {
			out, changed, err := rank.Move(cards, 3, 0)
			So(errors.Is(err, rank.ErrInvalidIndex), ShouldBeTrue)
			So(changed, ShouldBeFalse)
			So(out, ShouldResemble, cards)
		})

		Convey("When to is negative", func() {
			_, changed, err := rank.Move(cards, 0, -1)
			So(errors.Is(err, rank.ErrInvalidIndex), ShouldBeTrue)
			So(changed, ShouldBeFalse)
		})
	})

	Convey("Given an empty board", t, func() {
		Convey("When moving with equal indices", func() {
			out, changed, err := rank.Move(nil, 0, 0)
			So(err, ShouldBeNil)
			So(changed, ShouldBeFalse)
			So(out, ShouldBeNil)
		})

		Convey("When moving with any distinct indices", func() {
			_, _, err := rank.Move(nil, 0, 1)
			So(errors.Is(err, rank.ErrInvalidIndex), ShouldBeTrue)
		})
	})
}

func TestMoveInvariant(t *testing.T) {
	Convey("Given a board of ten cards", t, func() {
		cards := make([]model.Card, 10)
		for i := range cards {
			cards[i] = model.Card{ID: fmt.Sprintf("c%d", i), BoardID: "b", Rank: i + 1}
		}

		Convey("When applying many random moves", func() {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 500; i++ {
				from := rng.Intn(len(cards))
				to := rng.Intn(len(cards))
				out, _, err := rank.Move(cards, from, to)
				So(err, ShouldBeNil)
				cards = out
			}

			Convey("Then the rank set is still exactly 1..N", func() {
				So(rank.Validate(cards), ShouldBeNil)
			})

			Convey("And no card was created or destroyed", func() {
				ids := make(map[string]bool, len(cards))
				for _, c := range cards {
					ids[c.ID] = true
				}
				So(len(ids), ShouldEqual, 10)
			})
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Given a list with a gap left by a deletion", t, func() {
		cards := board("A", "B", "C", "D")
		// Drop B; ranks are now 1,3,4.
		cards = append(cards[:1], cards[2:]...)

		Convey("When normalizing", func() {
			out := rank.Normalize(cards)

			Convey("Then ranks are dense again and order is preserved", func() {
				So(rank.Validate(out), ShouldBeNil)
				So(names(out), ShouldResemble, []string{"A", "C", "D"})
				So(out[0].Rank, ShouldEqual, 1)
				So(out[1].Rank, ShouldEqual, 2)
				So(out[2].Rank, ShouldEqual, 3)
			})
		})
	})
}

func TestValidate(t *testing.T) {
	Convey("Given rank lists of varying shape", t, func() {
		Convey("A dense permutation passes", func() {
			So(rank.Validate(board("A", "B", "C")), ShouldBeNil)
		})

		Convey("An empty list passes", func() {
			So(rank.Validate(nil), ShouldBeNil)
		})

		Convey("A duplicate rank fails", func() {
			cards := board("A", "B")
			cards[1].Rank = 1
			So(errors.Is(rank.Validate(cards), rank.ErrInvariant), ShouldBeTrue)
		})

		Convey("A gap fails", func() {
			cards := board("A", "B")
			cards[1].Rank = 3
			So(errors.Is(rank.Validate(cards), rank.ErrInvariant), ShouldBeTrue)
		})

		Convey("A zero rank fails", func() {
			cards := board("A")
			cards[0].Rank = 0
			So(errors.Is(rank.Validate(cards), rank.ErrInvariant), ShouldBeTrue)
		})
	})
}
