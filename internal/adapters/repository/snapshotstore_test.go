package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/podium/internal/adapters/repository"
	episode "github.com/okian/podium/internal/domain/episode"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func capture(boardID string, n int, cards ...model.Card) model.Snapshot {
	return episode.Capture(boardID, cards, episode.WithEpisodeNumber(n))
}

func TestMemSnapshotStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty snapshot store", t, func() {
		store := repository.NewMemSnapshotStore()

		Convey("NextEpisodeNumber starts at 1", func() {
			n, err := store.NextEpisodeNumber(ctx, "b1")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)
		})

		Convey("When saving snapshots for two boards", func() {
			first := capture("b1", 1, model.Card{ID: "A", Name: "Alpha", Rank: 1})
			third := capture("b1", 3, model.Card{ID: "A", Name: "Alpha", Rank: 1})
			other := capture("b2", 7)
			So(store.SaveSnapshot(ctx, first), ShouldBeNil)
			So(store.SaveSnapshot(ctx, third), ShouldBeNil)
			So(store.SaveSnapshot(ctx, other), ShouldBeNil)

			Convey("Then reads are scoped per board and ordered by episode", func() {
				snaps, err := store.SnapshotsByBoard(ctx, "b1")
				So(err, ShouldBeNil)
				So(len(snaps), ShouldEqual, 2)
				So(snaps[0].EpisodeNumber, ShouldEqual, 1)
				So(snaps[1].EpisodeNumber, ShouldEqual, 3)
			})

			Convey("And NextEpisodeNumber is max plus one", func() {
				n, _ := store.NextEpisodeNumber(ctx, "b1")
				So(n, ShouldEqual, 4)
				n, _ = store.NextEpisodeNumber(ctx, "b2")
				So(n, ShouldEqual, 8)
			})

			Convey("And saving the same ID again fails", func() {
				So(errors.Is(store.SaveSnapshot(ctx, first), repository.ErrDuplicateID), ShouldBeTrue)
			})

			Convey("And meta updates touch only label and notes", func() {
				updated, err := store.UpdateSnapshotMeta(ctx, first.ID, "Premiere", "notes")
				So(err, ShouldBeNil)
				So(updated.Label, ShouldEqual, "Premiere")
				So(updated.Notes, ShouldEqual, "notes")
				So(updated.EpisodeNumber, ShouldEqual, 1)
				So(updated.Rankings, ShouldResemble, first.Rankings)
			})

			Convey("And a deleted snapshot never reappears", func() {
				So(store.DeleteSnapshot(ctx, first.ID), ShouldBeNil)

				snaps, _ := store.SnapshotsByBoard(ctx, "b1")
				So(len(snaps), ShouldEqual, 1)
				So(snaps[0].ID, ShouldEqual, third.ID)

				_, err := store.Snapshot(ctx, first.ID)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)

				So(errors.Is(store.DeleteSnapshot(ctx, first.ID), repository.ErrNotFound), ShouldBeTrue)
			})

			Convey("And mutating a read's rankings does not corrupt the store", func() {
				snap, err := store.Snapshot(ctx, first.ID)
				So(err, ShouldBeNil)
				snap.Rankings[0].CardName = "mutated"

				again, _ := store.Snapshot(ctx, first.ID)
				So(again.Rankings[0].CardName, ShouldEqual, "Alpha")
			})
		})

		Convey("Updating an unknown snapshot fails with ErrNotFound", func() {
			_, err := store.UpdateSnapshotMeta(ctx, "nope", "l", "n")
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})
	})
}
