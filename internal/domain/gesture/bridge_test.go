package gesture_test

import (
	"testing"

	gesture "github.com/okian/podium/internal/domain/gesture"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMovedIndices(t *testing.T) {
	Convey("Given reorder events over item IDs", t, func() {
		Convey("When one item moved toward the end", func() {
			from, to, ok := gesture.MovedIndices(
				[]string{"a", "b", "c", "d"},
				[]string{"b", "c", "a", "d"},
			)
			So(ok, ShouldBeTrue)
			So(from, ShouldEqual, 0)
			So(to, ShouldEqual, 2)
		})

		Convey("When one item moved toward the front", func() {
			from, to, ok := gesture.MovedIndices(
				[]string{"a", "b", "c", "d"},
				[]string{"a", "d", "b", "c"},
			)
			So(ok, ShouldBeTrue)
			So(from, ShouldEqual, 3)
			So(to, ShouldEqual, 1)
		})

		Convey("When adjacent items swapped", func() {
			from, to, ok := gesture.MovedIndices(
				[]string{"a", "b"},
				[]string{"b", "a"},
			)
			So(ok, ShouldBeTrue)
			So(from, ShouldEqual, 0)
			So(to, ShouldEqual, 1)
		})

		Convey("When the order is unchanged", func() {
			_, _, ok := gesture.MovedIndices(
				[]string{"a", "b", "c"},
				[]string{"a", "b", "c"},
			)
			So(ok, ShouldBeFalse)
		})

		Convey("When the lengths differ", func() {
			_, _, ok := gesture.MovedIndices(
				[]string{"a", "b"},
				[]string{"a"},
			)
			So(ok, ShouldBeFalse)
		})

		Convey("When the change is not a single relocation", func() {
			_, _, ok := gesture.MovedIndices(
				[]string{"a", "b", "c", "d"},
				[]string{"b", "a", "d", "c"},
			)
			So(ok, ShouldBeFalse)
		})
	})
}
