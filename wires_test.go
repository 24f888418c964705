package qsim

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestWires(t *testing.T) {
	Convey("Given wire sequences", t, func() {
		Convey("Valid sequences construct in order", func() {
			w, err := NewWires(3, 0, 2)
			So(err, ShouldBeNil)
			So(w.Equal(Wires{3, 0, 2}), ShouldBeTrue)
			So(w.Contains(0), ShouldBeTrue)
			So(w.Contains(1), ShouldBeFalse)
			So(w.Max(), ShouldEqual, 3)
		})

		Convey("Duplicates and negatives are rejected", func() {
			_, err := NewWires(1, 1)
			So(err, ShouldNotBeNil)

			_, err = NewWires(0, -2)
			So(err, ShouldNotBeNil)
		})

		Convey("Copy of an empty sequence stays non-nil", func() {
			w := Wires{}
			So(w.Copy(), ShouldNotBeNil)
			So(w.Max(), ShouldEqual, -1)
		})
	})
}
