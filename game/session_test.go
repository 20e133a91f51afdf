package game

import (
	"testing"
	"time"

	"grid-snake/game/types"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSession(t *testing.T) {
	Convey("Given a session ticking every second", t, func() {
		s := NewSession(NewModel(&seqRand{vals: []int{0}}), fixedPolicy(types.Right), time.Second)
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

		So(s.ID, ShouldNotBeEmpty)
		So(s.Tick, ShouldEqual, 0)

		Convey("The first advance always steps", func() {
			So(s.Due(start), ShouldBeTrue)
			So(s.Advance(start), ShouldBeTrue)
			So(s.Tick, ShouldEqual, 1)

			Convey("Advancing before the interval has elapsed does nothing", func() {
				So(s.Due(start.Add(999*time.Millisecond)), ShouldBeFalse)
				So(s.Advance(start.Add(999*time.Millisecond)), ShouldBeFalse)
				So(s.Tick, ShouldEqual, 1)
				So(s.Model.Snake.GetHead().Key(), ShouldResemble, types.Key{X: 2, Y: 1})
			})

			Convey("Advancing after the interval steps again", func() {
				So(s.Advance(start.Add(time.Second)), ShouldBeTrue)
				So(s.Tick, ShouldEqual, 2)
				So(s.Model.Snake.GetHead().Key(), ShouldResemble, types.Key{X: 3, Y: 1})
			})
		})

		Convey("Step ignores the clock", func() {
			s.Step()
			s.Step()
			So(s.Tick, ShouldEqual, 2)
		})
	})

	Convey("Sessions get distinct ids", t, func() {
		a := NewSession(NewModel(&seqRand{vals: []int{0}}), fixedPolicy(types.Up), time.Second)
		b := NewSession(NewModel(&seqRand{vals: []int{0}}), fixedPolicy(types.Up), time.Second)
		So(a.ID, ShouldNotEqual, b.ID)
	})
}
