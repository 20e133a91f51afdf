package types

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMoveInDir(t *testing.T) {
	Convey("Given a colored point", t, func() {
		p := Pt(3, -7, Color{R: 1, G: 2, B: 3})

		Convey("Each direction changes exactly one coordinate by one and keeps the color", func() {
			for _, d := range Directions {
				q := MoveInDir(p, d)
				dx, dy := q.X-p.X, q.Y-p.Y
				So(abs32(dx)+abs32(dy), ShouldEqual, 1)
				So(q.Color, ShouldResemble, p.Color)
			}
		})

		Convey("Up increases y and Down decreases it", func() {
			So(p.MoveInDir(Up).Key(), ShouldResemble, Key{X: 3, Y: -6})
			So(p.MoveInDir(Down).Key(), ShouldResemble, Key{X: 3, Y: -8})
		})

		Convey("Left decreases x and Right increases it", func() {
			So(p.MoveInDir(Left).Key(), ShouldResemble, Key{X: 2, Y: -7})
			So(p.MoveInDir(Right).Key(), ShouldResemble, Key{X: 4, Y: -7})
		})

		Convey("Opposite moves cancel out", func() {
			So(p.MoveInDir(Up).MoveInDir(Down), ShouldResemble, p)
			So(p.MoveInDir(Left).MoveInDir(Right), ShouldResemble, p)
			for _, d := range Directions {
				So(p.MoveInDir(d).MoveInDir(d.Opposite()), ShouldResemble, p)
			}
		})

		Convey("The original point is not modified", func() {
			_ = p.MoveInDir(Right)
			So(p.X, ShouldEqual, 3)
		})
	})
}

func TestGridPointIdentity(t *testing.T) {
	Convey("Points with the same coordinates are equal whatever their color", t, func() {
		a := Pt(1, 1, SnakeColor)
		b := Pt(1, 1, AppleColor)
		So(a.Equal(b), ShouldBeTrue)
		So(a.Key(), ShouldResemble, b.Key())
		So(a.Equal(Pt(1, 2, SnakeColor)), ShouldBeFalse)
	})
}

func TestParseDirection(t *testing.T) {
	Convey("ParseDirection reverses String", t, func() {
		for _, d := range Directions {
			got, err := ParseDirection(d.String())
			So(err, ShouldBeNil)
			So(got, ShouldEqual, d)
		}
		got, err := ParseDirection(" LEFT ")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, Left)

		_, err = ParseDirection("north")
		So(err, ShouldNotBeNil)
	})
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
