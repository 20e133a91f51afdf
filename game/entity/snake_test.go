package entity

import (
	"testing"

	"grid-snake/game/types"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStartingSnake(t *testing.T) {
	Convey("The starting snake lies on y=1 from x=1 (head) to x=-4 (tail)", t, func() {
		s := NewStartingSnake()
		So(s.Len(), ShouldEqual, 6)
		So(s.GetHead().Key(), ShouldResemble, types.Key{X: 1, Y: 1})
		So(s.Body[5].Key(), ShouldResemble, types.Key{X: -4, Y: 1})
		for _, p := range s.Body {
			So(p.Color, ShouldResemble, types.SnakeColor)
		}
	})
}

func TestSnakeUpdate(t *testing.T) {
	Convey("Given the starting snake", t, func() {
		s := NewStartingSnake()
		oldHead := s.GetHead()

		Convey("Moving without an apple keeps the length and drops the tail", func() {
			s.Update(types.Right, false)
			So(s.Len(), ShouldEqual, 6)
			So(s.GetHead(), ShouldResemble, oldHead.MoveInDir(types.Right))
			So(s.Contains(types.Pt(-4, 1, types.SnakeColor)), ShouldBeFalse)
			So(s.Body[5].Key(), ShouldResemble, types.Key{X: -3, Y: 1})
		})

		Convey("Moving onto an apple grows the snake by one and keeps the tail", func() {
			s.Update(types.Up, true)
			So(s.Len(), ShouldEqual, 7)
			So(s.GetHead().Key(), ShouldResemble, types.Key{X: 1, Y: 2})
			So(s.Body[6].Key(), ShouldResemble, types.Key{X: -4, Y: 1})
		})

		Convey("The new head always equals the old head moved in the direction", func() {
			for _, d := range types.Directions {
				for _, grow := range []bool{false, true} {
					before := s.GetHead()
					s.Update(d, grow)
					So(s.GetHead(), ShouldResemble, before.MoveInDir(d))
				}
			}
		})

		Convey("Moving back into its own body is allowed", func() {
			s.Update(types.Left, false)
			So(s.GetHead().Key(), ShouldResemble, types.Key{X: 0, Y: 1})
			So(s.Len(), ShouldEqual, 6)
		})
	})

	Convey("A single segment snake moves without emptying", t, func() {
		s := NewSnake(types.Pt(0, 0, types.SnakeColor))
		s.Update(types.Down, false)
		So(s.Len(), ShouldEqual, 1)
		So(s.GetHead().Key(), ShouldResemble, types.Key{X: 0, Y: -1})
	})
}

func TestSnakeBodyGuards(t *testing.T) {
	Convey("An empty snake is a programming error", t, func() {
		So(func() { NewSnake() }, ShouldPanic)
		So(func() { (&Snake{}).Update(types.Up, false) }, ShouldPanic)
	})

	Convey("Points returns a copy", t, func() {
		s := NewStartingSnake()
		pts := s.Points()
		pts[0] = types.Pt(100, 100, types.SnakeColor)
		So(s.GetHead().Key(), ShouldResemble, types.Key{X: 1, Y: 1})
	})
}

func TestApple(t *testing.T) {
	Convey("An apple yields exactly its own cell and keeps its color when relocated", t, func() {
		a := NewApple(10, 10)
		var cells []types.GridPoint
		for p := range a.Cells() {
			cells = append(cells, p)
		}
		So(cells, ShouldHaveLength, 1)
		So(cells[0].Key(), ShouldResemble, types.Key{X: 10, Y: 10})

		a.Relocate(-3, 4)
		So(a.Position.Key(), ShouldResemble, types.Key{X: -3, Y: 4})
		So(a.Position.Color, ShouldResemble, types.AppleColor)
	})
}
