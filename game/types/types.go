package types

// Color is the display color of a cell. It is cosmetic only.
type Color struct {
	R, G, B uint8
}

// Default palette
var (
	SnakeColor = Color{R: 255, G: 0, B: 0}
	AppleColor = Color{R: 0, G: 128, B: 0}
	Background = Color{R: 200, G: 200, B: 200}
)

// Key identifies a grid cell independently of its color
type Key struct {
	X, Y int32
}

// GridPoint is one occupied cell of the world
type GridPoint struct {
	X, Y  int32
	Color Color
}

// Pt builds a GridPoint with the given color.
func Pt(x, y int32, c Color) GridPoint {
	return GridPoint{X: x, Y: y, Color: c}
}

// Key returns the identity of the point. Color is not part of it.
func (p GridPoint) Key() Key {
	return Key{X: p.X, Y: p.Y}
}

// Equal reports whether two points occupy the same cell.
func (p GridPoint) Equal(o GridPoint) bool {
	return p.X == o.X && p.Y == o.Y
}

// MoveInDir returns the neighbouring point in direction d, keeping the color.
func (p GridPoint) MoveInDir(d Direction) GridPoint {
	delta := d.Delta()
	return GridPoint{X: p.X + delta.X, Y: p.Y + delta.Y, Color: p.Color}
}

// MoveInDir is the free-function form of GridPoint.MoveInDir.
func MoveInDir(p GridPoint, d Direction) GridPoint {
	return p.MoveInDir(d)
}
