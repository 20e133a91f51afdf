// Package layout maps grid cells to pixels. The world origin sits in the
// middle of the canvas and Y grows upwards, so screen Y is flipped.
package layout

import "grid-snake/game/types"

// CellSize is the side of one cell in pixels.
const CellSize = 10

// Rect is the pixel square covered by a cell.
type Rect struct {
	X, Y, W, H int
}

// CellRect returns the square for p on a width x height canvas. The square
// is centered on (p.X*CellSize, p.Y*CellSize) in world pixels.
func CellRect(p types.GridPoint, width, height int) Rect {
	cx, cy := width/2, height/2
	return Rect{
		X: cx + int(p.X)*CellSize - CellSize/2,
		Y: cy - int(p.Y)*CellSize - CellSize/2,
		W: CellSize,
		H: CellSize,
	}
}

// Visible reports whether any part of r lies on the canvas.
func (r Rect) Visible(width, height int) bool {
	return r.X+r.W > 0 && r.Y+r.H > 0 && r.X < width && r.Y < height
}
