package entity

import (
	"iter"

	"grid-snake/game/types"
)

// Apple occupies a single cell.
type Apple struct {
	Position types.GridPoint
}

func NewApple(x, y int32) *Apple {
	return &Apple{Position: types.Pt(x, y, types.AppleColor)}
}

func (a *Apple) Cells() iter.Seq[types.GridPoint] {
	return func(yield func(types.GridPoint) bool) {
		yield(a.Position)
	}
}

// Relocate moves the apple to (x, y). The color is kept.
func (a *Apple) Relocate(x, y int32) {
	a.Position.X = x
	a.Position.Y = y
}
