package ui

import (
	"grid-snake/ai"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var arrowKeys = map[types.Direction]int32{
	types.Up:    rl.KeyUp,
	types.Down:  rl.KeyDown,
	types.Left:  rl.KeyLeft,
	types.Right: rl.KeyRight,
}

// HeldDirection polls the arrow keys currently held down.
func HeldDirection() (types.Direction, bool) {
	return ai.PickDirection(func(d types.Direction) bool {
		return rl.IsKeyDown(arrowKeys[d])
	})
}
