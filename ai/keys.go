package ai

import "grid-snake/game/types"

// KeyPrecedence is the order in which simultaneously held keys are resolved.
var KeyPrecedence = [4]types.Direction{types.Left, types.Right, types.Down, types.Up}

// PickDirection returns the first held direction in KeyPrecedence order.
func PickDirection(held func(types.Direction) bool) (types.Direction, bool) {
	for _, dir := range KeyPrecedence {
		if held(dir) {
			return dir, true
		}
	}
	return 0, false
}

// KeySet collects key presses between two ticks, for front ends that only see
// key-down events.
type KeySet map[types.Direction]bool

func (k KeySet) Add(dir types.Direction) {
	k[dir] = true
}

func (k KeySet) Held(dir types.Direction) bool {
	return k[dir]
}

// Reset forgets every press.
func (k KeySet) Reset() {
	clear(k)
}
