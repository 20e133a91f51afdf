package game

import (
	"iter"

	"grid-snake/game/entity"
	"grid-snake/game/types"
)

// Apples respawn uniformly in [AppleMin, AppleMax) on both axes.
const (
	AppleMin = -200
	AppleMax = 200
)

// Rand is the random source threaded through the model and its policies.
// *rand.Rand from golang.org/x/exp/rand and math/rand both satisfy it.
type Rand interface {
	Intn(n int) int
}

// Policy picks the direction the snake moves in on the next tick. It is
// called exactly once per tick, before the model mutates.
type Policy interface {
	Action(m *Model) types.Direction
}

// Step describes what a single Update did.
type Step struct {
	Direction types.Direction
	HitApple  bool
	Head      types.GridPoint
}

// Model is the whole game world: one snake and one apple.
type Model struct {
	Snake entity.Snake
	Apple entity.Apple
	rng   Rand
}

// NewModel returns the starting world: the six segment snake and an apple at (10,10).
func NewModel(rng Rand) *Model {
	return &Model{
		Snake: *entity.NewStartingSnake(),
		Apple: *entity.NewApple(10, 10),
		rng:   rng,
	}
}

// Rand exposes the model's random source to policies.
func (m *Model) Rand() Rand {
	return m.rng
}

// Cells yields the snake cells followed by the apple cell.
func (m *Model) Cells() iter.Seq[types.GridPoint] {
	return func(yield func(types.GridPoint) bool) {
		for p := range m.Snake.Cells() {
			if !yield(p) {
				return
			}
		}
		for p := range m.Apple.Cells() {
			if !yield(p) {
				return
			}
		}
	}
}

// Update advances the world by one tick. The apple check uses the body before
// the move, so the snake grows on the tick after its head reaches the apple.
func (m *Model) Update(p Policy) Step {
	dir := p.Action(m)
	hitApple := len(types.Intersect(&m.Snake, &m.Apple)) > 0

	m.Snake.Update(dir, hitApple)
	if hitApple {
		m.relocateApple()
	}

	return Step{Direction: dir, HitApple: hitApple, Head: m.Snake.GetHead()}
}

func (m *Model) relocateApple() {
	x := int32(AppleMin + m.rng.Intn(AppleMax-AppleMin))
	y := int32(AppleMin + m.rng.Intn(AppleMax-AppleMin))
	m.Apple.Relocate(x, y)
}
