package ai

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"grid-snake/game"
	"grid-snake/game/types"
)

var ErrUnknownPolicy = errors.New("unknown policy")

// Policy names accepted by New
const (
	Forward  = "forward"
	Random   = "random"
	Keyboard = "keyboard"
)

// New builds a policy by name.
func New(name string) (game.Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Forward:
		return GoForward{}, nil
	case Random:
		return NewRandomPolicy(), nil
	case Keyboard:
		return NewKeyboardPolicy(types.Right), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// GoForward always heads right.
type GoForward struct{}

func (GoForward) Action(*game.Model) types.Direction {
	return types.Right
}

// RandomPolicy wanders randomly without stepping onto its own body.
type RandomPolicy struct {
	// Fallback is returned when every neighbour of the head is taken.
	Fallback types.Direction
	log      *slog.Logger
}

func NewRandomPolicy() *RandomPolicy {
	return &RandomPolicy{
		Fallback: types.Right,
		log:      slog.Default().With("component", "random_policy"),
	}
}

// Action samples directions uniformly from the model's random source until
// one leads to a free cell.
func (p *RandomPolicy) Action(m *game.Model) types.Direction {
	head := m.Snake.GetHead()
	if boxedIn(m, head) {
		p.log.Warn("no free neighbour, using fallback", "head_x", head.X, "head_y", head.Y, "fallback", p.Fallback)
		return p.Fallback
	}

	rng := m.Rand()
	for {
		dir := types.Directions[rng.Intn(len(types.Directions))]
		if !m.Snake.Contains(head.MoveInDir(dir)) {
			return dir
		}
	}
}

func boxedIn(m *game.Model, head types.GridPoint) bool {
	for _, dir := range types.Directions {
		if !m.Snake.Contains(head.MoveInDir(dir)) {
			return false
		}
	}
	return true
}

// KeyboardPolicy follows the player's keys and keeps the last direction when
// nothing is pressed.
type KeyboardPolicy struct {
	Last    types.Direction
	pending *types.Direction
}

func NewKeyboardPolicy(initial types.Direction) *KeyboardPolicy {
	return &KeyboardPolicy{Last: initial}
}

// Press records the direction read from the input layer for the next tick.
func (p *KeyboardPolicy) Press(dir types.Direction) {
	p.pending = &dir
}

// Pending returns the direction queued for the next tick, if any.
func (p *KeyboardPolicy) Pending() (types.Direction, bool) {
	if p.pending == nil {
		return 0, false
	}
	return *p.pending, true
}

// Action consumes the pending key and remembers it as the new fallback.
func (p *KeyboardPolicy) Action(*game.Model) types.Direction {
	if p.pending != nil {
		p.Last = *p.pending
		p.pending = nil
	}
	return p.Last
}
