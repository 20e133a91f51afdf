package entity

import (
	"iter"

	"grid-snake/game/types"
)

// Snake is the ordered body of the snake. Body[0] is the head, the last
// element is the tail.
type Snake struct {
	Body []types.GridPoint
}

// NewSnake builds a snake from head to tail. It panics on an empty body.
func NewSnake(body ...types.GridPoint) *Snake {
	if len(body) == 0 {
		panic("entity: snake needs at least one segment")
	}
	s := &Snake{Body: make([]types.GridPoint, len(body))}
	copy(s.Body, body)
	return s
}

// NewStartingSnake returns the six segment horizontal snake every game starts
// with, heading right from (1,1) back to (-4,1).
func NewStartingSnake() *Snake {
	body := make([]types.GridPoint, 0, 6)
	for x := int32(1); x >= -4; x-- {
		body = append(body, types.Pt(x, 1, types.SnakeColor))
	}
	return NewSnake(body...)
}

func (s *Snake) Cells() iter.Seq[types.GridPoint] {
	return types.Points(s.Body).Cells()
}

func (s *Snake) GetHead() types.GridPoint {
	if len(s.Body) == 0 {
		panic("entity: empty snake")
	}
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether p is one of the body cells.
func (s *Snake) Contains(p types.GridPoint) bool {
	for _, part := range s.Body {
		if part.Equal(p) {
			return true
		}
	}
	return false
}

// Points returns a copy of the body, head first.
func (s *Snake) Points() []types.GridPoint {
	out := make([]types.GridPoint, len(s.Body))
	copy(out, s.Body)
	return out
}

// Update pushes the neighbour of the head in direction dir as the new head.
// Unless hitApple is set the tail is dropped so the length stays the same.
func (s *Snake) Update(dir types.Direction, hitApple bool) {
	newHead := s.GetHead().MoveInDir(dir)

	s.Body = append(s.Body, types.GridPoint{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if !hitApple {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}
