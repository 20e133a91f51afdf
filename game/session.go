package game

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Session drives a model at a fixed cadence on behalf of a front end.
type Session struct {
	ID       string
	Model    *Model
	Policy   Policy
	Interval time.Duration
	Tick     int

	lastUpdate time.Time
	log        *slog.Logger
}

func NewSession(model *Model, policy Policy, interval time.Duration) *Session {
	id := uuid.New().String()
	return &Session{
		ID:       id,
		Model:    model,
		Policy:   policy,
		Interval: interval,
		log:      slog.Default().With("component", "session", "session", id),
	}
}

// Due reports whether a tick is owed at now. The first tick is always due.
func (s *Session) Due(now time.Time) bool {
	return s.lastUpdate.IsZero() || now.Sub(s.lastUpdate) >= s.Interval
}

// Advance steps the model if at least one interval has passed since the last
// step and reports whether it did.
func (s *Session) Advance(now time.Time) bool {
	if !s.Due(now) {
		return false
	}
	s.Step()
	s.lastUpdate = now
	return true
}

// Step runs one model update unconditionally.
func (s *Session) Step() Step {
	step := s.Model.Update(s.Policy)
	s.Tick++
	s.log.Debug("tick",
		"tick", s.Tick,
		"direction", step.Direction,
		"hit_apple", step.HitApple,
		"head_x", step.Head.X,
		"head_y", step.Head.Y)
	if step.HitApple {
		s.log.Info("apple eaten", "tick", s.Tick, "length", s.Model.Snake.Len(),
			"apple_x", s.Model.Apple.Position.X, "apple_y", s.Model.Apple.Position.Y)
	}
	return step
}
