// Package term plays the game in a terminal.
package term

import (
	"fmt"
	"strings"
	"time"

	"grid-snake/ai"
	"grid-snake/game"
	"grid-snake/game/types"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	snakeCell = 'o'
	appleCell = '*'
	emptyCell = '.'
)

type tickMsg time.Time

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model wrapping a game session.
type Model struct {
	session  *game.Session
	keyboard *ai.KeyboardPolicy
	keys     ai.KeySet

	cols, rows int
}

// New wraps s. keyboard may be nil when the session is not player driven.
func New(s *game.Session, keyboard *ai.KeyboardPolicy) Model {
	return Model{
		session:  s,
		keyboard: keyboard,
		keys:     ai.KeySet{},
		cols:     80,
		rows:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Interval)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up":
			m.keys.Add(types.Up)
		case "down":
			m.keys.Add(types.Down)
		case "left":
			m.keys.Add(types.Left)
		case "right":
			m.keys.Add(types.Right)
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height - 1 // status line
	case tickMsg:
		if m.keyboard != nil {
			if dir, ok := ai.PickDirection(m.keys.Held); ok {
				m.keyboard.Press(dir)
			}
		}
		m.keys.Reset()
		m.session.Step()
		return m, tickCmd(m.session.Interval)
	}
	return m, nil
}

// View draws the part of the world around the origin that fits the terminal.
func (m Model) View() string {
	if m.cols <= 0 || m.rows <= 0 {
		return ""
	}
	grid := make([][]rune, m.rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(string(emptyCell), m.cols))
	}

	put := func(p types.GridPoint, r rune) {
		col := m.cols/2 + int(p.X)
		row := m.rows/2 - int(p.Y)
		if col < 0 || col >= m.cols || row < 0 || row >= m.rows {
			return
		}
		grid[row][col] = r
	}
	model := m.session.Model
	for p := range model.Snake.Cells() {
		put(p, snakeCell)
	}
	put(model.Apple.Position, appleCell)

	var b strings.Builder
	for _, line := range grid {
		b.WriteString(string(line))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "tick %d  length %d  apple (%d,%d)  q to quit",
		m.session.Tick, model.Snake.Len(), model.Apple.Position.X, model.Apple.Position.Y)
	return b.String()
}

// Run blocks until the player quits.
func Run(s *game.Session, keyboard *ai.KeyboardPolicy) error {
	_, err := tea.NewProgram(New(s, keyboard), tea.WithAltScreen()).Run()
	return err
}
