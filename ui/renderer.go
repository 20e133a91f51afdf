package ui

import (
	"fmt"

	"grid-snake/game/types"
	"grid-snake/ui/layout"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	background   rl.Color
	ShowStatus   bool
}

func NewRenderer() *Renderer {
	r := &Renderer{
		background: toColor(types.Background),
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
}

// Draw renders one frame: every cell of world as a colored square.
func (r *Renderer) Draw(world types.Entity, tick int) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(r.background)

	w, h := int(r.screenWidth), int(r.screenHeight)
	for p := range world.Cells() {
		rect := layout.CellRect(p, w, h)
		if !rect.Visible(w, h) {
			continue
		}
		rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), toColor(p.Color))
	}

	if r.ShowStatus {
		fontSize := r.screenHeight / 45
		rl.DrawText(fmt.Sprintf("Tick: %d", tick), 10, 10, fontSize, rl.DarkGray)
	}

	rl.EndDrawing()
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}
