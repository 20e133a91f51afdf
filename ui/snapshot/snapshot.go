// Package snapshot writes frames of the world to PNG files.
package snapshot

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"grid-snake/game/types"
	"grid-snake/ui/layout"

	"github.com/fogleman/gg"
)

// Render draws world on a width x height canvas using the window geometry.
func Render(world types.Entity, width, height int) image.Image {
	dc := gg.NewContext(width, height)
	bg := types.Background
	dc.SetRGB255(int(bg.R), int(bg.G), int(bg.B))
	dc.Clear()

	for p := range world.Cells() {
		rect := layout.CellRect(p, width, height)
		if !rect.Visible(width, height) {
			continue
		}
		dc.SetRGB255(int(p.Color.R), int(p.Color.G), int(p.Color.B))
		dc.DrawRectangle(float64(rect.X), float64(rect.Y), float64(rect.W), float64(rect.H))
		dc.Fill()
	}
	return dc.Image()
}

// Path names the snapshot of a session at a given tick.
func Path(dir, sessionID string, tick int) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%d.png", sessionID, tick))
}

// Save renders world and writes it to path as PNG.
func Save(path string, world types.Entity, width, height int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("snapshot dir: %w", err)
	}
	if err := gg.SavePNG(path, Render(world, width, height)); err != nil {
		return fmt.Errorf("saving snapshot %s: %w", path, err)
	}
	return nil
}
