package main

import (
	"log/slog"
	"time"

	"grid-snake/ai"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/ui"
	"grid-snake/ui/snapshot"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func runWindow(cfg *config.Config, s *game.Session, keyboard *ai.KeyboardPolicy) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Snake")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	renderer.ShowStatus = cfg.Window.ShowTick

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyS) {
			saveSnapshot(cfg.SnapshotDir, s, rl.GetScreenWidth(), rl.GetScreenHeight())
		}

		// Keys are sampled once per tick, right before the policy runs.
		now := time.Now()
		if s.Due(now) {
			if keyboard != nil {
				if dir, ok := ui.HeldDirection(); ok {
					keyboard.Press(dir)
				}
			}
			s.Advance(now)
		}

		renderer.Draw(s.Model, s.Tick)
	}
}

func saveSnapshot(dir string, s *game.Session, width, height int) {
	path := snapshot.Path(dir, s.ID, s.Tick)
	if err := snapshot.Save(path, s.Model, width, height); err != nil {
		slog.Error("snapshot failed", "err", err)
		return
	}
	slog.Info("snapshot saved", "path", path)
}
