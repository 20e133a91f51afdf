package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"grid-snake/ai"
	"grid-snake/config"
	"grid-snake/game"
	"grid-snake/ui/term"

	"golang.org/x/exp/rand"
)

const terminalLogFile = "snake.log"

func main() {
	configPath := flag.String("config", "", "YAML config file, created with defaults if missing")
	policyName := flag.String("policy", "", "Movement policy: forward, random or keyboard")
	frontend := flag.String("frontend", "", "Front end: window or terminal")
	seed := flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	tick := flag.Duration("tick", 0, "Tick interval, e.g. 1s or 200ms")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("loading config", "err", err)
		os.Exit(1)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "policy":
			cfg.Policy = *policyName
		case "frontend":
			cfg.Frontend = *frontend
		case "seed":
			cfg.Seed = *seed
		case "tick":
			cfg.Tick = *tick
		}
	})
	cfg.Frontend = strings.ToLower(cfg.Frontend)
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid settings", "err", err)
		os.Exit(1)
	}

	logOut, closeLog := logWriter(cfg)
	defer closeLog()
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	policy, err := ai.New(cfg.Policy)
	if err != nil {
		slog.Error("creating policy", "err", err)
		os.Exit(1)
	}
	keyboard, _ := policy.(*ai.KeyboardPolicy)

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	session := game.NewSession(game.NewModel(rng), policy, cfg.Tick)
	slog.Info("starting game",
		"session", session.ID,
		"policy", cfg.Policy,
		"frontend", cfg.Frontend,
		"tick", cfg.Tick,
		"seed", cfg.Seed)

	switch cfg.Frontend {
	case config.FrontendTerminal:
		if err := term.Run(session, keyboard); err != nil {
			slog.Error("terminal front end", "err", err)
			os.Exit(1)
		}
	default:
		runWindow(cfg, session, keyboard)
	}

	slog.Info("game over", "session", session.ID, "ticks", session.Tick, "length", session.Model.Snake.Len())
}

// logWriter keeps the terminal front end's screen clean by logging to a file.
func logWriter(cfg *config.Config) (io.Writer, func()) {
	if cfg.Frontend != config.FrontendTerminal {
		return os.Stderr, func() {}
	}
	f, err := os.OpenFile(terminalLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return io.Discard, func() {}
	}
	return f, func() { f.Close() }
}
