package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Front ends
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

type Window struct {
	Width    int  `mapstructure:"width" yaml:"width"`
	Height   int  `mapstructure:"height" yaml:"height"`
	ShowTick bool `mapstructure:"show_tick" yaml:"show_tick"`
}

// Config holds the runtime settings. The world itself is unbounded and not
// configurable; Window only sizes the window.
type Config struct {
	Policy      string        `mapstructure:"policy" yaml:"policy"`
	Frontend    string        `mapstructure:"frontend" yaml:"frontend"`
	Tick        time.Duration `mapstructure:"tick" yaml:"tick"`
	Seed        uint64        `mapstructure:"seed" yaml:"seed"`
	Window      Window        `mapstructure:"window" yaml:"window"`
	LogLevel    string        `mapstructure:"log_level" yaml:"log_level"`
	SnapshotDir string        `mapstructure:"snapshot_dir" yaml:"snapshot_dir"`
}

func Default() *Config {
	return &Config{
		Policy:   "random",
		Frontend: FrontendWindow,
		Tick:     time.Second,
		Seed:     0,
		Window: Window{
			Width:  800,
			Height: 600,
		},
		LogLevel:    "info",
		SnapshotDir: "snapshots",
	}
}

// Load reads the YAML config at path. A missing file is created with the
// defaults. Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	setDefaults(vp, Default())
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := vp.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func setDefaults(vp *viper.Viper, d *Config) {
	vp.SetDefault("policy", d.Policy)
	vp.SetDefault("frontend", d.Frontend)
	vp.SetDefault("tick", d.Tick.String())
	vp.SetDefault("seed", d.Seed)
	vp.SetDefault("window.width", d.Window.Width)
	vp.SetDefault("window.height", d.Window.Height)
	vp.SetDefault("window.show_tick", d.Window.ShowTick)
	vp.SetDefault("log_level", d.LogLevel)
	vp.SetDefault("snapshot_dir", d.SnapshotDir)
}

// Save writes cfg to path as YAML, creating parent directories.
func Save(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	switch strings.ToLower(c.Frontend) {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %s", c.Tick)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel for slog.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
