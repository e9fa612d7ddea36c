// Package config loads game settings from a YAML file, SNAKECITY_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"snakecity/internal/game"
)

const envPrefix = "SNAKECITY"

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
	VSync  bool   `mapstructure:"vsync"`
}

type Config struct {
	Window     Window        `mapstructure:"window"`
	Debug      bool          `mapstructure:"debug"`
	Seed       uint64        `mapstructure:"seed"` // 0 picks a seed at startup
	Difficulty string        `mapstructure:"difficulty"`
	Tables     string        `mapstructure:"tables"` // optional YAML replacing the built-in tables
	Game       game.Settings `mapstructure:"game"`
}

func DefaultConfig() Config {
	return Config{
		Window: Window{
			Width:  1280,
			Height: 720,
			Title:  "Snake City",
			VSync:  true,
		},
		Difficulty: string(game.DifficultyNormal),
		Game:       game.DefaultSettings(),
	}
}

// Load reads path (skipped when empty), then the environment, then any
// changed flags in fs bound by key name ("seed", "debug", "difficulty").
// Game settings default to the chosen difficulty preset; explicit values
// still win over the preset.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	defaults, err := toMap(def)
	if err != nil {
		return nil, err
	}
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	if fs != nil {
		for _, name := range []string{"seed", "debug", "difficulty"} {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(name, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	diff, err := game.GetDifficultyConfig(game.Difficulty(v.GetString("difficulty")))
	if err != nil {
		return nil, err
	}
	preset, err := toMap(diff.Apply(def.Game))
	if err != nil {
		return nil, err
	}
	v.SetDefault("game", preset)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	s := c.Game
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size %dx%d", c.Window.Width, c.Window.Height)
	case s.BaseSpeed <= 0:
		return fmt.Errorf("config: game.base_speed must be positive")
	case s.MaxHealth < 1:
		return fmt.Errorf("config: game.max_health must be at least 1")
	case s.SegmentSpacing < 1 || s.HistoryBuffer < 0:
		return fmt.Errorf("config: game.segment_spacing must be at least 1")
	case s.HalfExtent <= s.Margin:
		return fmt.Errorf("config: game.half_extent must exceed game.margin")
	case s.GridStep <= 0:
		return fmt.Errorf("config: game.grid_step must be positive")
	case s.ComboTimeout <= 0:
		return fmt.Errorf("config: game.combo_timeout must be positive")
	}
	return nil
}

// Save writes c to path. The format follows the file extension.
func Save(c Config, path string) error {
	m, err := toMap(c)
	if err != nil {
		return err
	}
	v := viper.New()
	for key, val := range m {
		v.Set(key, val)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// toMap turns a mapstructure-tagged struct into nested maps keyed by tag.
func toMap(x any) (map[string]any, error) {
	var m map[string]any
	if err := mapstructure.Decode(x, &m); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return m, nil
}
