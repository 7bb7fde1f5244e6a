// Package config provides the TOML configuration file and XDG path helpers.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/hearo/internal/gamecfg"
)

// FileConfig represents the TOML configuration file. Pointer fields
// distinguish "unset" from a zero value; unset fields keep the built-in
// defaults.
type FileConfig struct {
	Game    GameConfig    `toml:"game"`
	Content ContentConfig `toml:"content"`
}

// GameConfig maps the default session settings.
type GameConfig struct {
	Mode       *string `toml:"mode"`
	Difficulty *string `toml:"difficulty"`
	Speed      *string `toml:"speed"`
	Questions  *int    `toml:"questions"`
}

// ContentConfig points at an optional external content pack.
type ContentConfig struct {
	Pack *string `toml:"pack"`
}

// LoadConfig reads a TOML config from the given path. A missing file is not
// an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// GameDefaults resolves the file's game section over the built-in defaults
// and validates the result.
func (f FileConfig) GameDefaults() (gamecfg.Config, error) {
	cfg := gamecfg.DefaultConfig()
	if f.Game.Mode != nil {
		cfg.Mode = gamecfg.Mode(*f.Game.Mode)
	}
	if f.Game.Difficulty != nil {
		cfg.Difficulty = gamecfg.Difficulty(*f.Game.Difficulty)
	}
	if f.Game.Speed != nil {
		cfg.Speed = gamecfg.Speed(*f.Game.Speed)
	}
	if f.Game.Questions != nil {
		cfg.QuestionCount = *f.Game.Questions
	}
	if err := cfg.Validate(); err != nil {
		return gamecfg.Config{}, fmt.Errorf("config file: %w", err)
	}
	return cfg, nil
}

// PackPath returns the configured content pack path, empty if unset.
func (f FileConfig) PackPath() string {
	if f.Content.Pack == nil {
		return ""
	}
	return *f.Content.Pack
}
