package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/hearo/internal/gamecfg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	game, err := cfg.GameDefaults()
	if err != nil {
		t.Fatalf("GameDefaults: %v", err)
	}
	if game != gamecfg.DefaultConfig() {
		t.Errorf("defaults = %+v", game)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := writeConfig(t, `
[game]
mode = "discrimination"
difficulty = "hard"
questions = 20

[content]
pack = "/data/clinic.json"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	game, err := cfg.GameDefaults()
	if err != nil {
		t.Fatalf("GameDefaults: %v", err)
	}
	if game.Mode != gamecfg.ModeDiscrimination || game.Difficulty != gamecfg.DifficultyHard {
		t.Errorf("game = %+v", game)
	}
	if game.Speed != gamecfg.SpeedNormal {
		t.Errorf("unset speed = %q, want the default", game.Speed)
	}
	if game.QuestionCount != 20 {
		t.Errorf("questions = %d", game.QuestionCount)
	}
	if cfg.PackPath() != "/data/clinic.json" {
		t.Errorf("pack = %q", cfg.PackPath())
	}
}

func TestGameDefaults_RejectsBadValues(t *testing.T) {
	path := writeConfig(t, `
[game]
mode = "karaoke"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, err := cfg.GameDefaults(); err == nil {
		t.Fatal("expected validation error for unknown mode")
	}
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[game`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected decode error")
	}
}
