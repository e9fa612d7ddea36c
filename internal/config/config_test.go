package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"snakecity/internal/game"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultConfig()
	if cfg.Window != want.Window || cfg.Difficulty != "normal" {
		t.Fatalf("got %+v", cfg)
	}
	if cfg.Game != game.DefaultSettings() {
		t.Fatalf("game settings differ from defaults: %+v", cfg.Game)
	}
}

func TestLoadFileOverridesPreset(t *testing.T) {
	path := writeFile(t, "snake.yaml", `
difficulty: hard
window:
  width: 800
game:
  enemy_cap: 5
  base_speed: 9.5
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	hard, _ := game.GetDifficultyConfig(game.DifficultyHard)
	if cfg.Game.EnemyCap != 5 {
		t.Fatalf("enemy_cap = %d, want file value 5", cfg.Game.EnemyCap)
	}
	if cfg.Game.MaxHealth != hard.MaxHealth {
		t.Fatalf("max_health = %d, want hard preset %d", cfg.Game.MaxHealth, hard.MaxHealth)
	}
	if cfg.Game.BaseSpeed != 9.5 || cfg.Window.Width != 800 || cfg.Window.Height != 720 {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoadEnvAndFlags(t *testing.T) {
	t.Setenv("SNAKECITY_GAME_COMBO_TIMEOUT", "4.5")
	t.Setenv("SNAKECITY_SEED", "11")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Uint64("seed", 0, "")
	fs.Bool("debug", false, "")
	fs.String("difficulty", "", "")
	if err := fs.Parse([]string{"--seed=77", "--difficulty=easy"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", fs)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.ComboTimeout != 4.5 {
		t.Fatalf("combo_timeout = %v", cfg.Game.ComboTimeout)
	}
	if cfg.Seed != 77 {
		t.Fatalf("seed = %d, want flag value", cfg.Seed)
	}
	if cfg.Debug {
		t.Fatal("unset debug flag overrode the default")
	}
	easy, _ := game.GetDifficultyConfig(game.DifficultyEasy)
	if cfg.Difficulty != "easy" || cfg.Game.EnemyCap != easy.EnemyCap {
		t.Fatalf("difficulty %q cap %d", cfg.Difficulty, cfg.Game.EnemyCap)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"difficulty": "difficulty: nightmare\n",
		"window":     "window:\n  width: 0\n",
		"spacing":    "game:\n  segment_spacing: 0\n",
		"syntax":     "game: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeFile(t, "c.yaml", body), nil); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil); err == nil || !strings.Contains(err.Error(), "reading config") {
		t.Fatalf("missing file err = %v", err)
	}
}

func TestSaveThenLoad(t *testing.T) {
	c := DefaultConfig()
	c.Seed = 1234
	c.Window.Title = "test"
	c.Game.TurnRate = 3.25
	c.Game.ComboBonus = false
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := Save(c, path); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Seed != 1234 || got.Window.Title != "test" || got.Game.TurnRate != 3.25 || got.Game.ComboBonus {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestToMapNestsByTag(t *testing.T) {
	m, err := toMap(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	win, ok := m["window"].(map[string]any)
	if !ok || win["width"] != 1280 {
		t.Fatalf("window = %#v", m["window"])
	}
	g, ok := m["game"].(map[string]any)
	if !ok {
		t.Fatalf("game = %#v", m["game"])
	}
	if g["sample_interval"] != game.DefaultSettings().SampleInterval {
		t.Fatalf("game.sample_interval = %#v", g["sample_interval"])
	}
}
