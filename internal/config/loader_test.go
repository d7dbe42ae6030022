package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no user config present in CI, Load falls
	// back to the embedded default, which must match the hardcoded one.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
	if cfg.Animation.TurnChance != 13 {
		t.Errorf("default turn_chance = %d, expected 13", cfg.Animation.TurnChance)
	}
	if cfg.Animation.ResetAfter != 2000 {
		t.Errorf("default reset_after = %d, expected 2000", cfg.Animation.ResetAfter)
	}
	if cfg.Screen.FPS != 75 {
		t.Errorf("default fps = %g, expected 75", cfg.Screen.FPS)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "pipes.yaml")

	yaml := `
animation:
  pipes: 4
  turn_chance: 30
  reset_after: 500
  policy: bounce
  style: double
  palette: ocean
screen:
  fps: 30
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("cannot write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}

	if cfg.Animation.Pipes != 4 {
		t.Errorf("pipes = %d, expected 4", cfg.Animation.Pipes)
	}
	if cfg.Animation.Policy != "bounce" {
		t.Errorf("policy = %q, expected bounce", cfg.Animation.Policy)
	}
	if cfg.Animation.Palette != "ocean" {
		t.Errorf("palette = %q, expected ocean", cfg.Animation.Palette)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("custom config should validate, got: %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/pipes.yaml"); err == nil {
		t.Error("Load should fail for a missing explicit path")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SaverConfig)
	}{
		{"pipes too low", func(c *SaverConfig) { c.Animation.Pipes = 0 }},
		{"pipes too high", func(c *SaverConfig) { c.Animation.Pipes = 100 }},
		{"turn chance negative", func(c *SaverConfig) { c.Animation.TurnChance = -1 }},
		{"turn chance over 100", func(c *SaverConfig) { c.Animation.TurnChance = 101 }},
		{"negative reset budget", func(c *SaverConfig) { c.Animation.ResetAfter = -5 }},
		{"unknown policy", func(c *SaverConfig) { c.Animation.Policy = "teleport" }},
		{"unknown style", func(c *SaverConfig) { c.Animation.Style = "comic-sans" }},
		{"unknown palette", func(c *SaverConfig) { c.Animation.Palette = "vantablack" }},
		{"zero fps", func(c *SaverConfig) { c.Screen.FPS = 0 }},
		{"negative fps", func(c *SaverConfig) { c.Screen.FPS = -10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSaverConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate should reject this config")
			}
		})
	}
}

func TestOptionsConversion(t *testing.T) {
	cfg := DefaultSaverConfig()
	cfg.Animation.Policy = "bounce"
	cfg.Animation.Style = "light"
	cfg.Animation.Palette = "mono"

	opts := cfg.Options()
	if opts.Policy.String() != "bounce" {
		t.Errorf("policy = %s, expected bounce", opts.Policy)
	}
	if opts.Style.Name != "light" {
		t.Errorf("style = %s, expected light", opts.Style.Name)
	}
	if opts.Palette.Name != "mono" {
		t.Errorf("palette = %s, expected mono", opts.Palette.Name)
	}
	if opts.TurnChance != cfg.Animation.TurnChance {
		t.Errorf("turn chance = %d, expected %d", opts.TurnChance, cfg.Animation.TurnChance)
	}
}
