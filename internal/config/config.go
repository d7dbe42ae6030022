// Package config provides YAML-based configuration loading and validation
// for the screensaver.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-pipes/internal/pipes"
)

// SaverConfig contains all configuration for the screensaver.
type SaverConfig struct {
	Animation AnimationConfig `yaml:"animation"`
	Screen    ScreenConfig    `yaml:"screen"`
}

// AnimationConfig defines the pipe animation parameters.
type AnimationConfig struct {
	Pipes      int    `yaml:"pipes"`       // Concurrent pipes (1..32)
	TurnChance int    `yaml:"turn_chance"` // Turn probability percent (0..100)
	ResetAfter int    `yaml:"reset_after"` // Glyph budget before canvas reset; 0 = unbounded
	Policy     string `yaml:"policy"`      // "wrap" or "bounce"
	Style      string `yaml:"style"`       // Glyph set name
	Palette    string `yaml:"palette"`     // Color palette name
}

// ScreenConfig defines display parameters.
type ScreenConfig struct {
	FPS float64 `yaml:"fps"` // Frames per second
}

// Validate checks all values for allowed ranges and known names.
// Invalid configuration is fatal at startup.
func (c SaverConfig) Validate() error {
	a := c.Animation
	if a.Pipes < pipes.MinPipes || a.Pipes > pipes.MaxPipes {
		return fmt.Errorf("config: pipes must be in [%d,%d], got %d", pipes.MinPipes, pipes.MaxPipes, a.Pipes)
	}
	if a.TurnChance < 0 || a.TurnChance > 100 {
		return fmt.Errorf("config: turn_chance must be in [0,100], got %d", a.TurnChance)
	}
	if a.ResetAfter < 0 {
		return fmt.Errorf("config: reset_after must be >= 0, got %d", a.ResetAfter)
	}
	if _, ok := pipes.ParsePolicy(a.Policy); !ok {
		return fmt.Errorf("config: unknown policy %q (want wrap or bounce)", a.Policy)
	}
	if _, err := pipes.StyleByName(a.Style); err != nil {
		return fmt.Errorf("config: unknown style %q (available: %v)", a.Style, pipes.StyleNames())
	}
	if _, err := pipes.PaletteByName(a.Palette); err != nil {
		return fmt.Errorf("config: unknown palette %q (available: %v)", a.Palette, pipes.PaletteNames())
	}
	if c.Screen.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %g", c.Screen.FPS)
	}
	return nil
}

// Options converts the animation section into simulation options.
// The config must have been validated first.
func (c SaverConfig) Options() pipes.Options {
	policy, _ := pipes.ParsePolicy(c.Animation.Policy)
	style, _ := pipes.StyleByName(c.Animation.Style)
	palette, _ := pipes.PaletteByName(c.Animation.Palette)
	return pipes.Options{
		Pipes:      c.Animation.Pipes,
		TurnChance: c.Animation.TurnChance,
		ResetAfter: c.Animation.ResetAfter,
		Policy:     policy,
		Style:      style,
		Palette:    palette,
	}
}
