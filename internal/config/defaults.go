package config

import (
	_ "embed"
)

//go:embed defaults/pipes.yaml
var defaultSaverYAML []byte

// DefaultSaverConfig returns the default screensaver configuration.
func DefaultSaverConfig() SaverConfig {
	return SaverConfig{
		Animation: AnimationConfig{
			Pipes:      1,
			TurnChance: 13,
			ResetAfter: 2000,
			Policy:     "wrap",
			Style:      "heavy",
			Palette:    "classic",
		},
		Screen: ScreenConfig{
			FPS: 75,
		},
	}
}
