package pipes

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// Palette is a named set of colors that pipes are painted with.
type Palette struct {
	Name   string
	Colors []core.Color
}

// Pick returns a random color from the palette.
func (p Palette) Pick(rng *rand.Rand) core.Color {
	if len(p.Colors) == 0 {
		return core.ColorDefault
	}
	return p.Colors[rng.Intn(len(p.Colors))]
}

// Built-in palettes. "classic" mimics the bright ANSI set the original
// terminal screensavers cycle through.
var palettes = map[string]Palette{
	"classic": {
		Name: "classic",
		Colors: []core.Color{
			core.ColorBrightRed,
			core.ColorBrightGreen,
			core.ColorBrightYellow,
			core.ColorBrightBlue,
			core.ColorBrightMagenta,
			core.ColorBrightCyan,
			core.ColorBrightWhite,
		},
	},
	"rainbow": {
		Name: "rainbow",
		Colors: []core.Color{
			core.ColorRed,
			core.ColorOrange,
			core.ColorYellow,
			core.ColorGreen,
			core.ColorCyan,
			core.ColorBlue,
			core.ColorMagenta,
		},
	},
	"ocean": {
		Name: "ocean",
		Colors: []core.Color{
			core.ColorBlue,
			core.ColorBrightBlue,
			core.ColorCyan,
			core.ColorBrightCyan,
			core.ColorWhite,
		},
	},
	"ember": {
		Name: "ember",
		Colors: []core.Color{
			core.ColorRed,
			core.ColorBrightRed,
			core.ColorOrange,
			core.ColorYellow,
		},
	},
	"mono": {
		Name: "mono",
		Colors: []core.Color{
			core.ColorGray,
			core.ColorWhite,
			core.ColorBrightWhite,
		},
	},
}

// DefaultPalette is the palette used when none is configured.
const DefaultPalette = "classic"

// PaletteByName looks up a palette by name.
func PaletteByName(name string) (Palette, error) {
	p, ok := palettes[name]
	if !ok {
		return Palette{}, fmt.Errorf("pipes: unknown palette %q", name)
	}
	return p, nil
}

// PaletteNames returns the names of all palettes, sorted.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
