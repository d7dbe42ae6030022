package pipes

import (
	"fmt"
	"sort"
)

// Style is a named set of pipe glyphs: two straight segments and four
// corner pieces, indexed by the (previous, new) direction transition.
type Style struct {
	Name string

	// glyphs maps a direction transition to the character drawn at the
	// cell where the transition happens. There is no entry for a 180°
	// reversal; the step logic never produces one.
	glyphs map[[2]Direction]rune
}

// newStyle builds the transition table from the six characters of a glyph
// set. Corner names refer to the arms the character draws: topLeft draws
// down+right, topRight down+left, bottomLeft up+right, bottomRight up+left.
func newStyle(name string, horiz, vert, topLeft, topRight, bottomLeft, bottomRight rune) Style {
	return Style{
		Name: name,
		glyphs: map[[2]Direction]rune{
			// Straight segments
			{DirRight, DirRight}: horiz,
			{DirLeft, DirLeft}:   horiz,
			{DirUp, DirUp}:       vert,
			{DirDown, DirDown}:   vert,

			// Corners: one arm points back where the pipe came from,
			// the other points where it goes next.
			{DirRight, DirDown}: topRight,
			{DirRight, DirUp}:   bottomRight,
			{DirLeft, DirDown}:  topLeft,
			{DirLeft, DirUp}:    bottomLeft,
			{DirUp, DirLeft}:    topRight,
			{DirUp, DirRight}:   topLeft,
			{DirDown, DirLeft}:  bottomRight,
			{DirDown, DirRight}: bottomLeft,
		},
	}
}

// Glyph returns the character for a direction transition.
// The mapping is a pure function of (prev, next).
func (st Style) Glyph(prev, next Direction) rune {
	g, ok := st.glyphs[[2]Direction{prev, next}]
	if !ok {
		// Reversals cannot happen during animation; keep rendering sane
		// if a caller constructs one anyway.
		return '?'
	}
	return g
}

// IsCorner reports whether the transition draws a corner piece.
func (st Style) IsCorner(prev, next Direction) bool {
	return prev != next
}

// Built-in glyph styles.
var styles = map[string]Style{
	"heavy":  newStyle("heavy", '━', '┃', '┏', '┓', '┗', '┛'),
	"light":  newStyle("light", '─', '│', '┌', '┐', '└', '┘'),
	"double": newStyle("double", '═', '║', '╔', '╗', '╚', '╝'),
	"ascii":  newStyle("ascii", '-', '|', '+', '+', '+', '+'),
}

// DefaultStyle is the glyph set used when none is configured.
const DefaultStyle = "heavy"

// StyleByName looks up a glyph style by name.
func StyleByName(name string) (Style, error) {
	st, ok := styles[name]
	if !ok {
		return Style{}, fmt.Errorf("pipes: unknown style %q", name)
	}
	return st, nil
}

// StyleNames returns the names of all glyph styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
