package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with blank cells
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("new screen should be blank, got %+v at (%d, %d)", cell, x, y)
			}
		}
	}
}

func TestScreenSetGetCell(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(5, 5, Cell{Rune: '┃', Color: ColorBrightCyan})
	cell := s.GetCell(5, 5)
	if cell.Rune != '┃' {
		t.Errorf("GetCell(5, 5).Rune = %q, expected '┃'", cell.Rune)
	}
	if cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(5, 5).Color = %d, expected bright cyan", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(2, 2, 'X')
	if got := s.GetCell(2, 2); got.Rune != 'X' || got.Color != ColorDefault {
		t.Errorf("Set should store default color, got %+v", got)
	}

	// Out of bounds should be silent
	s.SetCell(-1, 0, Cell{Rune: 'A'})
	s.SetCell(100, 0, Cell{Rune: 'A'})
	s.SetCell(0, -1, Cell{Rune: 'A'})
	s.SetCell(0, 100, Cell{Rune: 'A'})

	// Out of bounds get should return a blank cell
	if s.GetCell(-1, 0) != (Cell{Rune: ' ', Color: ColorDefault}) {
		t.Error("out of bounds GetCell should return blank")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.SetCell(x, y, Cell{Rune: '━', Color: ColorRed})
		}
	}

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != ' ' || cell.Color != ColorDefault {
				t.Errorf("after Clear, expected blank at (%d, %d), got %+v", x, y, cell)
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("after Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	for i, ch := range "Hello" {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi")

	if s.Get(9, 2) != 'H' || s.Get(10, 2) != 'i' {
		t.Errorf("centered text misplaced, row = %q", s.Row(2))
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(10, 10)
	s.SetCell(3, 3, Cell{Rune: '┏', Color: ColorGreen})
	s.SetCell(9, 9, Cell{Rune: '┛', Color: ColorBlue})

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("size = %dx%d after Resize, expected 5x5", s.Width(), s.Height())
	}
	if got := s.GetCell(3, 3); got.Rune != '┏' || got.Color != ColorGreen {
		t.Errorf("content inside new bounds lost: %+v", got)
	}

	// Growing back fills new space with blanks
	s.Resize(10, 10)
	if s.Get(9, 9) != ' ' {
		t.Error("cells outside the shrunk area should not survive a grow")
	}
}

func TestScreenBlit(t *testing.T) {
	src := NewScreen(5, 5)
	src.SetCell(1, 1, Cell{Rune: '━', Color: ColorYellow})

	dst := NewScreen(10, 10)
	dst.Set(8, 8, 'Z')
	dst.Blit(src)

	if got := dst.GetCell(1, 1); got.Rune != '━' || got.Color != ColorYellow {
		t.Errorf("Blit did not copy source cell: %+v", got)
	}
	// Destination cells beyond the source are untouched
	if dst.Get(8, 8) != 'Z' {
		t.Error("Blit should not touch cells outside the source bounds")
	}

	// Blitting a larger source clips
	big := NewScreen(20, 20)
	big.Set(15, 15, 'B')
	dst.Blit(big)
	if dst.Get(9, 9) != big.Get(9, 9) {
		t.Error("Blit should copy overlapping area from a larger source")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	expected := "a  \n  b"
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}

	if rows := strings.Count(s.String(), "\n") + 1; rows != 2 {
		t.Errorf("String() has %d rows, expected 2", rows)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "row1")

	if got := s.Row(1); got != "row1" {
		t.Errorf("Row(1) = %q, expected \"row1\"", got)
	}
	if got := s.Row(5); got != "    " {
		t.Errorf("out of bounds Row should be spaces, got %q", got)
	}
}
