package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/pipes"
)

var palettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List color palettes and glyph styles",
	Long:  `Shows the color palettes and glyph styles the screensaver can use.`,
	Run:   runPalettes,
}

func runPalettes(_ *cobra.Command, _ []string) {
	fmt.Println("Color palettes:")
	for _, name := range pipes.PaletteNames() {
		marker := " "
		if name == pipes.DefaultPalette {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, name)
	}

	fmt.Println()
	fmt.Println("Glyph styles:")
	for _, name := range pipes.StyleNames() {
		st, err := pipes.StyleByName(name)
		if err != nil {
			continue
		}
		marker := " "
		if name == pipes.DefaultStyle {
			marker = "*"
		}
		fmt.Printf("  %s %-8s %s\n", marker, name, sampleTrail(st))
	}

	fmt.Println()
	fmt.Println("* = default. Run 'pipes -c <palette> --style <style>' to use one.")
}

// sampleTrail renders a short demo trail in the given style.
func sampleTrail(st pipes.Style) string {
	var sb strings.Builder
	sb.WriteRune(st.Glyph(pipes.DirRight, pipes.DirRight))
	sb.WriteRune(st.Glyph(pipes.DirRight, pipes.DirRight))
	sb.WriteRune(st.Glyph(pipes.DirRight, pipes.DirDown))
	sb.WriteRune(st.Glyph(pipes.DirDown, pipes.DirRight))
	sb.WriteRune(st.Glyph(pipes.DirRight, pipes.DirUp))
	sb.WriteRune(st.Glyph(pipes.DirUp, pipes.DirRight))
	sb.WriteRune(st.Glyph(pipes.DirRight, pipes.DirRight))
	return sb.String()
}
