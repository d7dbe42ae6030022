// pipes is a terminal screensaver that animates colored pipe trails.
//
// Usage:
//
//	pipes                    - Run the screensaver
//	pipes palettes           - List color palettes and glyph styles
//	pipes stats              - Show run history
//	pipes serve              - Start SSH server for remote viewing
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible animation
//	--db <path>     - Set database path (default: ~/.pipes/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pipes",
	Short: "Animated pipes screensaver for your terminal",
	Long: `pipes draws animated box-drawing trails that snake across the screen,
turn at random, and wrap or bounce at the edges. Once enough characters
have been drawn the canvas clears and the animation starts over.

Controls:
  P/Space    - Pause
  R          - Clear the canvas
  +/-        - Add/remove a pipe
  C/Tab      - Cycle color palette
  Q/Esc      - Quit

Examples:
  pipes
  pipes -p 5 --fps 60
  pipes -s 25 -c rainbow --style double
  pipes --bounce -t 300
  pipes --config ./my-pipes.yaml`,
	Run: runSaver,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pipes/runs.db", "Path to run-history database")

	// Add subcommands
	rootCmd.AddCommand(palettesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
