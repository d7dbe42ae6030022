package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pipes/internal/config"
	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/pipes"
	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

var (
	flagConfig     string
	flagPipes      int
	flagFPS        float64
	flagTurn       int
	flagResetAfter int
	flagTimeout    int
	flagPalette    string
	flagStyle      string
	flagBounce     bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	f.IntVarP(&flagPipes, "pipes", "p", 1, "Number of concurrent pipes (1-32)")
	f.Float64VarP(&flagFPS, "fps", "f", 75, "Frames per second")
	f.IntVarP(&flagTurn, "turn", "s", 13, "Turn probability percent (0-100)")
	f.IntVarP(&flagResetAfter, "reset-after", "r", 2000, "Characters drawn before the canvas resets (0 = never)")
	f.IntVarP(&flagTimeout, "timeout", "t", 0, "Exit after this many seconds (0 = run until quit)")
	f.StringVarP(&flagPalette, "palette", "c", "classic", "Color palette")
	f.StringVar(&flagStyle, "style", "heavy", "Glyph style")
	f.BoolVar(&flagBounce, "bounce", false, "Bounce off edges instead of wrapping")
}

func runSaver(cmd *cobra.Command, _ []string) {
	// Load config file, then let explicit flags override it
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cmd, &cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pipes --help' for usage.")
		os.Exit(1)
	}

	// The screensaver needs a real terminal to draw on
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot determine terminal size: %v\n", err)
		os.Exit(1)
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		FPS:     cfg.Screen.FPS,
		Seed:    flagSeed,
	}

	sim := pipes.New(cfg.Options())

	// Open run-history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run database: %v\n", err)
		// Continue without storage - the screensaver still works
		store = nil
	}

	timeout := time.Duration(flagTimeout) * time.Second
	runErr := tui.Run(sim, store, runtimeCfg, timeout)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running screensaver: %v\n", runErr)
		os.Exit(1)
	}
}

// applyFlags overrides config file values with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.SaverConfig) {
	f := cmd.Flags()
	if f.Changed("pipes") {
		cfg.Animation.Pipes = flagPipes
	}
	if f.Changed("fps") {
		cfg.Screen.FPS = flagFPS
	}
	if f.Changed("turn") {
		cfg.Animation.TurnChance = flagTurn
	}
	if f.Changed("reset-after") {
		cfg.Animation.ResetAfter = flagResetAfter
	}
	if f.Changed("palette") {
		cfg.Animation.Palette = flagPalette
	}
	if f.Changed("style") {
		cfg.Animation.Style = flagStyle
	}
	if f.Changed("bounce") {
		if flagBounce {
			cfg.Animation.Policy = "bounce"
		} else {
			cfg.Animation.Policy = "wrap"
		}
	}
}
