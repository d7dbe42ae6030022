package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. Simulations use this to adapt to screen size and for
// deterministic behavior.
type RuntimeConfig struct {
	ScreenW int     // Screen width in characters
	ScreenH int     // Screen height in characters
	FPS     float64 // Frames (simulation ticks) per second
	Seed    int64   // RNG seed for deterministic animation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     75,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// SaverState represents the current state of the screensaver.
// Returned by Simulation.State() to communicate status to the platform.
type SaverState struct {
	CellsDrawn int  // Glyphs drawn since the last canvas reset
	TotalCells int  // Glyphs drawn over the whole session
	Resets     int  // Number of canvas resets so far
	PipeCount  int  // Active pipes
	Paused     bool // Whether the animation is paused
}

// StepResult is returned by Simulation.Step() after each tick.
type StepResult struct {
	State SaverState
}
