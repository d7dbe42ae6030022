package pipes

import "github.com/vovakirdan/tui-pipes/internal/core"

// PipeState captures a single pipe for determinism testing.
type PipeState struct {
	X, Y  int
	Dir   Direction
	Color core.Color
}

// Snapshot captures the complete simulation state for determinism testing
// and replay.
type Snapshot struct {
	Tick       uint64
	CellsDrawn int
	TotalCells int
	Resets     int
	Paused     bool
	Palette    string
	Pipes      []PipeState
}

// Snapshot returns the current simulation snapshot for determinism
// verification.
func (s *Simulation) Snapshot() Snapshot {
	states := make([]PipeState, len(s.pipes))
	for i, p := range s.pipes {
		states[i] = PipeState{X: p.X, Y: p.Y, Dir: p.Dir, Color: p.Color}
	}
	return Snapshot{
		Tick:       s.tick,
		CellsDrawn: s.cellsDrawn,
		TotalCells: s.totalCells,
		Resets:     s.resets,
		Paused:     s.paused,
		Palette:    s.opts.Palette.Name,
		Pipes:      states,
	}
}
