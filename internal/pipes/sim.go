package pipes

import (
	"math/rand"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

// Pipe count limits for the live add/remove controls.
const (
	MinPipes = 1
	MaxPipes = 32
)

// Options configures a Simulation.
type Options struct {
	Pipes      int            // Number of concurrent pipes (1..32)
	TurnChance int            // Per-tick turn probability in percent (0..100)
	ResetAfter int            // Glyphs drawn before the canvas resets; 0 = unbounded
	Policy     BoundaryPolicy // Edge behavior: wrap or bounce
	Style      Style          // Glyph set
	Palette    Palette        // Color set
}

// DefaultOptions returns the options the screensaver runs with out of
// the box: one pipe, 13% turn chance, canvas reset every 2000 glyphs.
func DefaultOptions() Options {
	style, _ := StyleByName(DefaultStyle)
	palette, _ := PaletteByName(DefaultPalette)
	return Options{
		Pipes:      1,
		TurnChance: 13,
		ResetAfter: 2000,
		Policy:     PolicyWrap,
		Style:      style,
		Palette:    palette,
	}
}

// Simulation owns the pipes and the persistent trail canvas they draw on.
// It advances one cell per pipe per tick; the platform drives ticks at the
// configured frame rate and blits the canvas to the terminal.
type Simulation struct {
	opts Options
	rng  *rand.Rand
	tick uint64

	trail *core.Screen
	pipes []Pipe

	cellsDrawn int // Glyphs since last canvas reset
	totalCells int // Glyphs over the whole session
	resets     int
	paused     bool

	screenW int
	screenH int
}

// New creates a simulation with the given options.
// Out-of-range option values are clamped to their valid ranges.
func New(opts Options) *Simulation {
	opts.Pipes = core.Clamp(opts.Pipes, MinPipes, MaxPipes)
	opts.TurnChance = core.Clamp(opts.TurnChance, 0, 100)
	if opts.ResetAfter < 0 {
		opts.ResetAfter = 0
	}
	if opts.Style.glyphs == nil {
		opts.Style, _ = StyleByName(DefaultStyle)
	}
	if len(opts.Palette.Colors) == 0 {
		opts.Palette, _ = PaletteByName(DefaultPalette)
	}
	return &Simulation{opts: opts}
}

// Reset initializes the simulation for the given screen and seed.
// Called once at start; the canvas starts empty with freshly spawned pipes.
func (s *Simulation) Reset(cfg core.RuntimeConfig) {
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.tick = 0
	s.cellsDrawn = 0
	s.totalCells = 0
	s.resets = 0
	s.paused = false
	s.screenW = core.Max(cfg.ScreenW, 1)
	s.screenH = core.Max(cfg.ScreenH, 1)
	s.trail = core.NewScreen(s.screenW, s.screenH)
	s.spawnPipes(s.opts.Pipes)
}

// spawnPipes replaces the pipe set with n freshly placed pipes.
func (s *Simulation) spawnPipes(n int) {
	s.pipes = make([]Pipe, n)
	for i := range s.pipes {
		s.pipes[i] = s.spawnPipe()
	}
}

// spawnPipe places a single pipe at a random position with a random
// direction and a palette color.
func (s *Simulation) spawnPipe() Pipe {
	return Pipe{
		X:     s.rng.Intn(s.screenW),
		Y:     s.rng.Intn(s.screenH),
		Dir:   Direction(s.rng.Intn(4)),
		Color: s.opts.Palette.Pick(s.rng),
	}
}

// Step advances the animation by one tick: every pipe moves one cell and
// draws its glyph onto the trail canvas.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	s.tick++

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if in.Has(core.ActionResetCanvas) {
		s.resetCanvas()
	}
	if in.Has(core.ActionAddPipe) && len(s.pipes) < MaxPipes {
		s.pipes = append(s.pipes, s.spawnPipe())
	}
	if in.Has(core.ActionRemovePipe) && len(s.pipes) > MinPipes {
		s.pipes = s.pipes[:len(s.pipes)-1]
	}
	if in.Has(core.ActionCyclePalette) {
		s.cyclePalette()
	}

	if s.paused {
		return core.StepResult{State: s.State()}
	}

	for i := 0; i < len(s.pipes); i++ {
		// Reset before drawing so the budget is never exceeded.
		if s.opts.ResetAfter > 0 && s.cellsDrawn >= s.opts.ResetAfter {
			s.resetCanvas()
		}

		p := &s.pipes[i]
		prev, next := p.advance(s.rng, s.opts.TurnChance, s.opts.Policy, s.screenW, s.screenH)
		s.trail.SetCell(p.X, p.Y, core.Cell{
			Rune:  s.opts.Style.Glyph(prev, next),
			Color: p.Color,
		})
		s.cellsDrawn++
		s.totalCells++
	}

	return core.StepResult{State: s.State()}
}

// resetCanvas clears the trail and respawns the pipes at new positions.
// The pipe count is preserved.
func (s *Simulation) resetCanvas() {
	s.trail.Clear()
	s.cellsDrawn = 0
	s.resets++
	s.spawnPipes(len(s.pipes))
}

// cyclePalette switches to the next palette in name order and recolors
// the active pipes. Already drawn trail cells keep their colors.
func (s *Simulation) cyclePalette() {
	names := PaletteNames()
	for i, name := range names {
		if name == s.opts.Palette.Name {
			s.opts.Palette, _ = PaletteByName(names[(i+1)%len(names)])
			break
		}
	}
	for i := range s.pipes {
		s.pipes[i].Color = s.opts.Palette.Pick(s.rng)
	}
}

// Resize adapts the simulation to new screen dimensions.
// The trail is preserved where it fits and pipes are clamped into bounds.
func (s *Simulation) Resize(w, h int) {
	s.screenW = core.Max(w, 1)
	s.screenH = core.Max(h, 1)
	s.trail.Resize(s.screenW, s.screenH)
	for i := range s.pipes {
		s.pipes[i].X = core.Clamp(s.pipes[i].X, 0, s.screenW-1)
		s.pipes[i].Y = core.Clamp(s.pipes[i].Y, 0, s.screenH-1)
	}
}

// Render blits the trail canvas into the destination screen.
func (s *Simulation) Render(dst *core.Screen) {
	dst.Clear()
	dst.Blit(s.trail)
}

// State returns the current animation state.
func (s *Simulation) State() core.SaverState {
	return core.SaverState{
		CellsDrawn: s.cellsDrawn,
		TotalCells: s.totalCells,
		Resets:     s.resets,
		PipeCount:  len(s.pipes),
		Paused:     s.paused,
	}
}

// Options returns a copy of the simulation's effective options.
func (s *Simulation) Options() Options {
	return s.opts
}
