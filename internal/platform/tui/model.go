package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/core"
	"github.com/vovakirdan/tui-pipes/internal/pipes"
	"github.com/vovakirdan/tui-pipes/internal/storage"
)

// Model is the Bubble Tea model driving the screensaver animation loop.
type Model struct {
	sim        *pipes.Simulation
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	timeout    time.Duration
	inputFrame core.InputFrame
	state      core.SaverState
	keyMapper  *KeyMapper
	startedAt  time.Time
	quitting   bool
	runSaved   bool // Whether the session record has been written
}

// NewModel creates a new Bubble Tea model for the given simulation.
// A timeout of zero means the session runs until the user quits.
func NewModel(sim *pipes.Simulation, store *storage.Store, cfg core.RuntimeConfig, timeout time.Duration) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		sim:        sim,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		timeout:    timeout,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the animation.
func (m Model) Init() tea.Cmd {
	m.sim.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.FPS), tea.HideCursor}
	if m.timeout > 0 {
		cmds = append(cmds, timeoutCmd(m.timeout))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case TimeoutMsg:
		return m.shutdown()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if isQuit := m.keyMapper.MapKeyToFrame(msg, &m.inputFrame); isQuit {
		return m.shutdown()
	}
	return m, nil
}

// handleResize processes window resize events.
// The trail survives where it fits; pipes are clamped into the new bounds.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.sim.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.sim.Step(m.inputFrame)
	m.state = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.FPS)
}

// shutdown records the session and quits. Terminal restoration is handled
// by Bubble Tea's alt-screen teardown on every exit path.
func (m Model) shutdown() (tea.Model, tea.Cmd) {
	m.saveRun()
	m.quitting = true
	return m, tea.Quit
}

// saveRun writes the session record, best-effort.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved {
		return
	}
	m.runSaved = true

	opts := m.sim.Options()
	state := m.sim.State()
	//nolint:errcheck // Best-effort save, exit continues regardless
	m.store.SaveRun(storage.RunRecord{
		Palette:    opts.Palette.Name,
		Style:      opts.Style.Name,
		Pipes:      state.PipeCount,
		FPS:        m.config.FPS,
		Duration:   int(time.Since(m.startedAt).Seconds()),
		CellsDrawn: state.TotalCells,
		Resets:     state.Resets,
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.sim.Render(m.screen)

	if m.state.Paused {
		m.drawPauseOverlay()
	}

	return RenderScreen(m.screen)
}

// drawPauseOverlay draws a small centered box over the trail.
func (m Model) drawPauseOverlay() {
	const line1 = "Paused"
	const line2 = "Press P to continue"

	boxW := len(line2) + 4
	boxH := 5
	box := core.NewRect((m.screen.Width()-boxW)/2, (m.screen.Height()-boxH)/2, boxW, boxH)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, line1)
	m.screen.DrawTextCentered(box.Y+3, line2)
}

// Run starts the Bubble Tea program with the given model and blocks until
// the session ends.
func Run(sim *pipes.Simulation, store *storage.Store, cfg core.RuntimeConfig, timeout time.Duration) error {
	model := NewModel(sim, store, cfg, timeout)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Alt screen buffer; restored on any exit path
	)

	_, err := p.Run()
	return err
}
