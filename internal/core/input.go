package core

// Action represents a semantic screensaver action, abstracted from physical
// key presses. The animation works with high-level intents rather than raw
// input.
type Action int

const (
	ActionNone         Action = iota
	ActionPause               // P - pause/unpause the animation
	ActionResetCanvas         // R - clear the canvas and respawn pipes
	ActionAddPipe             // + - add one pipe
	ActionRemovePipe          // - - remove one pipe
	ActionCyclePalette        // C - switch to the next color palette
	ActionQuit                // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionResetCanvas:
		return "ResetCanvas"
	case ActionAddPipe:
		return "AddPipe"
	case ActionRemovePipe:
		return "RemovePipe"
	case ActionCyclePalette:
		return "CyclePalette"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
