package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pipes/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key        string
		wantAction core.Action
		wantQuit   bool
	}{
		{"q", core.ActionQuit, true},
		{"esc", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"p", core.ActionPause, false},
		{" ", core.ActionPause, false},
		{"r", core.ActionResetCanvas, false},
		{"+", core.ActionAddPipe, false},
		{"=", core.ActionAddPipe, false},
		{"-", core.ActionRemovePipe, false},
		{"_", core.ActionRemovePipe, false},
		{"c", core.ActionCyclePalette, false},
		{"tab", core.ActionCyclePalette, false},
		{"x", core.ActionNone, false},
		{"1", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.wantAction {
			t.Errorf("MapKey(%q) action = %v, expected %v", tt.key, action, tt.wantAction)
		}
		if isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) isQuit = %v, expected %v", tt.key, isQuit, tt.wantQuit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("p"), &frame); quit {
		t.Error("pause key reported as quit")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("frame missing ActionPause after mapping")
	}

	// Unknown keys leave the frame untouched
	frame.Clear()
	km.MapKeyToFrame(keyMsg("x"), &frame)
	if len(frame.Actions) != 0 {
		t.Errorf("unknown key recorded %d actions, expected none", len(frame.Actions))
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("quit key not reported as quit")
	}
}
