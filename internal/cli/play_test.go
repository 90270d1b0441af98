package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/scene"
)

const resizeScene = `
[parent]
width = 1000
height = 1000

[target]
id = "card"
width = 120
height = 45

[controller]
kind = "resize"
handle = "e"
`

func newTestPlayModel(t *testing.T, body string) PlayModel {
	t.Helper()
	sc, err := scene.Decode(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decode scene: %v", err)
	}
	return NewPlayModel(sc, log.New(io.Discard), 10, 10)
}

func update(t *testing.T, m PlayModel, msg tea.Msg) (PlayModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(PlayModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm, cmd
}

func mouse(action tea.MouseAction, col, row int) tea.MouseMsg {
	return tea.MouseMsg{X: col, Y: row, Action: action, Button: tea.MouseButtonLeft}
}

func TestPlayModelDrag(t *testing.T) {
	m := newTestPlayModel(t, dragScene)

	m, _ = update(t, m, mouse(tea.MouseActionPress, 1, canvasTop+1))
	if !m.player.Active() {
		t.Fatal("press on the element did not start a gesture")
	}
	m, _ = update(t, m, mouse(tea.MouseActionMotion, 6, canvasTop+4))
	m, _ = update(t, m, tea.MouseMsg{X: 6, Y: canvasTop + 4, Action: tea.MouseActionRelease})

	if m.Steps != 3 || m.Actions != 1 {
		t.Errorf("steps=%d actions=%d, want 3 and 1", m.Steps, m.Actions)
	}
	if want := (geom.Rect{Left: 50, Top: 30, Width: 40, Height: 40}); m.Frame.Target != want {
		t.Errorf("Target = %+v, want %+v", m.Frame.Target, want)
	}
	if m.Err != nil {
		t.Errorf("Err = %v", m.Err)
	}
}

func TestPlayModelIgnoresPressOffElement(t *testing.T) {
	m := newTestPlayModel(t, dragScene)

	m, _ = update(t, m, mouse(tea.MouseActionPress, 15, canvasTop+8))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, 18, canvasTop+9))
	if m.Steps != 0 || m.player.Active() {
		t.Errorf("steps=%d active=%v, want no gesture", m.Steps, m.player.Active())
	}
}

func TestPlayModelEscapeEndsRotation(t *testing.T) {
	m := newTestPlayModel(t, strings.Replace(dragScene, `kind = "drag"`, `kind = "rotate"`, 1))

	m, _ = update(t, m, mouse(tea.MouseActionPress, 1, canvasTop+1))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.player.Active() {
		t.Error("gesture still active after esc")
	}
}

func TestPlayModelNudgeReadoutExpires(t *testing.T) {
	m := newTestPlayModel(t, resizeScene)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Frame.Readout != "121×45" {
		t.Fatalf("Readout = %q, want 121×45", m.Frame.Readout)
	}
	if cmd == nil {
		t.Fatal("nudge did not schedule a readout tick")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight, Alt: true})
	if m.Frame.Readout != "131×45" {
		t.Errorf("Readout = %q, want 131×45", m.Frame.Readout)
	}

	for i := 0; i < 20 && m.Frame.Readout != ""; i++ {
		m, _ = update(t, m, tickMsg{})
	}
	if m.Frame.Readout != "" {
		t.Errorf("Readout = %q after ticks, want it cleared", m.Frame.Readout)
	}
	if m.Frame.Props["width"] != "131px" {
		t.Errorf("width prop = %q, want 131px", m.Frame.Props["width"])
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newTestPlayModel(t, dragScene)
	m, _ = update(t, m, mouse(tea.MouseActionPress, 1, canvasTop+1))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q did not quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q command is not tea.Quit")
	}
	if m.player.Active() {
		t.Error("quitting left the gesture active")
	}
}

func TestPlayModelView(t *testing.T) {
	m := newTestPlayModel(t, dragScene)
	m, _ = update(t, m, mouse(tea.MouseActionPress, 1, canvasTop+1))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, 6, canvasTop+4))

	view := m.View()
	for _, want := range []string{appName, "Drag Demo", "40×40 @ 50,30", "█"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// 100px tall parent at 10px per row.
	if rows := len(m.canvas()); rows != 10 {
		t.Errorf("canvas rows = %d, want 10", rows)
	}
}

func TestKeyStep(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		key       string
		shift, ok bool
		alt       bool
	}{
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, "ArrowLeft", false, true, false},
		{"alt up", tea.KeyMsg{Type: tea.KeyUp, Alt: true}, "ArrowUp", false, true, true},
		{"shift down", tea.KeyMsg{Type: tea.KeyShiftDown}, "ArrowDown", true, true, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, "Escape", false, true, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := keyStep(tt.msg)
			if ok != tt.ok || s.Key != tt.key || s.Shift != tt.shift || s.Alt != tt.alt {
				t.Errorf("keyStep() = %+v, %v", s, ok)
			}
		})
	}
}

func TestPlayModelYank(t *testing.T) {
	m := newTestPlayModel(t, dragScene)
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}
	yank := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}

	m, _ = update(t, m, yank)
	if m.Notice != "nothing to copy" || copied != "" {
		t.Errorf("yank before any action: notice=%q copied=%q", m.Notice, copied)
	}

	m, _ = update(t, m, mouse(tea.MouseActionPress, 1, canvasTop+1))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, 6, canvasTop+4))
	m, _ = update(t, m, yank)
	if !strings.HasPrefix(copied, "[") || !strings.Contains(copied, `"50px"`) {
		t.Errorf("copied = %q, want the move's resize action", copied)
	}
	if m.Notice != "copied 1 action(s)" {
		t.Errorf("Notice = %q", m.Notice)
	}

	m, _ = update(t, m, mouse(tea.MouseActionMotion, 7, canvasTop+4))
	if m.Notice != "" {
		t.Errorf("Notice = %q after the next step, want it cleared", m.Notice)
	}
}
