// Package teatest drives bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the Driver feeds messages straight
// into Update and resolves the returned commands inline, so a test can
// press keys and inspect View output without goroutines or timing.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain bounds command resolution so a model that keeps emitting
// commands cannot loop a test forever.
const maxDrain = 100

// cmdWait is how long a command may run before the driver gives up on
// it. Real commands in this codebase return immediately, while cursor
// blink timers block for roughly half a second, so a short wait cleanly
// drops the blockers.
const cmdWait = 10 * time.Millisecond

// Driver holds a model under test and steps it through messages.
type Driver struct {
	t     *testing.T
	Model tea.Model

	// Quitting reports that tea.Quit was issued. The bubbletea runtime
	// normally swallows tea.QuitMsg before the model sees it, so the
	// driver records it here instead of relying on model state.
	Quitting bool
}

// Option adjusts a Driver at construction time.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before the test starts sending
// input, the same way a real terminal would on startup.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.t.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model in a Driver. Call DrainInit before sending input so
// the model's Init command runs.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{t: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command to completion.
func (d *Driver) DrainInit() {
	d.t.Helper()
	d.resolve(d.Model.Init(), 0)
}

// Send pushes msg through Update and resolves whatever command comes
// back. After quit it is a no-op.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.resolve(cmd, 0)
}

// PressKey sends a single printable key.
func (d *Driver) PressKey(r rune) {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// PressUp sends the up arrow.
func (d *Driver) PressUp() {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the down arrow.
func (d *Driver) PressDown() {
	d.t.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// Type sends s one key at a time.
func (d *Driver) Type(s string) {
	d.t.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View renders the model as it stands now.
func (d *Driver) View() string {
	return d.Model.View()
}

// resolve executes cmd, routes the resulting message back into the
// model, and repeats until the command chain is exhausted.
func (d *Driver) resolve(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrain {
		d.t.Logf("teatest: stopped after %d chained commands", maxDrain)
		return
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range m {
			if sub != nil {
				d.resolve(sub, depth+1)
			}
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.resolve(next, depth+1)
	}
}

// runCmd executes cmd on its own goroutine and returns nil if it has
// not produced a message within cmdWait.
func runCmd(cmd tea.Cmd) tea.Msg {
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()
	select {
	case msg := <-out:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

// isBlink matches the unexported cursor blink messages from
// bubbles/cursor, which chain into blocking timer commands.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(fmt.Sprintf("%T", msg), "link")
}
