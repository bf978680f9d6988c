// Package testing provides test utilities for the terminal widgets.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer drives a Bubble Tea model without a terminal, recording the
// messages it was sent, the commands it returned and its last view.
type TestRenderer struct {
	Output      string
	Commands    []tea.Cmd
	Messages    []tea.Msg
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Render captures the model's view.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and renders the result.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.Messages = append(r.Messages, msg)
	r.UpdateCount++

	next, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}
	r.Output = next.View()
	return next, cmd
}

// Send applies msgs in order and returns the final model.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// ProcessCommands runs the pending commands, feeding each resulting message
// back into the model. Batched commands are expanded.
func (r *TestRenderer) ProcessCommands(model tea.Model) (tea.Model, []tea.Msg) {
	var out []tea.Msg
	pending := r.Commands
	r.Commands = nil

	for len(pending) > 0 {
		cmd := pending[0]
		pending = pending[1:]
		if cmd == nil {
			continue
		}
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			pending = append(pending, batch...)
			continue
		}
		if msg == nil {
			continue
		}
		out = append(out, msg)
		model, _ = r.Update(model, msg)
	}
	r.Commands = nil
	return model, out
}

// LastCommand returns the most recent command, or nil.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

// StripANSI returns the last view without escape codes.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the last view split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	*r = TestRenderer{}
}
