package command

import (
	"github.com/atomicstack/dockmenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates one preview action, typically a click on a rendered
// label.
type Request struct {
	ID    string
	Label string
	Run   func() (string, error)
}

// Result is the message delivered back to the model once a request ran.
type Result struct {
	ID    string
	Label string
	Info  string
	Err   error
}

// Bus coordinates the execution of preview actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a request into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Run == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		info, err := req.Run()
		if err != nil {
			events.Action.Error(err)
		} else {
			events.Command.Result(req.ID, req.Label, info)
		}
		return Result{ID: req.ID, Label: req.Label, Info: info, Err: err}
	}
}
