package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
)

// Request encapsulates a basket operation ready to run.
type Request struct {
	ID     string
	Action string
	Label  string
	Cmd    tea.Cmd
}

// Bus runs basket operations as Bubble Tea commands while emitting trace logs.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// NewRequest assigns a correlation id to a command.
func NewRequest(action, label string, cmd tea.Cmd) Request {
	return Request{ID: uuid.NewString(), Action: action, Label: label, Cmd: cmd}
}

// Execute wraps the request command, tracing when it is queued and what it produced.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Action, req.Label)
	return func() tea.Msg {
		if req.Cmd == nil {
			events.Command.Skip(req.ID, req.Action, req.Label)
			return nil
		}
		msg := req.Cmd()
		events.Command.Result(req.ID, req.Action, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
