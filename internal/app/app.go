package app

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
	"github.com/atomicstack/pantry-basket-control/internal/pantry"
	"github.com/atomicstack/pantry-basket-control/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	APIURL      string
	PantryID    string
	MinInterval time.Duration
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
}

// NewModel wires the pantry client into a fresh UI model.
func NewModel(cfg Config) *ui.Model {
	client := pantry.New(nil, cfg.APIURL, cfg.PantryID)
	client.SetMinInterval(cfg.MinInterval)
	return ui.NewModel(client, cfg.Width, cfg.Height, cfg.ShowFooter, cfg.Verbose)
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) (err error) {
	defer func() { events.App.Exit(err) }()
	program := tea.NewProgram(NewModel(cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
