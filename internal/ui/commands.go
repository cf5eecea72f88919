package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
	"github.com/atomicstack/pantry-basket-control/internal/ui/command"
)

var pendingVerbs = map[string]string{
	basket.ActionNew:    "Creating",
	basket.ActionSave:   "Saving",
	basket.ActionDelete: "Deleting",
	basket.ActionRename: "Renaming",
}

// runAction marks an operation as pending and hands it to the command bus.
func (m *Model) runAction(actionID, label string, cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	m.pendingID = actionID
	m.pendingLabel = label
	if actionID == basket.ActionRename {
		m.renaming = true
	}
	m.errMsg = ""
	m.forceClearInfo()
	return m.bus.Execute(command.NewRequest(actionID, label, cmd))
}

// onSelectionChanged is the only place a selection starts a fetch.
func (m *Model) onSelectionChanged(previous string) tea.Cmd {
	selected := m.registry.Selected()
	events.Basket.Select(selected, previous)
	m.syncList(true)
	m.dataOffset = 0
	if selected == "" {
		m.content.Clear()
		return nil
	}
	return m.fetchSelected()
}

func (m *Model) fetchSelected() tea.Cmd {
	selected := m.registry.Selected()
	if selected == "" {
		return nil
	}
	m.content.BeginLoad(selected)
	return m.bus.Execute(command.NewRequest(basket.ActionFetch, selected, basket.FetchCommand(m.basketContext(), selected)))
}

// selectBasket changes the selection; re-selecting the current basket is a no-op.
func (m *Model) selectBasket(name string) tea.Cmd {
	previous := m.registry.Selected()
	if !m.registry.Select(name) {
		return nil
	}
	return m.onSelectionChanged(previous)
}

func (m *Model) handleLoadResultMsg(msg tea.Msg) tea.Cmd {
	load, ok := msg.(basket.LoadResult)
	if !ok {
		return nil
	}
	res := m.dispatcher.HandleLoad(load)
	if res.ContentUpdated {
		m.clampDataOffset()
	}
	return nil
}

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(basket.ActionResult)
	if !ok {
		return nil
	}
	if result.Action == m.pendingID {
		m.pendingID = ""
		m.pendingLabel = ""
	}
	if result.Action == basket.ActionRename {
		m.renaming = false
	}
	previous := m.registry.Selected()
	res := m.dispatcher.HandleAction(result)
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		m.forceClearInfo()
		events.Action.Error(res.Err)
		return nil
	}
	m.errMsg = ""
	if res.Info != "" && m.verbose {
		m.setInfo(res.Info)
	}
	events.Action.Success(res.Info)
	if res.ClearInput {
		m.input.Reset()
	}
	if res.RegistryUpdated {
		m.syncList(false)
	}
	switch {
	case res.SelectionChanged:
		return m.onSelectionChanged(previous)
	case res.Refetch:
		return m.fetchSelected()
	}
	return nil
}

func (m *Model) handleFormPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(basket.FormPrompt)
	if !ok {
		return nil
	}
	m.startForm(prompt)
	return nil
}

func pendingText(actionID, label string) string {
	verb, ok := pendingVerbs[actionID]
	if !ok {
		verb = "Running"
	}
	return fmt.Sprintf("%s %s…", verb, label)
}
