package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
	"github.com/atomicstack/pantry-basket-control/internal/ui/command"
	uistate "github.com/atomicstack/pantry-basket-control/internal/ui/state"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch m.mode {
	case ModeInput:
		return m.handleInputKey(keyMsg)
	case ModeList:
	default:
		return nil
	}
	switch keyMsg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "tab":
		return m.focusInput()
	case "ctrl+n":
		return m.bus.Execute(command.NewRequest(basket.ActionNew, "prompt", basket.NewPromptCommand(m.basketContext())))
	case "ctrl+r":
		return m.bus.Execute(command.NewRequest(basket.ActionRename, "prompt", basket.RenamePromptCommand(m.basketContext())))
	case "ctrl+d":
		ctx := m.basketContext()
		return m.runAction(basket.ActionDelete, ctx.Selected, basket.DeleteCommand(ctx))
	case "ctrl+s":
		return m.saveInput()
	case "shift+up":
		m.scrollData(-1)
		return nil
	case "shift+down":
		m.scrollData(1)
		return nil
	}
	if m.handleTextInput(keyMsg) {
		return nil
	}
	switch keyMsg.String() {
	case "up":
		m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorBy(-1) })
	case "down":
		m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorBy(1) })
	case "pgup":
		m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorPageUp(m.maxVisibleItems()) })
	case "pgdown":
		m.moveCursor(func(l *uistate.List) bool { return l.MoveCursorPageDown(m.maxVisibleItems()) })
	case "home":
		m.moveCursor((*uistate.List).MoveCursorHome)
	case "end":
		m.moveCursor((*uistate.List).MoveCursorEnd)
	}
	return nil
}

// handleEscapeKey clears an active filter first and quits otherwise.
func (m *Model) handleEscapeKey() tea.Cmd {
	if m.list.Filter != "" {
		before := m.list.FilterCursorPos()
		m.list.ClearFilter()
		m.noteFilterCursorChange(before)
		events.Filter.Cleared()
		m.syncViewport()
		return nil
	}
	return tea.Quit
}

func (m *Model) handleEnterKey() tea.Cmd {
	item, ok := m.list.Current()
	if !ok {
		return nil
	}
	events.UI.ListEnter(item.Name, m.list.Filter)
	before := m.list.FilterCursorPos()
	m.list.ClearFilter()
	m.noteFilterCursorChange(before)
	m.errMsg = ""
	cmd := m.selectBasket(item.Name)
	m.list.CursorTo(item.Name)
	m.syncViewport()
	return cmd
}

func (m *Model) moveCursor(move func(*uistate.List) bool) {
	if move(m.list) {
		events.UI.ListCursor(m.list.Cursor)
	}
	m.syncViewport()
}

// syncList rebuilds the rows from the registry. With follow set the cursor
// jumps to the selected basket.
func (m *Model) syncList(follow bool) {
	selected := m.registry.Selected()
	m.list.UpdateItems(uistate.ItemsFromNames(m.registry.Names(), selected))
	if follow {
		m.list.CursorTo(selected)
	}
	m.syncViewport()
}

func (m *Model) syncViewport() {
	m.list.EnsureCursorVisible(m.maxVisibleItems())
}
