package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
)

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.mode != ModeCreateForm && m.mode != ModeRenameForm {
		return false, nil
	}
	if m.form == nil {
		m.mode = ModeList
		return false, nil
	}
	if _, ok := msg.(tea.KeyMsg); !ok {
		// results and resizes still reach their handlers while the form is open
		if m.handlerFor(msg) != nil {
			return false, nil
		}
	}
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyCtrlC {
		return true, tea.Quit
	}
	cmd, done, cancel := m.form.Update(msg)
	if cancel {
		m.closeForm()
		return true, nil
	}
	if done {
		actionID := m.form.ActionID()
		name := m.form.Value()
		target := m.form.Target()
		label := m.form.PendingLabel()
		m.closeForm()
		// validate against the state as it is now, not when the form opened
		submit := basket.CommandForAction(actionID, m.basketContext(), target, name)
		return true, m.runAction(actionID, label, submit)
	}
	return true, cmd
}

func (m *Model) startForm(prompt basket.FormPrompt) {
	prompt.Context = m.basketContext()
	m.form = basket.NewForm(prompt)
	m.form.SetCursorMode(m.cursorMode)
	m.input.Blur()
	if m.form.IsRename() {
		m.mode = ModeRenameForm
	} else {
		m.mode = ModeCreateForm
	}
	m.errMsg = ""
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = ModeList
}

func (m *Model) viewForm(header string) string {
	lines := []string{}
	if header != "" {
		lines = append(lines, styles.Header.Render(header))
	}
	lines = append(lines, m.form.Title(), "", m.form.InputView())
	if err := m.form.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", m.form.Help())
	return strings.Join(lines, "\n")
}
