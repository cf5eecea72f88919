package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

func (m *Model) noteFilterCursorChange(before int) {
	if before != m.list.FilterCursorPos() {
		m.filterCursorDirty = true
	}
}

// filterEdit applies one edit to the filter and keeps the viewport, messages
// and trace log in step with it.
func (m *Model) filterEdit(edit func() bool, trace func()) bool {
	before := m.list.FilterCursorPos()
	if !edit() {
		return false
	}
	m.noteFilterCursorChange(before)
	if trace != nil {
		trace()
	}
	m.syncViewport()
	return true
}

func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	l := m.list
	textChanged := func() {
		m.forceClearInfo()
		m.errMsg = ""
	}
	switch msg.String() {
	case "ctrl+u":
		return m.filterEdit(l.ClearFilter, func() {
			textChanged()
			events.Filter.Cleared()
		})
	case "ctrl+w":
		return m.filterEdit(l.DeleteFilterWordBackward, func() {
			textChanged()
			events.Filter.WordBackspace(l.Filter)
		})
	case "ctrl+a", "ctrl+e":
		end := msg.String() == "ctrl+e"
		return m.filterEdit(func() bool { return l.MoveFilterCursorEnds(end) }, func() {
			events.Filter.Cursor(l.FilterCursor)
		})
	case "alt+b":
		return m.filterEdit(l.MoveFilterCursorWordBackward, func() {
			events.Filter.CursorWord(l.FilterCursor)
		})
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.filterEdit(l.DeleteFilterRuneBackward, func() {
			textChanged()
			events.Filter.Backspace(l.Filter)
		})
	case tea.KeyLeft, tea.KeyRight:
		delta := -1
		if msg.Type == tea.KeyRight {
			delta = 1
		}
		return m.filterEdit(func() bool { return l.MoveFilterCursor(delta) }, func() {
			events.Filter.Cursor(l.FilterCursor)
		})
	case tea.KeySpace:
		return m.appendToFilter(" ")
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				return false
			}
		}
		return m.appendToFilter(string(msg.Runes))
	}
	return false
}

func (m *Model) appendToFilter(text string) bool {
	l := m.list
	return m.filterEdit(func() bool { return l.InsertFilterText(text) }, func() {
		m.forceClearInfo()
		m.errMsg = ""
		events.Filter.Append(l.Filter)
	})
}

// focusInput moves keyboard focus to the pending input line.
func (m *Model) focusInput() tea.Cmd {
	m.mode = ModeInput
	events.Input.Focus(m.registry.Selected())
	return m.input.Focus()
}

func (m *Model) blurInput() {
	m.mode = ModeList
	m.input.Blur()
	events.Input.Blur(len(m.input.Value()))
}

// saveInput overwrites the selected basket with the pending input.
func (m *Model) saveInput() tea.Cmd {
	ctx := m.basketContext()
	return m.runAction(basket.ActionSave, ctx.Selected, basket.SaveCommand(ctx, m.input.Value()))
}

func (m *Model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc", "tab":
		m.blurInput()
		return nil
	case "enter", "ctrl+s":
		return m.saveInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) inputLine() string {
	label := "input » "
	style := styles.InputPrompt
	if m.mode == ModeInput {
		style = styles.InputPromptActive
	}
	if style != nil {
		label = style.Render(label)
	}
	return label + m.input.View()
}

func (m *Model) filterPrompt() string {
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := "» "
	if styles.FilterPrompt != nil {
		prompt = styles.FilterPrompt.Render(prompt)
	}
	if m.list.Filter == "" {
		runes := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(runes[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(runes[1:]))
	}
	runes := []rune(m.list.Filter)
	pos := m.list.FilterCursorPos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune := " "
	after := ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink || m.mode != ModeList {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
