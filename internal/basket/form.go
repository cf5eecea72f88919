package basket

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
)

type formMode int

const (
	formModeCreate formMode = iota
	formModeRename
)

// Form collects a basket name for create and rename.
type Form struct {
	input    textinput.Model
	existing map[string]struct{}
	err      string
	mode     formMode
	target   string
	action   string
	title    string
	help     string
}

func NewForm(prompt FormPrompt) *Form {
	ti := textinput.New()
	ti.Placeholder = "basket-name"
	ti.CharLimit = 128
	ti.Focus()
	if prompt.Initial != "" {
		ti.SetValue(prompt.Initial)
	}
	mode := formModeCreate
	title := "Create Basket"
	help := "Press Enter to create. Esc to cancel."
	target := strings.TrimSpace(prompt.Target)
	if prompt.Action == ActionRename {
		mode = formModeRename
		if target != "" {
			title = fmt.Sprintf("Rename %s", target)
		} else {
			title = "Rename Basket"
		}
		help = "Press Enter to rename. Esc to cancel."
	}
	form := &Form{
		input:  ti,
		mode:   mode,
		target: target,
		action: prompt.Action,
		title:  title,
		help:   help,
	}
	form.SetNames(prompt.Context.Names)
	// a prefilled rename value equals the current name; don't greet the user
	// with an error before they type
	if mode == formModeRename && form.Value() == target {
		form.err = ""
	}
	return form
}

func (f *Form) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *Form) InputView() string { return f.input.View() }
func (f *Form) Error() string     { return f.err }
func (f *Form) Target() string    { return f.target }
func (f *Form) Title() string     { return f.title }
func (f *Form) Help() string      { return f.help }
func (f *Form) IsRename() bool    { return f.mode == formModeRename }

func (f *Form) ActionID() string {
	if f.action != "" {
		return f.action
	}
	return ActionNew
}

func (f *Form) PendingLabel() string {
	name := f.Value()
	if name == "" {
		return f.ActionID()
	}
	if f.IsRename() && f.target != "" {
		return fmt.Sprintf("%s → %s", f.target, name)
	}
	return name
}

// SetCursorMode switches the caret between blinking and static.
func (f *Form) SetCursorMode(mode cursor.Mode) {
	f.input.Cursor.SetMode(mode)
}

// Update feeds a message to the form. It returns the input's own command,
// whether a valid name was submitted, and whether the form was cancelled.
// Submitting does not build the operation; CommandForAction does.
func (f *Form) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = f.validate()
			}
			return nil, false, false
		}
		switch m.Type {
		case tea.KeyEsc:
			if f.IsRename() {
				events.Basket.CancelRename(f.target, events.BasketReasonEscape)
			} else {
				events.Basket.CancelNew(events.BasketReasonEscape)
			}
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if err := f.validateName(value); err != "" {
				f.err = err
				events.Basket.Invalid(f.ActionID(), value, err)
				return nil, false, false
			}
			f.err = ""
			if f.IsRename() {
				events.Basket.SubmitRename(f.target, value)
			} else {
				events.Basket.SubmitNew(value)
			}
			return nil, true, false
		}
	}

	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = f.validate()
	return cmd, false, false
}

// SetNames refreshes the names the form validates against.
func (f *Form) SetNames(names []string) {
	f.existing = make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		f.existing[name] = struct{}{}
	}
	f.err = f.validate()
}

func (f *Form) validate() string {
	return f.validateName(f.Value())
}

func (f *Form) validateName(name string) string {
	names := make([]string, 0, len(f.existing))
	for existing := range f.existing {
		names = append(names, existing)
	}
	if err := ValidateName(f.ActionID(), names, name); err != nil {
		return err.Error()
	}
	return ""
}
