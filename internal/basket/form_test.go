package basket

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeInto(f *Form, text string) {
	for _, r := range text {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestCreateFormBlocksDuplicateName(t *testing.T) {
	form := NewForm(FormPrompt{Context: Context{Names: []string{"logs"}}, Action: ActionNew})
	typeInto(form, "logs")
	if form.Error() != reasonNameExists {
		t.Fatalf("expected duplicate error, got %q", form.Error())
	}
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || done || cancel {
		t.Fatalf("expected enter to be refused, got cmd=%v done=%v cancel=%v", cmd != nil, done, cancel)
	}
}

func TestCreateFormSubmitLeavesCommandToCaller(t *testing.T) {
	form := NewForm(FormPrompt{Context: Context{Names: []string{"logs"}}, Action: ActionNew})
	typeInto(form, "metrics")
	cmd, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !done || cancel {
		t.Fatalf("expected submission, got done=%v cancel=%v", done, cancel)
	}
	if cmd != nil {
		t.Fatalf("expected the form not to build the operation itself")
	}
	if form.PendingLabel() != "metrics" {
		t.Fatalf("unexpected pending label %q", form.PendingLabel())
	}
	submit := CommandForAction(form.ActionID(), Context{Names: []string{"logs"}}, form.Target(), form.Value())
	result, ok := submit().(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult")
	}
	if result.Action != ActionNew || result.Basket != "metrics" {
		t.Fatalf("unexpected result %#v", result)
	}
}

func TestRenameFormStartsWithoutError(t *testing.T) {
	form := NewForm(FormPrompt{
		Context: Context{Names: []string{"old"}, Selected: "old"},
		Action:  ActionRename,
		Target:  "old",
		Initial: "old",
	})
	if form.Error() != "" {
		t.Fatalf("expected no error on open, got %q", form.Error())
	}
	if form.Title() != "Rename old" {
		t.Fatalf("unexpected title %q", form.Title())
	}
	_, done, _ := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if done {
		t.Fatalf("expected renaming to the same name to be refused")
	}
	form.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	typeInto(form, "new")
	if form.PendingLabel() != "old → new" {
		t.Fatalf("unexpected pending label %q", form.PendingLabel())
	}
}

func TestFormEscapeCancels(t *testing.T) {
	form := NewForm(FormPrompt{Action: ActionNew})
	_, done, cancel := form.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if done || !cancel {
		t.Fatalf("expected cancel on escape")
	}
}

func TestFormEmptyNameRefused(t *testing.T) {
	form := NewForm(FormPrompt{Action: ActionNew})
	_, done, _ := form.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if done {
		t.Fatalf("expected empty name to be refused")
	}
	if form.Error() != reasonNameRequired {
		t.Fatalf("expected required error, got %q", form.Error())
	}
}
