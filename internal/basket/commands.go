package basket

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/logging/events"
)

var errNoClient = errors.New("pantry client not configured")

func failed(result ActionResult, err error) tea.Cmd {
	result.Err = err
	return func() tea.Msg { return result }
}

// FetchCommand loads the basket's content.
func FetchCommand(ctx Context, name string) tea.Cmd {
	return func() tea.Msg {
		events.Basket.Fetch(name)
		if ctx.Client == nil {
			return LoadResult{Basket: name, Err: errNoClient}
		}
		data, err := ctx.Client.Get(context.Background(), name)
		return LoadResult{Basket: name, Data: data, Err: err}
	}
}

// NewPromptCommand asks the UI to collect the name of a new basket.
func NewPromptCommand(ctx Context) tea.Cmd {
	return func() tea.Msg {
		events.Basket.NewPrompt(len(ctx.Names))
		return FormPrompt{Context: ctx, Action: ActionNew}
	}
}

// RenamePromptCommand asks the UI to collect the new name for the selected basket.
func RenamePromptCommand(ctx Context) tea.Cmd {
	target := ctx.Selected
	if target == "" {
		return failed(ActionResult{Action: ActionRename}, &ValidationError{Action: ActionRename, Reason: reasonNoSelection})
	}
	return func() tea.Msg {
		events.Basket.RenamePrompt(target)
		return FormPrompt{Context: ctx, Action: ActionRename, Target: target, Initial: target}
	}
}

// CreateCommand posts the creation marker to a new basket. Invalid names
// produce a ValidationError without contacting the server.
func CreateCommand(ctx Context, name string) tea.Cmd {
	result := ActionResult{Action: ActionNew, Basket: name}
	if err := ValidateName(ActionNew, ctx.Names, name); err != nil {
		events.Basket.Invalid(ActionNew, name, err.Error())
		return failed(result, err)
	}
	return func() tea.Msg {
		events.Basket.Create(name)
		if ctx.Client == nil {
			result.Err = errNoClient
			return result
		}
		if err := ctx.Client.Post(context.Background(), name, CreationMarker); err != nil {
			result.Err = err
			return result
		}
		result.Data = CreationMarker
		result.Info = fmt.Sprintf("Created basket %s", name)
		return result
	}
}

// SaveCommand overwrites the selected basket with the parsed input.
func SaveCommand(ctx Context, input string) tea.Cmd {
	target := ctx.Selected
	result := ActionResult{Action: ActionSave, Basket: target}
	if target == "" {
		events.Basket.Invalid(ActionSave, "", reasonNoSelection)
		return failed(result, &ValidationError{Action: ActionSave, Reason: reasonNoSelection})
	}
	payload, wrapped := ParseInput(input)
	return func() tea.Msg {
		events.Basket.Save(target, wrapped)
		if ctx.Client == nil {
			result.Err = errNoClient
			return result
		}
		if err := ctx.Client.Post(context.Background(), target, payload); err != nil {
			result.Err = err
			return result
		}
		result.Data = payload
		result.Info = fmt.Sprintf("Saved %s", target)
		return result
	}
}

// DeleteCommand removes the selected basket from the server.
func DeleteCommand(ctx Context) tea.Cmd {
	target := ctx.Selected
	result := ActionResult{Action: ActionDelete, Basket: target}
	if target == "" {
		events.Basket.Invalid(ActionDelete, "", reasonNoSelection)
		return failed(result, &ValidationError{Action: ActionDelete, Reason: reasonNoSelection})
	}
	return func() tea.Msg {
		events.Basket.Delete(target)
		if ctx.Client == nil {
			result.Err = errNoClient
			return result
		}
		if err := ctx.Client.Delete(context.Background(), target); err != nil {
			result.Err = err
			return result
		}
		result.Info = fmt.Sprintf("Deleted %s", target)
		return result
	}
}

// RenameCommand copies the target basket to name and deletes the target.
// The three steps are not atomic: a failed delete leaves both baskets in
// place and is reported as a PartialRenameError.
func RenameCommand(ctx Context, target, name string) tea.Cmd {
	target = strings.TrimSpace(target)
	result := ActionResult{Action: ActionRename, Basket: target, Target: name}
	if target == "" {
		events.Basket.Invalid(ActionRename, name, reasonNoSelection)
		return failed(result, &ValidationError{Action: ActionRename, Name: name, Reason: reasonNoSelection})
	}
	if err := ValidateName(ActionRename, ctx.Names, name); err != nil {
		events.Basket.Invalid(ActionRename, name, err.Error())
		return failed(result, err)
	}
	return func() tea.Msg {
		if ctx.Client == nil {
			result.Err = errNoClient
			return result
		}
		reqCtx := context.Background()
		data := ctx.Data
		reused := len(data) > 0 && ctx.Selected == target
		if !reused {
			events.Basket.RenameStep(target, name, "read")
			loaded, err := ctx.Client.Get(reqCtx, target)
			if err != nil {
				result.Err = fmt.Errorf("read %s: %w", target, err)
				return result
			}
			data = loaded
		}
		events.Basket.RenameStep(target, name, "copy")
		if err := ctx.Client.Post(reqCtx, name, data); err != nil {
			result.Err = fmt.Errorf("copy %s to %s: %w", target, name, err)
			return result
		}
		events.Basket.RenameStep(target, name, "delete")
		if err := ctx.Client.Delete(reqCtx, target); err != nil {
			result.Err = &PartialRenameError{From: target, To: name, Err: err}
			return result
		}
		events.Basket.Rename(target, name, reused)
		result.Data = data
		result.Info = fmt.Sprintf("Renamed %s to %s", target, name)
		return result
	}
}

// CommandForAction maps a submitted form to the operation it requests.
func CommandForAction(actionID string, ctx Context, target, name string) tea.Cmd {
	switch actionID {
	case ActionRename:
		return RenameCommand(ctx, target, name)
	default:
		return CreateCommand(ctx, name)
	}
}
