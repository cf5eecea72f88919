// Package basket holds the basket-management workflow: the operations the UI
// triggers against Pantry (fetch, create, save, delete, rename), the input and
// name rules they enforce, and the forms that collect basket names.
//
// Operations are returned as tea.Cmd values. Running a command performs the
// HTTP calls and yields a LoadResult or ActionResult message; applying that
// message to UI state is left to the caller.
package basket

import (
	"context"
	"encoding/json"
)

const (
	ActionFetch  = "basket:fetch"
	ActionNew    = "basket:new"
	ActionSave   = "basket:save"
	ActionDelete = "basket:delete"
	ActionRename = "basket:rename"
)

// CreationMarker is posted as the initial content of a new basket.
var CreationMarker = json.RawMessage(`{"message":"New basket created!"}`)

const (
	EmptyMessage  = "Basket is empty."
	FailedMessage = "Failed to load basket data."
)

// Client is the subset of the Pantry API the workflow needs.
type Client interface {
	Get(ctx context.Context, name string) (json.RawMessage, error)
	Post(ctx context.Context, name string, payload json.RawMessage) error
	Delete(ctx context.Context, name string) error
}

// Context carries the state an operation needs at the moment it is queued.
type Context struct {
	Client   Client
	Names    []string
	Selected string
	// Data is the loaded content of Selected, or nil when nothing usable is
	// loaded for it.
	Data json.RawMessage
}

// Has reports whether name is already known to the session.
func (c Context) Has(name string) bool {
	for _, existing := range c.Names {
		if existing == name {
			return true
		}
	}
	return false
}

// LoadResult is produced by FetchCommand.
type LoadResult struct {
	Basket string
	Data   json.RawMessage
	Err    error
}

// ActionResult communicates the outcome of a create, save, delete or rename.
// For renames Basket is the old name and Target the new one.
type ActionResult struct {
	Action string
	Basket string
	Target string
	Data   json.RawMessage
	Info   string
	Err    error
}

// FormPrompt requests interactive input of a basket name.
type FormPrompt struct {
	Context Context
	Action  string
	Target  string
	Initial string
}
