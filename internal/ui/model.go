package ui

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/data/dispatcher"
	"github.com/atomicstack/pantry-basket-control/internal/state"
	"github.com/atomicstack/pantry-basket-control/internal/theme"
	"github.com/atomicstack/pantry-basket-control/internal/ui/command"
	uistate "github.com/atomicstack/pantry-basket-control/internal/ui/state"
)

type Mode int

const (
	ModeList Mode = iota
	ModeInput
	ModeCreateForm
	ModeRenameForm
)

const headerTitle = "pantry baskets"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the basket manager.
type Model struct {
	list              *uistate.List
	registry          state.RegistryStore
	content           state.ContentStore
	dispatcher        *dispatcher.Dispatcher
	bus               *command.Bus
	client            basket.Client
	mode              Mode
	form              *basket.Form
	input             textinput.Model
	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorMode        cursor.Mode
	pendingID         string
	pendingLabel      string
	renaming          bool
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	dataOffset        int
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	showFooter        bool
	verbose           bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises an empty basket manager talking to client.
func NewModel(client basket.Client, width, height int, showFooter bool, verbose bool) *Model {
	registry := state.NewRegistryStore()
	content := state.NewContentStore()
	m := &Model{
		list:       uistate.NewList(nil),
		registry:   registry,
		content:    content,
		dispatcher: dispatcher.New(registry, content),
		bus:        command.New(),
		client:     client,
		mode:       ModeList,
		cursorMode: cursor.CursorBlink,
		showFooter: showFooter,
		verbose:    verbose,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = `text or {"json": true}`
	m.input = ti

	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return m.filterCursor.Focus()
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}
	if m.mode == ModeInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):          m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):        m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):   m.handleWindowSizeMsg,
		reflect.TypeOf(basket.LoadResult{}):   m.handleLoadResultMsg,
		reflect.TypeOf(basket.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(basket.FormPrompt{}):   m.handleFormPromptMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// SetStaticCursor stops every caret in the UI from blinking.
func (m *Model) SetStaticCursor() {
	m.cursorMode = cursor.CursorStatic
	m.filterCursor.SetMode(cursor.CursorStatic)
	m.input.Cursor.SetMode(cursor.CursorStatic)
	if m.form != nil {
		m.form.SetCursorMode(cursor.CursorStatic)
	}
}

// Names returns the known basket names in display order.
func (m *Model) Names() []string { return m.registry.Names() }

// Selected returns the selected basket, or "" when none is.
func (m *Model) Selected() string { return m.registry.Selected() }

// Data returns the content shown for the selected basket and its status.
func (m *Model) Data() (json.RawMessage, state.ContentStatus) {
	return m.content.Data(), m.content.Status()
}

// IsLoading reports whether a fetch for the selected basket is in flight.
func (m *Model) IsLoading() bool { return m.content.Loading() }

// IsRenaming reports whether the rename form is open or a rename is running.
func (m *Model) IsRenaming() bool {
	return m.mode == ModeRenameForm || m.renaming
}

func (m *Model) Mode() Mode         { return m.mode }
func (m *Model) Err() string        { return m.errMsg }
func (m *Model) InputValue() string { return m.input.Value() }

// basketContext snapshots the state basket commands need. Data is only
// offered when it belongs to the selected basket and was actually loaded.
func (m *Model) basketContext() basket.Context {
	ctx := basket.Context{
		Client:   m.client,
		Names:    m.registry.Names(),
		Selected: m.registry.Selected(),
	}
	if m.content.Basket() == ctx.Selected && m.content.Status() == state.ContentLoaded {
		ctx.Data = m.content.Data()
	}
	return ctx
}
