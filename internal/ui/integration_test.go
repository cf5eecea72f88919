package ui

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/pantry-basket-control/internal/basket"
	"github.com/atomicstack/pantry-basket-control/internal/logging"
	"github.com/atomicstack/pantry-basket-control/internal/pantry"
	"github.com/atomicstack/pantry-basket-control/internal/state"
	"github.com/atomicstack/pantry-basket-control/internal/testutil"
)

func newTestHarness(t *testing.T, width, height int) (*Harness, *testutil.FakePantry) {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "ui.log"))
	t.Cleanup(func() { logging.Configure("") })
	fake := testutil.StartFakePantry(t)
	client := pantry.New(fake.Server.Client(), fake.APIURL(), "pantry-test")
	return NewHarness(NewModel(client, width, height, false, false)), fake
}

func createBasket(h *Harness, name string) {
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlN})
	h.Type(name)
	h.Key(tea.KeyEnter)
}

func saveInput(h *Harness, text string) {
	h.Key(tea.KeyTab)
	h.Type(text)
	h.Key(tea.KeyEnter)
	h.Key(tea.KeyEsc)
}

func assertData(t *testing.T, m *Model, want string) {
	t.Helper()
	data, status := m.Data()
	if status != state.ContentLoaded {
		t.Fatalf("expected loaded content, got %s", status)
	}
	var got, expected interface{}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("content is not JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &expected); err != nil {
		t.Fatalf("bad expectation: %v", err)
	}
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(expected)
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("expected data %s, got %s", wantJSON, gotJSON)
	}
}

func TestCreateBasketSelectsAndShowsMarker(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "logs")

	m := h.Model()
	if got := m.Names(); len(got) != 1 || got[0] != "logs" {
		t.Fatalf("expected registry [logs], got %v", got)
	}
	if m.Selected() != "logs" {
		t.Fatalf("expected logs selected, got %q", m.Selected())
	}
	assertData(t, m, string(basket.CreationMarker))
	if m.IsLoading() {
		t.Fatalf("expected loading to finish")
	}
	if m.Mode() != ModeList {
		t.Fatalf("expected list mode after submit, got %v", m.Mode())
	}
	if stored, ok := fake.Basket("logs"); !ok || !strings.Contains(stored, "New basket created!") {
		t.Fatalf("expected marker stored on server, got %q", stored)
	}
	if !strings.Contains(h.View(), "New basket created!") {
		t.Fatalf("expected marker in view:\n%s", h.View())
	}
}

func TestCreateRejectsDuplicateWithoutRequest(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "logs")
	calls := fake.CallCount()

	createBasket(h, "logs")
	m := h.Model()
	if m.Mode() != ModeCreateForm {
		t.Fatalf("expected form to stay open on duplicate name, got mode %v", m.Mode())
	}
	if !strings.Contains(h.View(), "Basket already exists") {
		t.Fatalf("expected duplicate error in view:\n%s", h.View())
	}
	h.Key(tea.KeyEsc)
	if m.Mode() != ModeList {
		t.Fatalf("expected escape to close the form")
	}
	if fake.CallCount() != calls {
		t.Fatalf("expected no request for a duplicate name")
	}
	if len(m.Names()) != 1 {
		t.Fatalf("expected registry unchanged, got %v", m.Names())
	}
}

func TestFetchNotFoundShowsEmptySentinel(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	fake.FailNext(http.MethodGet, "ghost", http.StatusNotFound)
	createBasket(h, "ghost")

	m := h.Model()
	if _, status := m.Data(); status != state.ContentEmpty {
		t.Fatalf("expected empty status, got %s", status)
	}
	if m.Err() != "" {
		t.Fatalf("expected no user-visible error, got %q", m.Err())
	}
	if !strings.Contains(h.View(), basket.EmptyMessage) {
		t.Fatalf("expected empty sentinel in view:\n%s", h.View())
	}
	if data, _ := os.ReadFile(logging.Path()); len(data) != 0 {
		t.Fatalf("expected nothing logged for a 404, got %s", data)
	}
}

func TestFetchFailureShowsFailureSentinel(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	fake.FailNext(http.MethodGet, "logs", http.StatusInternalServerError)
	createBasket(h, "logs")

	if _, status := h.Model().Data(); status != state.ContentFailed {
		t.Fatalf("expected failed status, got %s", status)
	}
	if !strings.Contains(h.View(), basket.FailedMessage) {
		t.Fatalf("expected failure sentinel in view:\n%s", h.View())
	}
	data, _ := os.ReadFile(logging.Path())
	if !strings.Contains(string(data), "error fetching data") {
		t.Fatalf("expected fetch failure logged, got %q", data)
	}
}

func TestSaveWrapsPlainTextAndClearsInput(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "logs")
	saveInput(h, "hello")

	stored, _ := fake.Basket("logs")
	if stored != `{"message":"hello"}` {
		t.Fatalf("expected wrapped message stored, got %s", stored)
	}
	m := h.Model()
	if m.InputValue() != "" {
		t.Fatalf("expected input cleared after save, got %q", m.InputValue())
	}
	assertData(t, m, `{"message":"hello"}`)
}

func TestSaveFailureKeepsInputAndData(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "logs")
	fake.FailNext(http.MethodPost, "logs", http.StatusInternalServerError)
	h.Key(tea.KeyTab)
	h.Type("hello")
	h.Key(tea.KeyEnter)

	m := h.Model()
	if m.InputValue() != "hello" {
		t.Fatalf("expected input kept after failed save, got %q", m.InputValue())
	}
	if m.Err() == "" {
		t.Fatalf("expected error after failed save")
	}
	assertData(t, m, string(basket.CreationMarker))
}

func TestSavedDataSurvivesReselection(t *testing.T) {
	h, _ := newTestHarness(t, 0, 0)
	createBasket(h, "logs")
	saveInput(h, `{"level":"info"}`)
	createBasket(h, "other")

	m := h.Model()
	if m.Selected() != "other" {
		t.Fatalf("expected other selected, got %q", m.Selected())
	}
	h.Key(tea.KeyUp)
	h.Key(tea.KeyEnter)
	if m.Selected() != "logs" {
		t.Fatalf("expected logs selected again, got %q", m.Selected())
	}
	assertData(t, m, `{"level":"info"}`)
}

func TestReselectingSelectedBasketDoesNotFetch(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "logs")
	calls := fake.CallCount()
	h.Key(tea.KeyEnter)
	if fake.CallCount() != calls {
		t.Fatalf("expected no fetch when selection does not change")
	}
}

func TestDeleteFallsBackToFirstBasket(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "a")
	createBasket(h, "b")
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlD})

	m := h.Model()
	if got := m.Names(); len(got) != 1 || got[0] != "a" {
		t.Fatalf("expected registry [a], got %v", got)
	}
	if m.Selected() != "a" {
		t.Fatalf("expected fallback to a, got %q", m.Selected())
	}
	if _, ok := fake.Basket("b"); ok {
		t.Fatalf("expected b deleted on server")
	}
	assertData(t, m, string(basket.CreationMarker))

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlD})
	if m.Selected() != "" || len(m.Names()) != 0 {
		t.Fatalf("expected empty registry and no selection, got %v / %q", m.Names(), m.Selected())
	}
	if _, status := m.Data(); status != state.ContentNone {
		t.Fatalf("expected cleared content, got %s", status)
	}
}

func TestRenameCarriesContentToNewName(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "keep")
	createBasket(h, "old")
	saveInput(h, `{"a":1}`)

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlR})
	m := h.Model()
	if !m.IsRenaming() || m.Mode() != ModeRenameForm {
		t.Fatalf("expected rename form open")
	}
	h.Key(tea.KeyCtrlU)
	h.Type("new")
	h.Key(tea.KeyEnter)

	if got := m.Names(); len(got) != 2 || got[0] != "keep" || got[1] != "new" {
		t.Fatalf("expected [keep new], got %v", got)
	}
	if m.Selected() != "new" {
		t.Fatalf("expected new selected, got %q", m.Selected())
	}
	if m.IsRenaming() {
		t.Fatalf("expected rename to finish")
	}
	assertData(t, m, `{"a":1}`)
	if _, ok := fake.Basket("old"); ok {
		t.Fatalf("expected old basket deleted")
	}
	if stored, _ := fake.Basket("new"); stored != `{"a":1}` {
		t.Fatalf("expected content copied to new, got %s", stored)
	}
}

func TestPartialRenameReportsBothBaskets(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	createBasket(h, "old")
	fake.FailNext(http.MethodDelete, "old", http.StatusInternalServerError)

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlR})
	h.Key(tea.KeyCtrlU)
	h.Type("new")
	h.Key(tea.KeyEnter)

	m := h.Model()
	if !strings.Contains(m.Err(), "old") || !strings.Contains(m.Err(), "new") {
		t.Fatalf("expected both names in error, got %q", m.Err())
	}
	if got := m.Names(); len(got) != 1 || got[0] != "old" {
		t.Fatalf("expected registry unchanged, got %v", got)
	}
	if m.Selected() != "old" {
		t.Fatalf("expected selection unchanged, got %q", m.Selected())
	}
}

func TestRenameWithoutSelectionShowsError(t *testing.T) {
	h, fake := newTestHarness(t, 0, 0)
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlR})
	m := h.Model()
	if m.Mode() != ModeList {
		t.Fatalf("expected no form without a selection")
	}
	if m.Err() == "" {
		t.Fatalf("expected validation error")
	}
	if fake.CallCount() != 0 {
		t.Fatalf("expected no requests")
	}
}

func TestListViewportFollowsCursor(t *testing.T) {
	h, _ := newTestHarness(t, 30, 12)
	for _, name := range []string{"b01", "b02", "b03", "b04", "b05", "b06", "b07", "b08"} {
		createBasket(h, name)
	}
	h.Key(tea.KeyHome)
	h.Key(tea.KeyEnter)
	view := h.View()
	if !strings.Contains(view, "b01") {
		t.Fatalf("expected first basket visible after home, view =\n%s", view)
	}
	if strings.Contains(view, "b08") {
		t.Fatalf("expected b08 outside the viewport, view =\n%s", view)
	}
	h.Key(tea.KeyEnd)
	view = h.View()
	if !strings.Contains(view, "b08") {
		t.Fatalf("expected b08 visible after end, view =\n%s", view)
	}
}

func TestSuccessMessagesFollowVerbose(t *testing.T) {
	quiet, _ := newTestHarness(t, 0, 0)
	createBasket(quiet, "logs")
	if info := quiet.Model().currentInfo(); info != "" {
		t.Fatalf("expected no success message without verbose, got %q", info)
	}
	if strings.Contains(quiet.View(), "Created basket logs") {
		t.Fatalf("expected quiet status line, got:\n%s", quiet.View())
	}

	fake := testutil.StartFakePantry(t)
	client := pantry.New(fake.Server.Client(), fake.APIURL(), "pantry-test")
	loud := NewHarness(NewModel(client, 0, 0, false, true))
	createBasket(loud, "logs")
	if info := loud.Model().currentInfo(); info != "Created basket logs" {
		t.Fatalf("expected success message with verbose, got %q", info)
	}
	if !strings.Contains(loud.View(), "Created basket logs") {
		t.Fatalf("expected success message in view, got:\n%s", loud.View())
	}
}
