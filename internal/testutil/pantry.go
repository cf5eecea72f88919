package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// PantryPrefix is the path under which the fake server mounts the API, so
// tests exercise a base URL with a path component like the hosted service.
const PantryPrefix = "/apiv1/pantry"

// Call records one request received by FakePantry.
type Call struct {
	Method string
	Pantry string
	Basket string
	Body   string
}

// FakePantry is an in-memory stand-in for the Pantry REST API served over
// httptest. Baskets behave like the hosted service: POST overwrites, GET of a
// missing basket returns 404, DELETE removes.
type FakePantry struct {
	Server *httptest.Server

	mu       sync.Mutex
	baskets  map[string]json.RawMessage
	calls    []Call
	failures map[string][]int
}

// StartFakePantry boots the fake server and closes it when the test ends.
func StartFakePantry(t *testing.T) *FakePantry {
	t.Helper()
	f := &FakePantry{
		baskets:  make(map[string]json.RawMessage),
		failures: make(map[string][]int),
	}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Server.Close)
	return f
}

// APIURL returns the base URL to hand to pantry.New.
func (f *FakePantry) APIURL() string {
	return f.Server.URL + PantryPrefix
}

// Seed stores content for a basket without recording a call.
func (f *FakePantry) Seed(name, content string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.baskets[name] = json.RawMessage(content)
}

// Basket returns the stored content and whether the basket exists.
func (f *FakePantry) Basket(name string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.baskets[name]
	return string(data), ok
}

// Calls returns a copy of every request received so far.
func (f *FakePantry) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns the number of requests received.
func (f *FakePantry) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// FailNext makes the next request matching method and basket answer with the
// given status instead of touching the store. Repeated calls queue up.
func (f *FakePantry) FailNext(method, basket string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := method + " " + basket
	f.failures[key] = append(f.failures[key], status)
}

func (f *FakePantry) serve(w http.ResponseWriter, r *http.Request) {
	pantryID, name, ok := parseBasketPath(r.URL.EscapedPath())
	if !ok {
		http.Error(w, "unknown route", http.StatusNotFound)
		return
	}
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, Call{Method: r.Method, Pantry: pantryID, Basket: name, Body: string(body)})

	key := r.Method + " " + name
	if queued := f.failures[key]; len(queued) > 0 {
		status := queued[0]
		f.failures[key] = queued[1:]
		http.Error(w, fmt.Sprintf("injected failure for %s", name), status)
		return
	}

	switch r.Method {
	case http.MethodGet:
		data, exists := f.baskets[name]
		if !exists {
			http.Error(w, fmt.Sprintf("Could not get basket %s", name), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	case http.MethodPost:
		trimmed := bytes.TrimSpace(body)
		if !json.Valid(trimmed) {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}
		f.baskets[name] = json.RawMessage(trimmed)
		_, _ = fmt.Fprintf(w, "Your Pantry was updated with basket: %s!", name)
	case http.MethodDelete:
		if _, exists := f.baskets[name]; !exists {
			http.Error(w, fmt.Sprintf("Could not delete basket %s", name), http.StatusNotFound)
			return
		}
		delete(f.baskets, name)
		_, _ = fmt.Fprintf(w, "%s was removed from your Pantry!", name)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func parseBasketPath(escaped string) (string, string, bool) {
	rest := strings.TrimPrefix(escaped, PantryPrefix+"/")
	if rest == escaped {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 3 || parts[1] != "basket" {
		return "", "", false
	}
	pantryID, err := url.PathUnescape(parts[0])
	if err != nil {
		return "", "", false
	}
	name, err := url.PathUnescape(parts[2])
	if err != nil || name == "" {
		return "", "", false
	}
	return pantryID, name, true
}
