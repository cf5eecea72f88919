// Package pantry talks to the Pantry JSON-storage REST API. Each basket lives
// at {apiURL}/{pantryID}/basket/{name} and supports GET, POST (create or
// overwrite) and DELETE.
package pantry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody bounds how much of a failed response is kept on StatusError.
const maxErrorBody = 512

type Client struct {
	http     *http.Client
	apiURL   string
	pantryID string
	pace     *throttle
}

// New builds a client. A nil httpClient uses http.DefaultClient, so request
// timeouts are whatever the default transport applies.
func New(httpClient *http.Client, apiURL, pantryID string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		http:     httpClient,
		apiURL:   strings.TrimSpace(strings.TrimRight(strings.TrimSpace(apiURL), "/")),
		pantryID: strings.TrimSpace(pantryID),
	}
}

// SetMinInterval spaces requests at least d apart. Zero disables pacing.
func (c *Client) SetMinInterval(d time.Duration) {
	c.pace = newThrottle(d)
}

// BasketURL returns the endpoint for the named basket.
func (c *Client) BasketURL(name string) string {
	return c.apiURL + "/" + url.PathEscape(c.pantryID) + "/basket/" + url.PathEscape(name)
}

// Get returns the raw JSON document stored in the basket. A missing basket
// yields an error matching ErrNotFound.
func (c *Client) Get(ctx context.Context, name string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, name, nil)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(body)
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("get basket %q: response is not valid JSON", name)
	}
	return json.RawMessage(trimmed), nil
}

// Post replaces the basket's content with payload, creating the basket when
// it does not exist yet.
func (c *Client) Post(ctx context.Context, name string, payload json.RawMessage) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return fmt.Errorf("post basket %q: payload is required", name)
	}
	if !json.Valid(payload) {
		return fmt.Errorf("post basket %q: payload is not valid JSON", name)
	}
	_, err := c.do(ctx, http.MethodPost, name, payload)
	return err
}

// Delete removes the basket.
func (c *Client) Delete(ctx context.Context, name string) error {
	_, err := c.do(ctx, http.MethodDelete, name, nil)
	return err
}

func (c *Client) do(ctx context.Context, method, name string, payload []byte) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, ErrNotConfigured
	}
	if c.apiURL == "" || c.pantryID == "" {
		return nil, ErrNotConfigured
	}
	if name == "" {
		return nil, fmt.Errorf("%s basket: name is required", strings.ToLower(method))
	}
	if err := c.pace.wait(ctx); err != nil {
		return nil, fmt.Errorf("%s basket %q: %w", strings.ToLower(method), name, err)
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BasketURL(name), body)
	if err != nil {
		return nil, fmt.Errorf("%s basket %q: %w", strings.ToLower(method), name, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s basket %q: %w", strings.ToLower(method), name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s basket %q: read response: %w", strings.ToLower(method), name, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := strings.TrimSpace(string(raw))
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, &StatusError{
			Method:     method,
			Basket:     name,
			StatusCode: resp.StatusCode,
			Body:       snippet,
		}
	}
	return raw, nil
}
