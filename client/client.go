// Package client talks to a wargame server over its JSON API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wargame/game"
	"wargame/gamemaster"
	"wargame/metrics"
)

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Code, e.Body)
}

// Unwrap lets callers match a missing game with errors.Is(err, gamemaster.ErrNotFound).
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return gamemaster.ErrNotFound
	}
	return nil
}

type Client struct {
	serverURL string
	http      *http.Client
}

// New returns a client for the server at serverURL. A nil httpClient uses http.DefaultClient.
func New(serverURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		serverURL: strings.TrimRight(serverURL, "/"),
		http:      httpClient,
	}
}

func (c *Client) CreateGame(ctx context.Context, players int) (gamemaster.View, error) {
	var view gamemaster.View
	err := c.do(ctx, http.MethodPost, "/games", map[string]int{"players": players}, &view)
	return view, err
}

func (c *Client) Game(ctx context.Context, id string) (gamemaster.View, error) {
	var view gamemaster.View
	err := c.do(ctx, http.MethodGet, "/games/"+id, nil, &view)
	return view, err
}

// SendAction dispatches one action and returns the updated game.
func (c *Client) SendAction(ctx context.Context, id string, action game.Action) (gamemaster.View, error) {
	var view gamemaster.View
	err := c.do(ctx, http.MethodPost, "/games/"+id+"/actions", action, &view)
	return view, err
}

// Click sends a board click; the server decides which action it means.
func (c *Client) Click(ctx context.Context, id string, territoryID int) (gamemaster.View, error) {
	var view gamemaster.View
	err := c.do(ctx, http.MethodPost, "/games/"+id+"/click", map[string]int{"territory": territoryID}, &view)
	return view, err
}

func (c *Client) Metrics(ctx context.Context, id string) (metrics.GameMetric, error) {
	var m metrics.GameMetric
	err := c.do(ctx, http.MethodGet, "/games/"+id+"/metrics", nil, &m)
	return m, err
}

func (c *Client) DeleteGame(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/games/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.serverURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
