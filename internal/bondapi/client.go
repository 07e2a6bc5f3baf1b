// Package bondapi is the REST client for the bond-catalog service. The
// service exposes one narrow endpoint per filter dimension; which endpoint to
// call is decided by the catalog package, and this client only executes the
// resolved request.
package bondapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/folaolaitan/bondctl/internal/catalog"
	"github.com/folaolaitan/bondctl/internal/common"
	"github.com/folaolaitan/bondctl/internal/model"
)

// Client talks to a single bond-catalog server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a catalog API client for the given base URL, e.g.
// "http://localhost:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// StatusError is a non-success HTTP response. Its message is the status line
// the server sent ("404 Not Found"), which is what gets surfaced to the user.
type StatusError struct {
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return e.Status
}

// Unwrap maps well-known status codes onto sentinel errors so callers can
// test with errors.Is.
func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return common.ErrNotFound
	}
	return nil
}

// Fetch executes a resolved catalog request and returns the full record set.
// A response body that is not a JSON array is coerced to the empty set.
func (c *Client) Fetch(ctx context.Context, req catalog.Request) ([]model.Bond, error) {
	body, err := c.get(ctx, req.URL(c.baseURL))
	if err != nil {
		return nil, err
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '[' {
		slog.Debug("non-array list response coerced to empty set", "kind", req.Kind)
		return []model.Bond{}, nil
	}

	var bonds []model.Bond
	if err := json.Unmarshal(body, &bonds); err != nil {
		return nil, fmt.Errorf("failed to decode bond list: %w", err)
	}
	return bonds, nil
}

// FetchAll returns the unfiltered record set.
func (c *Client) FetchAll(ctx context.Context) ([]model.Bond, error) {
	return c.Fetch(ctx, catalog.FetchAll())
}

// Get returns a single bond by id.
func (c *Client) Get(ctx context.Context, id int64) (*model.Bond, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/api/bonds/%d", c.baseURL, id))
	if err != nil {
		return nil, err
	}
	var bond model.Bond
	if err := json.Unmarshal(body, &bond); err != nil {
		return nil, fmt.Errorf("failed to decode bond: %w", err)
	}
	return &bond, nil
}

// Create posts a record without an id; the server assigns one and returns the
// created record.
func (c *Client) Create(ctx context.Context, bond *model.Bond) (*model.Bond, error) {
	if err := bond.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPost, c.baseURL+"/api/bonds", bond)
}

// Update replaces the stored record addressed by the bond's id.
func (c *Client) Update(ctx context.Context, bond *model.Bond) (*model.Bond, error) {
	if !bond.Persisted() {
		return nil, fmt.Errorf("cannot update a bond without an id")
	}
	if err := bond.Validate(); err != nil {
		return nil, err
	}
	return c.send(ctx, http.MethodPut, fmt.Sprintf("%s/api/bonds/%d", c.baseURL, *bond.ID), bond)
}

// Delete removes the record by id. Callers confirm with the user first.
func (c *Client) Delete(ctx context.Context, id int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, fmt.Sprintf("%s/api/bonds/%d", c.baseURL, id), nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to delete bond %d: %w", id, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Status: resp.Status, Code: resp.StatusCode}
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, url string, bond *model.Bond) (*model.Bond, error) {
	payload, err := json.Marshal(bond)
	if err != nil {
		return nil, fmt.Errorf("failed to encode bond: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.Status, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var saved model.Bond
	if err := json.Unmarshal(body, &saved); err != nil {
		return nil, fmt.Errorf("failed to decode saved bond: %w", err)
	}
	return &saved, nil
}

// get issues a GET and returns the raw body, mapping non-2xx statuses to
// StatusError.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Status: resp.Status, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
