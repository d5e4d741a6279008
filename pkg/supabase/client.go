// Package supabase provides a minimal HTTP client for the Supabase
// PostgREST data API, scoped to the contact submissions table.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SatyaSire/corporatepm/config"
)

const defaultTable = "contact_submissions"

// Client is a lightweight PostgREST client. Construct it once at
// process start and reuse it across requests.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	table      string
	httpClient *http.Client
}

// New creates a Client from config. A missing service-role key is
// allowed: privileged inserts will fail at call time instead of
// failing startup.
func New(cfg config.SupabaseConfig) *Client {
	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	timeout := 15 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{
		baseURL:    cfg.URL,
		anonKey:    cfg.AnonKey,
		serviceKey: cfg.ServiceRoleKey,
		table:      table,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Insert writes one submission using the service-role key (bypasses
// row-level security) and returns the stored row with the assigned id
// and created_at. The store treats the insert as atomic: on error the
// caller must assume nothing was written.
func (c *Client) Insert(ctx context.Context, sub NewSubmission) (*Submission, error) {
	if c.serviceKey == "" {
		return nil, &StoreError{Op: "insert", Err: ErrNoServiceKey}
	}

	sub.Status = StatusNew

	body, err := json.Marshal([]NewSubmission{sub})
	if err != nil {
		return nil, &StoreError{Op: "insert", Err: fmt.Errorf("marshal payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(), bytes.NewReader(body))
	if err != nil {
		return nil, &StoreError{Op: "insert", Err: err}
	}
	c.setAuth(req, c.serviceKey)
	req.Header.Set("Content-Type", "application/json")
	// Ask PostgREST to echo the inserted row back.
	req.Header.Set("Prefer", "return=representation")

	var rows []Submission
	if serr := c.do(req, "insert", &rows); serr != nil {
		return nil, serr
	}
	if len(rows) == 0 {
		return nil, &StoreError{Op: "insert", Err: errors.New("store returned no representation")}
	}
	return &rows[0], nil
}

// List returns all submissions, newest first. Reads go through the
// anon key.
func (c *Client) List(ctx context.Context) ([]Submission, error) {
	url := c.tableURL() + "?select=*&order=created_at.desc"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	c.setAuth(req, c.anonKey)

	var rows []Submission
	if serr := c.do(req, "list", &rows); serr != nil {
		return nil, serr
	}
	return rows, nil
}

// Ping checks that the table is reachable with the anon key.
func (c *Client) Ping(ctx context.Context) error {
	url := c.tableURL() + "?select=id&limit=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &StoreError{Op: "ping", Err: err}
	}
	c.setAuth(req, c.anonKey)

	var rows []struct {
		ID string `json:"id"`
	}
	if serr := c.do(req, "ping", &rows); serr != nil {
		return serr
	}
	return nil
}

func (c *Client) tableURL() string {
	return c.baseURL + "/rest/v1/" + c.table
}

func (c *Client) setAuth(req *http.Request, key string) {
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
}

// do executes the request and decodes a JSON response into out.
// Non-2xx responses become a StoreError carrying the status and the
// response body (logged upstream, never shown to end users).
func (c *Client) do(req *http.Request, op string, out any) *StoreError {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return &StoreError{Op: op, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return &StoreError{Op: op, Status: res.StatusCode, Err: fmt.Errorf("store rejected request: %s", msg)}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &StoreError{Op: op, Status: res.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
