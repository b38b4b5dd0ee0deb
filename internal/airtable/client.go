// Package airtable is a minimal typed client for the Airtable Web API.
//
// It covers bases, table schemas, records, and the batch record
// endpoints. Every call returns either a decoded value or an *Error
// carrying a structured Kind (authentication, not-found, validation,
// rate-limit, transport). The client holds no state beyond the API key
// and is safe for concurrent use.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the Airtable Web API endpoint.
const DefaultBaseURL = "https://api.airtable.com/v0"

// Client issues authenticated requests against the Airtable API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// NewClient builds a client bound to the given API key. Construction
// performs no network I/O.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Base returns a handle on one base.
func (c *Client) Base(baseID string) *Base {
	return &Base{client: c, ID: baseID}
}

// Table returns a handle on one table, addressed by ID or name.
func (c *Client) Table(baseID, tableIDOrName string) *Table {
	return c.Base(baseID).Table(tableIDOrName)
}

// Bases lists every base the API key can access, following offset
// pagination until exhausted.
func (c *Client) Bases(ctx context.Context) ([]BaseInfo, error) {
	var all []BaseInfo
	offset := ""
	for {
		q := url.Values{}
		setStr(q, "offset", offset)
		var page struct {
			Bases  []BaseInfo `json:"bases"`
			Offset string     `json:"offset"`
		}
		if err := c.do(ctx, http.MethodGet, "/meta/bases", q, nil, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Bases...)
		if page.Offset == "" {
			return all, nil
		}
		offset = page.Offset
	}
}

// do performs one API request. body is JSON-marshaled when non-nil,
// out is JSON-unmarshaled when non-nil. Failures are always *Error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return transportError(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return transportError(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(err)
	}
	if resp.StatusCode >= 400 {
		return errorFromResponse(resp.StatusCode, data)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return transportError(err)
	}
	return nil
}
