// Package backend implements the remote notes RPC client and response
// envelope normalization.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client invokes operations on the remote notes backend over HTTP.
//
// No client-side timeout or retry is applied at this layer; callers bound
// a call through ctx if they need one.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client targeting the given base URL. token, when
// non-empty, is sent as a bearer token on every call.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 0,
		},
	}
}

// callRequest is the JSON body for POST /call.
type callRequest struct {
	Operation string `json:"operation"`
	Params    any    `json:"params"`
}

// Call executes operation with params and returns the raw response
// envelope. The envelope shape is not contractually fixed; use
// ExtractNotes to unwrap note collections. Transport and non-2xx failures
// return an error and nothing else happens.
func (c *Client) Call(ctx context.Context, operation string, params any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}
	body, err := json.Marshal(callRequest{Operation: operation, Params: params})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/call", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", operation, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%s: unexpected status %d", operation, resp.StatusCode)
	}
	return json.RawMessage(raw), nil
}
