// Package api is the client-side gateway to the marketplace REST
// backend. Each call is one-shot: no retry, no caching. Failures are
// normalized into APIError so screens can surface the server's message
// at the point of the failing action.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// APIError carries the status and message of a failed request. Status 0
// means the request never produced a response (transport failure).
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

const genericMessage = "request failed, please try again"

// Client issues JSON requests against a configured base endpoint,
// attaching the bearer credential when one is supplied.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Do performs one request. A non-nil body is serialized as JSON; a
// non-empty credential is attached as an Authorization bearer header.
// On a non-success response the server's error message is extracted from
// the {"error": ...} envelope, falling back to a generic message.
func (c *Client) Do(ctx context.Context, method, path string, body any, credential string) (json.RawMessage, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &APIError{Status: 0, Message: genericMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Status: resp.StatusCode, Message: genericMessage}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{Status: resp.StatusCode, Message: serverMessage(raw)}
	}
	return raw, nil
}

// serverMessage pulls the human-readable message out of an error
// response body.
func serverMessage(raw []byte) string {
	var envelope struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Detail != "" {
			return envelope.Detail
		}
	}
	return genericMessage
}

// LoginUser is the identity block of a login response.
type LoginUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        LoginUser `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	raw, err := c.Do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, err
	}

	var result LoginResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &APIError{Status: 0, Message: genericMessage}
	}
	return &result, nil
}

// FetchSettings retrieves the settings blob for one admin category.
func (c *Client) FetchSettings(ctx context.Context, category, credential string) (map[string]any, error) {
	raw, err := c.Do(ctx, http.MethodGet, "/api/admin/settings/"+category, nil, credential)
	if err != nil {
		return nil, err
	}

	blob := map[string]any{}
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, &APIError{Status: 0, Message: genericMessage}
	}
	return blob, nil
}

// SaveSettings replaces the settings blob for one admin category.
func (c *Client) SaveSettings(ctx context.Context, category string, blob map[string]any, credential string) error {
	_, err := c.Do(ctx, http.MethodPut, "/api/admin/settings/"+category, blob, credential)
	return err
}
