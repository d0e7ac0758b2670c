// Package api implements the thin client for the card service backend. Every
// operation is a single request/response pair; expected failure modes
// (auth, ownership, not-found, validation, conflict) come back as a typed
// *Error rather than a panic or a bare status code.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tapfolio/tapfolio/internal/logger"
)

// ErrorKind classifies an API failure.
type ErrorKind int

const (
	KindNetwork    ErrorKind = iota // Transport failure or unexpected condition
	KindAuth                        // 401: authentication required
	KindForbidden                   // 403: wrong owner or non-admin
	KindNotFound                    // 404
	KindValidation                  // 400/422: backend rejected the payload
	KindConflict                    // 409: e.g. card already claimed
)

// Error is the uniform failure shape returned by every client operation. The
// Details payload, when present, carries backend diagnostics for display.
type Error struct {
	Kind    ErrorKind
	Message string
	Details json.RawMessage
}

func (e *Error) Error() string {
	return e.Message
}

// IsNotFound reports whether err is an API not-found error.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsConflict reports whether err is an API conflict error.
func IsConflict(err error) bool { return hasKind(err, KindConflict) }

// IsAuth reports whether err means the caller must authenticate.
func IsAuth(err error) bool { return hasKind(err, KindAuth) }

// IsForbidden reports whether err is an authorization denial.
func IsForbidden(err error) bool { return hasKind(err, KindForbidden) }

func hasKind(err error, kind ErrorKind) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Kind == kind
}

// Client talks to the backend REST API. The bearer token is attached to
// every request; a zero token simply sends unauthenticated requests and lets
// the backend answer 401.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client for the given backend base URL and bearer token.
func New(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Authenticated reports whether the client holds a token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into out (which may be nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindNetwork, Message: fmt.Sprintf("encoding request: %v", err)}
		}
		reader = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, reader, contentType, out)
}

// do issues a request and maps the response through the uniform error shape.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: "A network error occurred."}
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Error("Request %s %s failed: %v", method, path, err)
		return &Error{Kind: KindNetwork, Message: "A network error occurred."}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if resp.StatusCode == http.StatusNoContent || out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			logger.Error("Decoding %s %s response: %v", method, path, err)
			return &Error{Kind: KindNetwork, Message: "A network error occurred."}
		}
		return nil
	}

	return decodeError(resp)
}

// errorBody is the backend's failure envelope.
type errorBody struct {
	Error   string          `json:"error"`
	Details json.RawMessage `json:"details"`
}

// decodeError maps a non-2xx response to a typed *Error. Non-JSON error
// bodies degrade gracefully to a status-derived message.
func decodeError(resp *http.Response) *Error {
	var eb errorBody
	_ = json.NewDecoder(resp.Body).Decode(&eb)

	msg := eb.Error
	if msg == "" {
		msg = fmt.Sprintf("Request failed with status: %d", resp.StatusCode)
	}

	return &Error{
		Kind:    kindFromStatus(resp.StatusCode),
		Message: msg,
		Details: eb.Details,
	}
}

func kindFromStatus(status int) ErrorKind {
	switch status {
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	}
	return KindNetwork
}
