// ABOUTME: HTTP client for the Hichhki admin API
// ABOUTME: Attaches bearer credentials and normalizes every response into the API envelope

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/manish201258/Hichhki-admin/internal/tokenstore"
)

// DefaultBaseURL points at a locally running admin API.
const DefaultBaseURL = "http://localhost:3000/api/v1/admin"

// Envelope is the uniform response shape of the admin API. Exactly one of
// Data and Error is populated; a 2xx response that omits the ok flag is
// normalized to OK=true, but an explicit ok:false is always a rejection.
type Envelope struct {
	OK    bool            `json:"ok"`
	Data  json.RawMessage `json:"data,omitempty"`
	Error *APIError       `json:"error,omitempty"`
}

// APIError is an application-level rejection: the server understood the
// request and declined it. Transport failures are plain wrapped errors, so
// callers can tell "could not reach server" from "server said no" with
// errors.As.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// Client is the single point of contact with the admin API. All domain
// operations go through Request so that bearer attachment, envelope
// normalization and error shaping are uniform.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenstore.Store
}

// New creates a client for the API at baseURL. Tokens held in the store are
// attached to every request; no cookie jar is configured, authentication is
// exclusively bearer-token based.
func New(baseURL string, tokens *tokenstore.Store) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens: tokens,
	}
}

// Tokens exposes the credential store backing this client.
func (c *Client) Tokens() *tokenstore.Store {
	return c.tokens
}

// Request performs an HTTP call and normalizes the response into an
// Envelope. contentType is set verbatim when non-empty; multipart callers
// pass the writer's own type so the boundary is preserved.
func (c *Client) Request(ctx context.Context, method, endpoint string, body io.Reader, contentType string) (*Envelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.handleRequestError(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errorFromResponse(resp, data)
	}

	if !isJSON(resp.Header.Get("Content-Type")) {
		return &Envelope{OK: true}, nil
	}

	var raw struct {
		OK      *bool           `json:"ok"`
		Data    json.RawMessage `json:"data"`
		Error   *APIError       `json:"error"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid response from admin API: %w", err)
	}
	env := &Envelope{Data: raw.Data, Error: raw.Error}
	// Tolerant decoding: a 2xx with the ok flag omitted is a success. An
	// explicit ok:false stays a rejection, even when no error object came
	// with it.
	env.OK = raw.OK == nil || *raw.OK
	if env.Error != nil && env.Data == nil {
		env.OK = false
	}
	if !env.OK && env.Error == nil {
		msg := raw.Message
		if msg == "" {
			msg = "request rejected"
		}
		env.Error = &APIError{Message: msg, Status: resp.StatusCode}
	}
	return env, nil
}

// errorFromResponse extracts the most specific failure message available:
// the structured envelope message, a top-level message, then the HTTP status.
func errorFromResponse(resp *http.Response, data []byte) error {
	apiErr := &APIError{Status: resp.StatusCode}
	var body struct {
		Error   *APIError `json:"error"`
		Message string    `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		switch {
		case body.Error != nil && body.Error.Message != "":
			apiErr.Code = body.Error.Code
			apiErr.Message = body.Error.Message
		case body.Message != "":
			apiErr.Message = body.Message
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return apiErr
}

// handleRequestError converts context errors to user-friendly messages
func (c *Client) handleRequestError(ctx context.Context, err error) error {
	if ctx.Err() == context.Canceled {
		return fmt.Errorf("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("request timed out")
	}
	return fmt.Errorf("cannot reach admin API at %s: %w", c.baseURL, err)
}

func isJSON(contentType string) bool {
	return strings.Contains(contentType, "application/json")
}

// get performs a GET and decodes the envelope payload into out.
func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	env, err := c.Request(ctx, http.MethodGet, endpoint, nil, "")
	if err != nil {
		return err
	}
	return decodePayload(env, out)
}

// sendJSON performs a JSON-bodied call and decodes the payload into out.
// Pass nil in for body-less methods like DELETE.
func (c *Client) sendJSON(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
	}
	env, err := c.Request(ctx, method, endpoint, body, "application/json")
	if err != nil {
		return err
	}
	return decodePayload(env, out)
}

// sendMultipart streams a multipart form built by build. The transport sets
// the boundary through the writer's content type; no JSON header is forced.
func (c *Client) sendMultipart(ctx context.Context, method, endpoint string, build func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := build(mw); err != nil {
		mw.Close()
		return fmt.Errorf("failed to build form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}
	env, err := c.Request(ctx, method, endpoint, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	return decodePayload(env, out)
}

// decodePayload unwraps an envelope into out. An ok:false envelope on a 2xx
// response is still a rejection and surfaces its error.
func decodePayload(env *Envelope, out any) error {
	if !env.OK {
		if env.Error != nil {
			return env.Error
		}
		return &APIError{Message: "request rejected"}
	}
	if out == nil || env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("invalid payload from admin API: %w", err)
	}
	return nil
}

// encodeQuery renders list filters as a query string, empty when nil.
func encodeQuery(params url.Values) string {
	if len(params) == 0 {
		return ""
	}
	return "?" + params.Encode()
}
