package todosdk

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

// DefaultVersion is the API version prefix the client talks to.
const DefaultVersion = "v1"

// Client talks to the public endpoints and creates Sessions.
type Client struct {
	BaseURL    string
	Version    string
	HTTPClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		Version: DefaultVersion,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Session returns an authenticated session for an existing token.
func (c *Client) Session(token string) *Session {
	return &Session{client: c, token: token}
}

// Health calls GET /{v}/hc.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/hc", nil, "")
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// HealthDatabase calls GET /{v}/hc/postgres.
func (c *Client) HealthDatabase(ctx context.Context) error {
	resp, err := c.doRequest(ctx, http.MethodGet, "/hc/postgres", nil, "")
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) (*User, error) {
	var out UserPayload
	if err := c.call(ctx, http.MethodPost, "/auth/create", req, "", &out); err != nil {
		return nil, err
	}
	return &out.UserView, nil
}

// Login exchanges credentials for a Session.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*Session, error) {
	var out LoginPayload
	if err := c.call(ctx, http.MethodPost, "/auth/login", req, "", &out); err != nil {
		return nil, err
	}
	return &Session{client: c, token: out.Token, user: out.UserView}, nil
}

func (c *Client) url(path string) string {
	return c.BaseURL + "/" + c.Version + path
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, token string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	return resp, nil
}

// call sends body as JSON and decodes the envelope's data into target.
func (c *Client) call(ctx context.Context, method, path string, body any, token string, target any) error {
	resp, err := c.doRequest(ctx, method, path, body, token)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, target)
}

func decodeEnvelope(resp *http.Response, target any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return parseErrorResponse(resp, bodyBytes)
	}

	env := Response[json.RawMessage]{}
	if err := json.Unmarshal(bodyBytes, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !env.Result {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if target == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

func checkStatusNoContent(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return parseErrorResponse(resp, bodyBytes)
	}
	return nil
}

func escape(s string) string { return url.PathEscape(s) }
