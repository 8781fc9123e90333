// Package client is a Go API client for the weigh-room service. It keeps the
// school's session explicitly and refreshes it before expiry and once after a
// 401.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const DefaultRefreshBefore = 30 * time.Minute

var ErrNotLoggedIn = errors.New("not logged in")

// APIError is a non-2xx answer from the service.
type APIError struct {
	Status  int
	Message string
	Details []string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the service.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL string
	http    *http.Client

	// RefreshBefore is how long before expiry a call first refreshes the token.
	RefreshBefore time.Duration

	now     func() time.Time
	mu      sync.Mutex
	session *Session
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          httpClient,
		RefreshBefore: DefaultRefreshBefore,
		now:           time.Now,
	}
}

func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SetSession restores a session saved earlier, or clears it with nil.
func (c *Client) SetSession(s *Session) {
	c.mu.Lock()
	c.session = s
	c.mu.Unlock()
}

func (c *Client) Logout() { c.SetSession(nil) }

type authResponse struct {
	Token  string `json:"token"`
	School School `json:"school"`
}

func (c *Client) Login(ctx context.Context, code, password string) (*Session, error) {
	var out authResponse
	err := c.send(ctx, http.MethodPost, "/api/auth/login", "", map[string]string{"code": code, "password": password}, &out)
	if err != nil {
		return nil, err
	}
	s, err := NewSession(out.Token, out.School)
	if err != nil {
		return nil, err
	}
	c.SetSession(s)
	return s, nil
}

// Refresh exchanges the current token for a new one. A rejected refresh clears
// the session.
func (c *Client) Refresh(ctx context.Context) error {
	cur := c.Session()
	if cur == nil {
		return ErrNotLoggedIn
	}

	var out authResponse
	if err := c.send(ctx, http.MethodPost, "/api/auth/refresh", cur.Token, nil, &out); err != nil {
		if IsUnauthorized(err) {
			c.SetSession(nil)
		}
		return err
	}

	s, err := NewSession(out.Token, out.School)
	if err != nil {
		return err
	}
	c.SetSession(s)
	return nil
}

// call performs an authenticated request, refreshing ahead of expiry and
// retrying once after a 401.
func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	s := c.Session()
	if s == nil {
		return ErrNotLoggedIn
	}

	if s.RefreshDue(c.now(), c.RefreshBefore) {
		if err := c.Refresh(ctx); err != nil {
			return err
		}
		s = c.Session()
	}

	err := c.send(ctx, method, path, s.Token, body, out)
	if !IsUnauthorized(err) {
		return err
	}

	if rerr := c.Refresh(ctx); rerr != nil {
		return err
	}
	return c.send(ctx, method, path, c.Session().Token, body, out)
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var e struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			apiErr.Message = e.Error
			apiErr.Details = e.Details
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func withQuery(path string, params url.Values) string {
	if q := params.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
