// Package session exchanges credentials for an opaque session token and
// stores it. Nothing else in the application consumes the token.
package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/lukman83/shopfront/internal/httputil"
	"github.com/lukman83/shopfront/internal/models"
)

// ErrInvalidCredentials is returned when the auth service rejects the login.
var ErrInvalidCredentials = errors.New("session: invalid credentials")

// Client talks to the auth endpoint.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient creates an auth client.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{http: httpClient, baseURL: strings.TrimRight(baseURL, "/")}
}

// Login exchanges a username/password for a session. The caller decides
// where the token lands via StoreFor and Credentials.Remember.
func (c *Client) Login(ctx context.Context, creds models.Credentials) (*models.Session, error) {
	payload, err := json.Marshal(creds)
	if err != nil {
		return nil, fmt.Errorf("marshal credentials: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}
	defer resp.Body.Close()

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("read login response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized {
		return nil, ErrInvalidCredentials
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var sess models.Session
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sess.Token == "" {
		return nil, fmt.Errorf("login response carried no token")
	}
	return &sess, nil
}
