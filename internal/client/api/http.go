package api

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
	"time"

	"github.com/dmitrijs2005/techkatta/internal/client/models"
	"github.com/dmitrijs2005/techkatta/internal/client/tokens"
	"github.com/dmitrijs2005/techkatta/internal/common"
	"github.com/dmitrijs2005/techkatta/internal/logging"
)

const (
	registerPath = "/api/v1/auth/register"
	loginPath    = "/api/v1/auth/login"
	refreshPath  = "/api/v1/auth/refresh"
	mePath       = "/api/v1/users/me"
	healthPath   = "/health"
)

// HTTPClient implements Client over the REST API. Session recovery lives in
// the underlying Transport; this layer only shapes requests and decodes
// responses. Note that Login does not persist the returned pair: when
// tokens are written is the auth service's policy, not the client's.
type HTTPClient struct {
	baseURL   string
	http      *http.Client
	transport *Transport
	log       logging.Logger
}

func NewHTTPClient(baseURL string, repo tokens.Repository, timeout time.Duration, log logging.Logger) *HTTPClient {
	baseURL = strings.TrimRight(baseURL, "/")
	tr := NewTransport(nil, baseURL, repo, log)
	return &HTTPClient{
		baseURL:   baseURL,
		transport: tr,
		http:      &http.Client{Transport: tr, Timeout: timeout},
		log:       log,
	}
}

// OnSessionExpired proxies to the underlying Transport.
func (c *HTTPClient) OnSessionExpired(fn func()) {
	c.transport.OnSessionExpired(fn)
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterRequest) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodPost, registerPath, data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	var pair models.TokenPair
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, loginPath, req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, mePath, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, healthPath, nil, nil)
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	}

	return errorFromResponse(resp)
}

// mapError normalizes transport-level failures. Session expiry raised by
// the Transport passes through as-is; everything else counts as the server
// being unreachable.
func (c *HTTPClient) mapError(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		err = uerr.Err
	}
	if errors.Is(err, common.ErrSessionExpired) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
}

func errorFromResponse(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &payload)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return newUnauthorizedError(resp.StatusCode, payload.Detail)
	case resp.StatusCode == http.StatusNotFound:
		return &APIError{StatusCode: resp.StatusCode, Detail: payload.Detail, sentinel: common.ErrNotFound}
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: %s", common.ErrUnavailable, resp.Status)
	default:
		detail := payload.Detail
		if detail == "" {
			detail = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Detail: detail}
	}
}
