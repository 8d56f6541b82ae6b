package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/dmitrijs2005/techkatta/internal/client/models"
	"github.com/dmitrijs2005/techkatta/internal/client/tokens"
	"github.com/dmitrijs2005/techkatta/internal/common"
	"github.com/dmitrijs2005/techkatta/internal/logging"
	"github.com/google/uuid"
)

// retriedKey marks a request that has already been replayed after a token
// refresh. The marker lives in the request's own context so two
// independently-failing requests each get their own refresh attempt.
type retriedKey struct{}

var errNoRefreshToken = errors.New("no refresh token available")

// Transport is an http.RoundTripper that attaches the stored access token
// to every outbound request and performs a one-shot refresh-and-retry when
// the server answers 401.
//
// Recovery protocol:
//  1. A 401 on a not-yet-retried request triggers a read of the refresh
//     token. If the slot is empty the original 401 is returned untouched.
//  2. Otherwise a dedicated, unauthenticated call to the refresh endpoint
//     exchanges it for a fresh pair, both slots are overwritten together,
//     and the original request is replayed exactly once.
//  3. If the refresh call itself fails, both slots are cleared, the
//     session-expired hook fires, and the refresh failure (not the original
//     401) is returned to the caller.
//
// Refresh attempts serialize through a mutex; a request that lost the race
// reuses the pair the winner stored instead of issuing a second network
// call.
type Transport struct {
	base       http.RoundTripper
	refreshURL string
	tokens     tokens.Repository
	log        logging.Logger

	refreshMu sync.Mutex
	onExpired func()
}

func NewTransport(base http.RoundTripper, baseURL string, repo tokens.Repository, log logging.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		base:       base,
		refreshURL: strings.TrimRight(baseURL, "/") + refreshPath,
		tokens:     repo,
		log:        log,
	}
}

// OnSessionExpired registers the hook invoked after a failed refresh has
// cleared the stored credentials. The CLI uses it to drop back to the login
// prompt, the way the browser build navigates to /login.
func (t *Transport) OnSessionExpired(fn func()) {
	t.onExpired = fn
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	access, err := t.tokens.Get(ctx, tokens.SlotAccess)
	if err != nil {
		return nil, err
	}

	out := req.Clone(ctx)
	out.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	if access != "" {
		out.Header.Set(common.AuthHeaderName, common.BearerPrefix+access)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized || ctx.Value(retriedKey{}) != nil {
		return resp, nil
	}
	if req.Body != nil && req.GetBody == nil {
		// The body cannot be replayed, so neither can the request.
		return resp, nil
	}

	newAccess, err := t.refresh(ctx, access)
	if err != nil {
		if errors.Is(err, errNoRefreshToken) {
			return resp, nil
		}
		_ = resp.Body.Close()
		return nil, err
	}
	_ = resp.Body.Close()
	_ = newAccess // the retry re-reads the slot, which now holds this value

	retry := req.Clone(context.WithValue(ctx, retriedKey{}, true))
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	return t.RoundTrip(retry)
}

// refresh exchanges the stored refresh token for a fresh pair and persists
// it. staleAccess is the access token the failing request carried: if the
// stored token already differs, another request refreshed while we waited
// on the lock and no network call is needed.
func (t *Transport) refresh(ctx context.Context, staleAccess string) (string, error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	current, err := t.tokens.Get(ctx, tokens.SlotAccess)
	if err != nil {
		return "", err
	}
	if current != "" && current != staleAccess {
		return current, nil
	}

	refreshToken, err := t.tokens.Get(ctx, tokens.SlotRefresh)
	if err != nil {
		return "", err
	}
	if refreshToken == "" {
		return "", errNoRefreshToken
	}

	pair, err := t.callRefresh(ctx, refreshToken)
	if err != nil {
		t.log.Warn(ctx, "session refresh failed, clearing credentials", "error", err)
		if cerr := t.tokens.Clear(ctx); cerr != nil {
			t.log.Error(ctx, "failed to clear credentials", "error", cerr)
		}
		if t.onExpired != nil {
			t.onExpired()
		}
		return "", fmt.Errorf("%w: %v", common.ErrSessionExpired, err)
	}

	if err := t.tokens.SetPair(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return "", err
	}
	t.log.Info(ctx, "session tokens refreshed")
	return pair.AccessToken, nil
}

// callRefresh POSTs the refresh token to the refresh endpoint, bypassing
// token injection so the call itself cannot recurse into another refresh.
func (t *Transport) callRefresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	body, err := json.Marshal(models.RefreshRequest{RefreshToken: refreshToken})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("refresh endpoint returned %s", resp.Status)
	}

	var pair models.TokenPair
	if err := json.NewDecoder(resp.Body).Decode(&pair); err != nil {
		return nil, fmt.Errorf("failed to decode refresh response: %w", err)
	}
	return &pair, nil
}
