package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/techkatta/internal/client/models"
	"github.com/dmitrijs2005/techkatta/internal/client/tokens"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupRepo(t *testing.T) tokens.Repository {
	t.Helper()
	db, err := sql.Open("sqlite", "file:authsvc?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE tokens (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return tokens.NewSQLiteRepository(db)
}

func getToken(t *testing.T, repo tokens.Repository, slot string) string {
	t.Helper()
	v, err := repo.Get(context.Background(), slot)
	require.NoError(t, err)
	return v
}

// ---- fake client ----

// fakeClient implements api.Client for AuthService unit tests.
type fakeClient struct {
	CloseErr    error
	RegisterErr error
	RegisterRet *models.User

	LoginRet *models.TokenPair
	LoginErr error

	UserRet *models.User
	UserErr error

	PingErr error

	// recorded arguments
	LastRegisterData models.RegisterRequest
	LastLoginEmail   string
	LastLoginPass    string

	UserCalls int
}

func (f *fakeClient) Close() error { return f.CloseErr }

func (f *fakeClient) Register(ctx context.Context, data models.RegisterRequest) (*models.User, error) {
	f.LastRegisterData = data
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.TokenPair, error) {
	f.LastLoginEmail = email
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) GetCurrentUser(ctx context.Context) (*models.User, error) {
	f.UserCalls++
	return f.UserRet, f.UserErr
}

func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

// ---- TESTS ----

func TestLogin_Success_PersistsPair(t *testing.T) {
	repo := setupRepo(t)
	fc := &fakeClient{LoginRet: &models.TokenPair{AccessToken: "T1", RefreshToken: "R1", TokenType: "bearer"}}
	svc := NewAuthService(fc, repo)

	pair, err := svc.Login(context.Background(), "a@b.edu", "pw123456")
	require.NoError(t, err)
	require.Equal(t, "T1", pair.AccessToken)

	require.Equal(t, "a@b.edu", fc.LastLoginEmail)
	require.Equal(t, "pw123456", fc.LastLoginPass)

	require.Equal(t, "T1", getToken(t, repo, tokens.SlotAccess))
	require.Equal(t, "R1", getToken(t, repo, tokens.SlotRefresh))
}

func TestLogin_Failure_PersistsNothing(t *testing.T) {
	repo := setupRepo(t)
	fc := &fakeClient{LoginErr: errors.New("bad creds")}
	svc := NewAuthService(fc, repo)

	_, err := svc.Login(context.Background(), "a@b.edu", "wrong")
	require.Error(t, err)

	require.Equal(t, "", getToken(t, repo, tokens.SlotAccess))
	require.Equal(t, "", getToken(t, repo, tokens.SlotRefresh))
}

func TestRegister_DelegatesWithoutTouchingTokens(t *testing.T) {
	repo := setupRepo(t)
	fc := &fakeClient{RegisterRet: &models.User{ID: "u1", Username: "alice"}}
	svc := NewAuthService(fc, repo)

	user, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@b.edu", Username: "alice", Password: "pw123456",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, "alice", fc.LastRegisterData.Username)

	// No auto-login.
	require.Equal(t, "", getToken(t, repo, tokens.SlotAccess))
}

func TestRegister_ErrorFromClient(t *testing.T) {
	fc := &fakeClient{RegisterErr: errors.New("dup")}
	svc := NewAuthService(fc, setupRepo(t))

	_, err := svc.Register(context.Background(), models.RegisterRequest{})
	require.Error(t, err)
}

func TestLogout_ClearsBothSlots(t *testing.T) {
	repo := setupRepo(t)
	require.NoError(t, repo.SetPair(context.Background(), "T1", "R1"))

	svc := NewAuthService(&fakeClient{}, repo)
	require.NoError(t, svc.Logout(context.Background()))

	require.Equal(t, "", getToken(t, repo, tokens.SlotAccess))
	require.Equal(t, "", getToken(t, repo, tokens.SlotRefresh))
}

func TestLogout_IdempotentWithoutSession(t *testing.T) {
	repo := setupRepo(t)
	svc := NewAuthService(&fakeClient{}, repo)

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
	require.Equal(t, "", getToken(t, repo, tokens.SlotAccess))
}

func TestIsAuthenticated_PresenceCheckOnly(t *testing.T) {
	repo := setupRepo(t)
	svc := NewAuthService(&fakeClient{}, repo)
	ctx := context.Background()

	require.False(t, svc.IsAuthenticated(ctx))

	// Any present token counts, valid or not.
	require.NoError(t, repo.Set(ctx, tokens.SlotAccess, "expired-but-present"))
	require.True(t, svc.IsAuthenticated(ctx))
}

func TestGetCurrentUser_ErrorsPropagateUnchanged(t *testing.T) {
	sentinel := errors.New("still unauthorized")
	fc := &fakeClient{UserErr: sentinel}
	svc := NewAuthService(fc, setupRepo(t))

	_, err := svc.GetCurrentUser(context.Background())
	require.ErrorIs(t, err, sentinel)
}

func TestPing_Close_Delegations(t *testing.T) {
	fc := &fakeClient{}
	svc := NewAuthService(fc, setupRepo(t))

	require.NoError(t, svc.Ping(context.Background()))
	require.NoError(t, svc.Close(context.Background()))

	fc.PingErr = errors.New("down")
	fc.CloseErr = errors.New("io")
	require.Error(t, svc.Ping(context.Background()))
	require.Error(t, svc.Close(context.Background()))
}
