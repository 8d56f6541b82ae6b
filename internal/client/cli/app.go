package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/techkatta/internal/client/api"
	"github.com/dmitrijs2005/techkatta/internal/client/config"
	"github.com/dmitrijs2005/techkatta/internal/client/services"
	"github.com/dmitrijs2005/techkatta/internal/client/session"
	"github.com/dmitrijs2005/techkatta/internal/client/tokens"
	"github.com/dmitrijs2005/techkatta/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config  *config.Config
	auth    services.AuthService
	session *session.Store
	db      *sql.DB
	log     logging.Logger
	reader  *bufio.Reader
	Mode    Mode
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := tokens.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	repo := tokens.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.APIBaseURL, repo, c.RequestTimeout, log)

	as := services.NewAuthService(apiClient, repo)
	store := session.NewStore(ctx, as, log)

	// A failed refresh already cleared the stored credentials; dropping the
	// in-memory session sends the user back to the login prompt.
	apiClient.OnSessionExpired(func() {
		store.Invalidate()
		printlnFn("Your session has expired, please log in again.")
	})

	return &App{
		config:  c,
		auth:    as,
		session: store,
		db:      db,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		_ = a.auth.Close(ctx)
		_ = a.db.Close()
	}()

	printlnFn("Welcome to TechKatta (type 'help' for commands)")

	// Initial session probe: resolve the user for an existing session, the
	// way the web client does on mount. A failure here just means the user
	// has to log in again.
	if a.session.State().IsAuthenticated {
		if err := a.session.FetchUser(ctx); err != nil {
			a.log.Warn(ctx, "session probe failed", "error", err)
		}
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

func (a *App) getStatus() string {
	parts := make([]string, 0, 2)
	if st := a.session.State(); st.User != nil {
		parts = append(parts, st.User.Username)
	}
	if a.Mode != "" {
		parts = append(parts, string(a.Mode))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(ctx, "connectivity changed", "mode", mode)
	}
}

// checkOnline performs a single liveness probe and updates Mode.
func (a *App) checkOnline(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	err := a.auth.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ctx, ModeOffline)
	} else {
		a.setMode(ctx, ModeOnline)
	}
}

// StartOnlineStatusWatcher periodically pings the server and flips the
// online/offline status segment shown in the prompt.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}
