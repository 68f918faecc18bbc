package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/okorotkov/taskpad/internal/client/api"
	"github.com/okorotkov/taskpad/internal/client/config"
	"github.com/okorotkov/taskpad/internal/client/session"
	"github.com/okorotkov/taskpad/internal/client/tasks"
	"github.com/okorotkov/taskpad/internal/logging"
)

// App wires the client components together for the REPL.
type App struct {
	config  *config.Config
	client  api.Client
	session *session.Store
	tasks   *tasks.Service
	reader  *bufio.Reader
	logger  logging.Logger
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := api.NewHTTPClient(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	sess := session.NewStore(apiClient)
	ts := tasks.NewService(apiClient, sess)

	return &App{
		config:  cfg,
		client:  apiClient,
		session: sess,
		tasks:   ts,
		reader:  bufio.NewReader(os.Stdin),
		logger:  logger.With("module", "cli"),
	}, nil
}

// Run probes the session, starts the background refresh watcher, and hands
// control to the REPL. The session store is provided through the context so
// command handlers fail fast if invoked outside this scope.
func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	ctx = session.NewContext(ctx, a.session)

	a.session.Init(ctx)
	if u := a.session.User(); u != nil {
		printlnFn("Signed in as " + u.Email)
	}

	go a.startSessionWatcher(ctx, a.config.SessionRefreshInterval)

	printlnFn("Welcome to TaskPad (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isSignedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.User(); u != nil {
		return "(" + u.Email + ")"
	}
	return ""
}

// startSessionWatcher periodically re-probes the session so server-side
// expiry surfaces without waiting for a failing task call.
func (a *App) startSessionWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.session.IsAuthenticated() {
				continue
			}
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			a.session.Refresh(probeCtx)
			cancel()
			if !a.session.IsAuthenticated() {
				a.logger.Info(ctx, "session expired")
			}

		case <-ctx.Done():
			return
		}
	}
}
