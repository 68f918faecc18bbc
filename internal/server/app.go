// Package server initializes and runs the development stub server. It wires
// the in-memory repositories, handles graceful shutdown, and starts the
// HTTP API.
package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/okorotkov/taskpad/internal/logging"
	"github.com/okorotkov/taskpad/internal/server/config"
	"github.com/okorotkov/taskpad/internal/server/httpapi"
	"github.com/okorotkov/taskpad/internal/server/tasks"
	"github.com/okorotkov/taskpad/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *users.Service
	taskService *tasks.Service
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.New().With("module", "server")

	us := users.NewService(users.NewInMemoryRepository())
	ts := tasks.NewService(tasks.NewInMemoryRepository())

	return &App{config: c, logger: logger, userService: us, taskService: ts}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(
		app.config.Addr,
		app.logger,
		app.userService,
		app.taskService,
		[]byte(app.config.SecretKey),
		app.config.TokenValidity,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
