// Package httpapi exposes the REST contract over an Echo router: auth
// endpoints minting the session cookie and per-user task CRUD behind the
// auth middleware.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okorotkov/taskpad/internal/logging"
	"github.com/okorotkov/taskpad/internal/server/tasks"
	"github.com/okorotkov/taskpad/internal/server/users"
)

type Server struct {
	echo   *echo.Echo
	addr   string
	logger logging.Logger

	users *users.Service
	tasks *tasks.Service

	secretKey     []byte
	tokenValidity time.Duration
}

func NewServer(addr string, logger logging.Logger, us *users.Service, ts *tasks.Service, secretKey []byte, tokenValidity time.Duration) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:          e,
		addr:          addr,
		logger:        logger,
		users:         us,
		tasks:         ts,
		secretKey:     secretKey,
		tokenValidity: tokenValidity,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/signup", s.signUp)
	auth.POST("/signin", s.signIn)
	auth.POST("/signout", s.signOut)
	auth.GET("/me", s.currentUser, s.requireAuth)

	tg := api.Group("/:userId/tasks", s.requireAuth, s.requireOwner)
	tg.GET("", s.listTasks)
	tg.POST("", s.createTask)
	tg.GET("/:id", s.getTask)
	tg.PUT("/:id", s.updateTask)
	tg.DELETE("/:id", s.deleteTask)
	tg.PATCH("/:id/complete", s.toggleComplete)
}

// Handler returns the underlying router, used by in-process tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "http server listening", "addr", s.addr)
	if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
