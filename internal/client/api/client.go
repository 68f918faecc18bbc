package api

import (
	"context"

	"github.com/okorotkov/taskpad/internal/client/models"
)

// Client defines every backend operation the application performs. The
// concrete implementation is HTTPClient; tests substitute fakes.
//
// All operations honor context cancellation. On failure they return a
// *Error whose Kind callers branch on.
type Client interface {
	Close() error

	SignUp(ctx context.Context, email, password, name string) (*models.User, error)
	SignIn(ctx context.Context, email, password string) (*models.User, error)
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	ListTasks(ctx context.Context, userID string) ([]models.Task, error)
	GetTask(ctx context.Context, userID string, taskID int64) (*models.Task, error)
	CreateTask(ctx context.Context, userID string, data models.TaskCreate) (*models.Task, error)
	UpdateTask(ctx context.Context, userID string, taskID int64, data models.TaskUpdate) (*models.Task, error)
	ToggleComplete(ctx context.Context, userID string, taskID int64) (*models.Task, error)
	DeleteTask(ctx context.Context, userID string, taskID int64) error
}
