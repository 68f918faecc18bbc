package api_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/okorotkov/taskpad/internal/client/api"
	"github.com/okorotkov/taskpad/internal/client/models"
	"github.com/okorotkov/taskpad/internal/logging"
	"github.com/okorotkov/taskpad/internal/server/httpapi"
	"github.com/okorotkov/taskpad/internal/server/tasks"
	"github.com/okorotkov/taskpad/internal/server/users"
)

// newStack starts an in-process backend and returns a client wired to it,
// so the full wire contract is exercised end to end.
func newStack(t *testing.T) api.Client {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	backend := httpapi.NewServer(":0", logger,
		users.NewService(users.NewInMemoryRepository()),
		tasks.NewService(tasks.NewInMemoryRepository()),
		[]byte("integration-secret"), time.Hour)

	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	c, err := api.NewHTTPClient(srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestIntegration_AuthAndTasks(t *testing.T) {
	c := newStack(t)
	ctx := context.Background()

	u, err := c.SignUp(ctx, "alice@example.org", "password123", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)
	require.Equal(t, "alice@example.org", u.Email)

	// the cookie jar carries the session from here on
	me, err := c.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, u.ID, me.ID)

	created, err := c.CreateTask(ctx, u.ID, models.TaskCreate{Title: "Buy milk", Priority: models.PriorityLow})
	require.NoError(t, err)
	require.Equal(t, "Buy milk", created.Title)
	require.False(t, created.Completed)
	require.NotZero(t, created.ID)

	list, err := c.ListTasks(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	toggled, err := c.ToggleComplete(ctx, u.ID, created.ID)
	require.NoError(t, err)
	require.True(t, toggled.Completed)

	newTitle := "Buy oat milk"
	updated, err := c.UpdateTask(ctx, u.ID, created.ID, models.TaskUpdate{Title: &newTitle})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)
	require.True(t, updated.Completed, "partial update must not reset other fields")

	require.NoError(t, c.DeleteTask(ctx, u.ID, created.ID))

	err = c.DeleteTask(ctx, u.ID, created.ID)
	require.True(t, api.IsKind(err, api.KindNotFound))
}

func TestIntegration_ForeignUserForbidden(t *testing.T) {
	c := newStack(t)
	ctx := context.Background()

	_, err := c.SignUp(ctx, "alice@example.org", "password123", "Alice")
	require.NoError(t, err)

	_, err = c.ListTasks(ctx, "someone-else")
	require.True(t, api.IsKind(err, api.KindAuthorization))
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "Access forbidden: You can only access your own resources", apiErr.Message)
}

func TestIntegration_SignOutEndsSession(t *testing.T) {
	c := newStack(t)
	ctx := context.Background()

	_, err := c.SignUp(ctx, "alice@example.org", "password123", "Alice")
	require.NoError(t, err)

	require.NoError(t, c.SignOut(ctx))

	_, err = c.CurrentUser(ctx)
	require.True(t, api.IsKind(err, api.KindAuthentication))
}

func TestIntegration_ValidationIssuesOnCreate(t *testing.T) {
	c := newStack(t)
	ctx := context.Background()

	u, err := c.SignUp(ctx, "alice@example.org", "password123", "Alice")
	require.NoError(t, err)

	_, err = c.CreateTask(ctx, u.ID, models.TaskCreate{Title: "   "})
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, api.KindValidation, apiErr.Kind)
	require.NotEmpty(t, apiErr.Issues)
	require.Equal(t, "title", apiErr.Issues[0].Field)
}

func TestIntegration_DuplicateEmailIsGeneric(t *testing.T) {
	c := newStack(t)
	ctx := context.Background()

	_, err := c.SignUp(ctx, "alice@example.org", "password123", "Alice")
	require.NoError(t, err)

	_, err = c.SignUp(ctx, "alice@example.org", "password456", "Other")
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	// 409 has no dedicated kind; the detail still reaches the user
	require.Equal(t, api.KindGeneric, apiErr.Kind)
	require.Equal(t, "Email already registered", apiErr.Message)
}
