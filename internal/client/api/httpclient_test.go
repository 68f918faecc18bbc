package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okorotkov/taskpad/internal/client/models"
)

func newClientFor(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestStatusToKindMapping(t *testing.T) {
	tests := []struct {
		status  int
		kind    Kind
		message string
	}{
		{http.StatusUnauthorized, KindAuthentication, "Your session has expired. Please sign in again."},
		{http.StatusForbidden, KindAuthorization, "You don't have permission to perform this action."},
		{http.StatusBadRequest, KindValidation, "An error occurred"},
		{http.StatusNotFound, KindNotFound, "The requested resource was not found."},
		{http.StatusInternalServerError, KindServer, "Something went wrong. Please try again later."},
		{http.StatusConflict, KindGeneric, "An error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.kind.String(), func(t *testing.T) {
			c := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := c.CurrentUser(context.Background())
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, tc.kind, apiErr.Kind)
			require.Equal(t, tc.status, apiErr.StatusCode)
			require.Equal(t, tc.message, apiErr.Message, "empty body must fall back to the default message")
		})
	}
}

func TestDetailPassthrough(t *testing.T) {
	c := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail": "Invalid email or password"}`))
	})

	_, err := c.SignIn(context.Background(), "a@b.org", "wrong")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, KindAuthentication, apiErr.Kind)
	require.Equal(t, "Invalid email or password", apiErr.Message)
}

func TestValidationIssues(t *testing.T) {
	c := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": "Validation failed", "errors": [{"field": "title", "message": "Title cannot be empty or whitespace-only"}]}`))
	})

	_, err := c.CreateTask(context.Background(), "u1", models.TaskCreate{Title: "  "})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, KindValidation, apiErr.Kind)
	require.Equal(t, "Validation failed", apiErr.Message)
	require.Len(t, apiErr.Issues, 1)
	require.Equal(t, "title", apiErr.Issues[0].Field)
}

func TestValidationIssues_DetailList(t *testing.T) {
	// schema validators answer with detail as a list instead of a string
	c := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail": [{"field": "email", "message": "Invalid email address"}]}`))
	})

	_, err := c.SignUp(context.Background(), "bad", "password123", "A")
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, KindValidation, apiErr.Kind)
	require.Equal(t, "Invalid email address", apiErr.Message)
	require.Len(t, apiErr.Issues, 1)
}

func TestDelete_NoContent(t *testing.T) {
	c := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/u1/tasks/5", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteTask(context.Background(), "u1", 5))
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c, err := NewHTTPClient(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = c.CurrentUser(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, KindNetwork, apiErr.Kind)
	require.Equal(t, "Network error. Please check your connection and try again.", apiErr.Message)
	require.Error(t, apiErr.Unwrap(), "network errors keep their transport cause")
}

func TestRequestIDHeaderSet(t *testing.T) {
	var got string
	c := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.SignOut(context.Background()))
	require.NotEmpty(t, got)
}

func TestKindHelpers(t *testing.T) {
	err := newStatusError(http.StatusForbidden, "", nil)
	require.True(t, IsKind(err, KindAuthorization))
	require.Equal(t, KindAuthorization, KindOf(err))

	require.Equal(t, KindGeneric, KindOf(errors.New("plain")))
	require.False(t, IsKind(nil, KindNetwork))
}
