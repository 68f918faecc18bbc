package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okorotkov/taskpad/internal/client/models"
)

// fakeClient implements api.Client for store tests.
type fakeClient struct {
	user       *models.User
	currentErr error
	signInErr  error
	signUpErr  error
	signOutErr error
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) SignUp(_ context.Context, email, password, name string) (*models.User, error) {
	if f.signUpErr != nil {
		return nil, f.signUpErr
	}
	return f.user, nil
}

func (f *fakeClient) SignIn(_ context.Context, email, password string) (*models.User, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	return f.user, nil
}

func (f *fakeClient) SignOut(context.Context) error { return f.signOutErr }

func (f *fakeClient) CurrentUser(context.Context) (*models.User, error) {
	if f.currentErr != nil {
		return nil, f.currentErr
	}
	return f.user, nil
}

func (f *fakeClient) ListTasks(context.Context, string) ([]models.Task, error) { return nil, nil }
func (f *fakeClient) GetTask(context.Context, string, int64) (*models.Task, error) {
	return nil, nil
}
func (f *fakeClient) CreateTask(context.Context, string, models.TaskCreate) (*models.Task, error) {
	return nil, nil
}
func (f *fakeClient) UpdateTask(context.Context, string, int64, models.TaskUpdate) (*models.Task, error) {
	return nil, nil
}
func (f *fakeClient) ToggleComplete(context.Context, string, int64) (*models.Task, error) {
	return nil, nil
}
func (f *fakeClient) DeleteTask(context.Context, string, int64) error { return nil }

func TestInit_SwallowsErrors(t *testing.T) {
	s := NewStore(&fakeClient{currentErr: errors.New("network down")})
	require.True(t, s.IsLoading())

	s.Init(context.Background())

	require.False(t, s.IsLoading(), "loading must clear even on failure")
	require.Nil(t, s.User())
	require.False(t, s.IsAuthenticated())
}

func TestInit_InstallsUser(t *testing.T) {
	u := &models.User{ID: "u1", Email: "alice@example.org"}
	s := NewStore(&fakeClient{user: u})

	s.Init(context.Background())

	require.False(t, s.IsLoading())
	require.Equal(t, u, s.User())
	require.True(t, s.IsAuthenticated())
}

func TestSignIn_StateBeforeReturn(t *testing.T) {
	u := &models.User{ID: "u1"}
	s := NewStore(&fakeClient{user: u})

	got, err := s.SignIn(context.Background(), "alice@example.org", "pw")
	require.NoError(t, err)
	require.Equal(t, u, got)
	require.True(t, s.IsAuthenticated(), "user must be installed before SignIn returns")
}

func TestSignIn_FailureLeavesStateAlone(t *testing.T) {
	s := NewStore(&fakeClient{signInErr: errors.New("bad credentials")})

	_, err := s.SignIn(context.Background(), "alice@example.org", "pw")
	require.Error(t, err)
	require.False(t, s.IsAuthenticated())
}

func TestSignUp_InstallsUser(t *testing.T) {
	u := &models.User{ID: "u1"}
	s := NewStore(&fakeClient{user: u})

	got, err := s.SignUp(context.Background(), "alice@example.org", "pw", "Alice")
	require.NoError(t, err)
	require.Equal(t, u, got)
	require.True(t, s.IsAuthenticated())
}

func TestSignOut_ClearsEvenOnError(t *testing.T) {
	f := &fakeClient{user: &models.User{ID: "u1"}, signOutErr: errors.New("boom")}
	s := NewStore(f)
	s.Init(context.Background())
	require.True(t, s.IsAuthenticated())

	err := s.SignOut(context.Background())
	require.Error(t, err, "the failure still propagates")
	require.False(t, s.IsAuthenticated(), "user cleared regardless of the call outcome")
}

func TestInvalidate(t *testing.T) {
	s := NewStore(&fakeClient{user: &models.User{ID: "u1"}})
	s.Init(context.Background())
	require.True(t, s.IsAuthenticated())

	s.Invalidate()
	require.False(t, s.IsAuthenticated())
}

func TestRefresh_ResyncsAfterExpiry(t *testing.T) {
	f := &fakeClient{user: &models.User{ID: "u1"}}
	s := NewStore(f)
	s.Init(context.Background())
	require.True(t, s.IsAuthenticated())

	f.currentErr = errors.New("401")
	s.Refresh(context.Background())
	require.False(t, s.IsAuthenticated())
}

func TestContext_RoundTrip(t *testing.T) {
	s := NewStore(&fakeClient{})
	ctx := NewContext(context.Background(), s)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	require.Same(t, s, got)
}

func TestContext_NotProvided(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, ErrNotProvided)
}
