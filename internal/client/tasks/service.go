// Package tasks owns the dashboard's task list: a best-effort, in-memory
// cache of backend state, patched per mutation response.
//
// The cache is not authoritative. After every create/update/toggle/delete
// the corresponding entry is patched from the response; the list is never
// re-fetched, so it can drift from server state under concurrent mutation
// from another session until the next Load.
package tasks

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/okorotkov/taskpad/internal/client/api"
	"github.com/okorotkov/taskpad/internal/client/models"
	"github.com/okorotkov/taskpad/internal/client/session"
)

// ErrNotSignedIn is returned when a task operation runs without a signed-in
// user in the session store.
var ErrNotSignedIn = errors.New("tasks: not signed in")

// Service performs task operations for the signed-in user and maintains the
// view-state list, newest first. Patches are applied in response-resolution
// order under the mutex: overlapping mutations on the same task leave the
// list equal to whichever response resolved last.
type Service struct {
	client  api.Client
	session *session.Store

	mu    sync.Mutex
	tasks []models.Task
}

func NewService(client api.Client, sess *session.Store) *Service {
	return &Service{client: client, session: sess}
}

func (s *Service) userID() (string, error) {
	u := s.session.User()
	if u == nil {
		return "", ErrNotSignedIn
	}
	return u.ID, nil
}

// fail routes every API error through one place so a 401 against stale
// client-side session state invalidates the store instead of crashing flows.
func (s *Service) fail(err error) error {
	if api.KindOf(err) == api.KindAuthentication {
		s.session.Invalidate()
	}
	return err
}

// Load replaces the cached list with the backend's current list.
func (s *Service) Load(ctx context.Context) error {
	uid, err := s.userID()
	if err != nil {
		return err
	}
	list, err := s.client.ListTasks(ctx, uid)
	if err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	s.tasks = list
	s.mu.Unlock()
	return nil
}

// Tasks returns a copy of the cached list.
func (s *Service) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get fetches a single task from the backend. The cache is not consulted or
// patched: a stale entry must not mask a 403/404 from the server.
func (s *Service) Get(ctx context.Context, taskID int64) (*models.Task, error) {
	uid, err := s.userID()
	if err != nil {
		return nil, err
	}
	t, err := s.client.GetTask(ctx, uid, taskID)
	if err != nil {
		return nil, s.fail(err)
	}
	return t, nil
}

// Create posts a new task and prepends the created record to the list.
func (s *Service) Create(ctx context.Context, data models.TaskCreate) (*models.Task, error) {
	uid, err := s.userID()
	if err != nil {
		return nil, err
	}
	t, err := s.client.CreateTask(ctx, uid, data)
	if err != nil {
		return nil, s.fail(err)
	}
	s.mu.Lock()
	s.tasks = append([]models.Task{*t}, s.tasks...)
	s.mu.Unlock()
	return t, nil
}

// Update sends a partial update and patches the matching entry.
func (s *Service) Update(ctx context.Context, taskID int64, data models.TaskUpdate) (*models.Task, error) {
	uid, err := s.userID()
	if err != nil {
		return nil, err
	}
	t, err := s.client.UpdateTask(ctx, uid, taskID, data)
	if err != nil {
		return nil, s.fail(err)
	}
	s.patch(*t)
	return t, nil
}

// Toggle flips the completion flag server-side and patches the entry with
// whatever the response says, in resolution order.
func (s *Service) Toggle(ctx context.Context, taskID int64) (*models.Task, error) {
	uid, err := s.userID()
	if err != nil {
		return nil, err
	}
	t, err := s.client.ToggleComplete(ctx, uid, taskID)
	if err != nil {
		return nil, s.fail(err)
	}
	s.patch(*t)
	return t, nil
}

// Delete removes the task server-side and drops it from the list. On
// failure the list is left untouched.
func (s *Service) Delete(ctx context.Context, taskID int64) error {
	uid, err := s.userID()
	if err != nil {
		return err
	}
	if err := s.client.DeleteTask(ctx, uid, taskID); err != nil {
		return s.fail(err)
	}
	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != taskID {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()
	return nil
}

func (s *Service) patch(t models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return
		}
	}
	// A late response for a task no longer in the list silently lands here;
	// matching the web client, it is not re-added.
}

// Calendar projects the cached list onto a month grid: day of month to the
// tasks created that day. Tasks have no due date; creation date is what the
// calendar view groups by.
func (s *Service) Calendar(year int, month time.Month) map[int][]models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	days := make(map[int][]models.Task)
	for _, t := range s.tasks {
		c := t.CreatedAt.UTC()
		if c.Year() == year && c.Month() == month {
			days[c.Day()] = append(days[c.Day()], t)
		}
	}
	return days
}
