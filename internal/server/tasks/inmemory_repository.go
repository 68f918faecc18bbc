package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okorotkov/taskpad/internal/common"
)

// InMemoryRepository keeps tasks in a mutex-guarded map with a per-store
// integer id counter, the way the original backend's database assigned ids.
type InMemoryRepository struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]*Task
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{tasks: make(map[int64]*Task)}
}

func (r *InMemoryRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now().UTC()

	stored := *task
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.tasks[stored.ID] = &stored

	out := stored
	return &out, nil
}

// ListByUser returns the user's tasks newest first.
func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var list []Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			list = append(list, *t)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID > list[j].ID
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID scopes the lookup to the owner: a task belonging to another user
// is indistinguishable from a missing one.
func (r *InMemoryRepository) GetByID(ctx context.Context, userID string, id int64) (*Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	out := *t
	return &out, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return nil, common.ErrorNotFound
	}

	stored := *task
	stored.UpdatedAt = time.Now().UTC()
	r.tasks[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.tasks, id)
	return nil
}
