package tasks

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, task *Task) (*Task, error)
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	GetByID(ctx context.Context, userID string, id int64) (*Task, error)
	Save(ctx context.Context, task *Task) (*Task, error)
	Delete(ctx context.Context, userID string, id int64) error
}
