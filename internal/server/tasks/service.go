package tasks

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/okorotkov/taskpad/internal/common"
)

const (
	titleMaxLen       = 200
	descriptionMaxLen = 1000
)

const defaultPriority = "medium"

func validPriority(p string) bool {
	switch p {
	case "high", "medium", "low":
		return true
	}
	return false
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateTitle(verr *common.ValidationError, title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		verr.Add("title", "Title cannot be empty or whitespace-only")
	} else if utf8.RuneCountInString(trimmed) > titleMaxLen {
		verr.Add("title", "Title must be at most 200 characters")
	}
	return trimmed
}

func validateDescription(verr *common.ValidationError, description *string) {
	if description != nil && utf8.RuneCountInString(*description) > descriptionMaxLen {
		verr.Add("description", "Description must be at most 1000 characters")
	}
}

// Create validates the payload and stores a new task for userID. An empty
// priority defaults to medium.
func (s *Service) Create(ctx context.Context, userID string, data Create) (*Task, error) {
	verr := &common.ValidationError{}

	title := validateTitle(verr, data.Title)
	validateDescription(verr, data.Description)

	priority := data.Priority
	if priority == "" {
		priority = defaultPriority
	}
	if !validPriority(priority) {
		verr.Add("priority", "Priority must be one of: high, medium, low")
	}

	if verr.HasIssues() {
		return nil, verr
	}

	return s.repo.Create(ctx, &Task{
		UserID:      userID,
		Title:       title,
		Description: data.Description,
		Priority:    priority,
	})
}

// List returns the user's tasks newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Get(ctx context.Context, userID string, id int64) (*Task, error) {
	return s.repo.GetByID(ctx, userID, id)
}

// Update applies the non-nil fields of data to the task and saves it.
func (s *Service) Update(ctx context.Context, userID string, id int64, data Update) (*Task, error) {
	task, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	verr := &common.ValidationError{}

	if data.Title != nil {
		task.Title = validateTitle(verr, *data.Title)
	}
	if data.Description != nil {
		validateDescription(verr, data.Description)
		task.Description = data.Description
	}
	if data.Priority != nil {
		if !validPriority(*data.Priority) {
			verr.Add("priority", "Priority must be one of: high, medium, low")
		}
		task.Priority = *data.Priority
	}
	if data.Completed != nil {
		task.Completed = *data.Completed
	}

	if verr.HasIssues() {
		return nil, verr
	}

	return s.repo.Save(ctx, task)
}

// ToggleComplete flips the completion flag.
func (s *Service) ToggleComplete(ctx context.Context, userID string, id int64) (*Task, error) {
	task, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.Completed = !task.Completed
	return s.repo.Save(ctx, task)
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	return s.repo.Delete(ctx, userID, id)
}
