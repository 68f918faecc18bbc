package users

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/okorotkov/taskpad/internal/common"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateSignUp(email, password, name string) error {
	verr := &common.ValidationError{}

	if !emailRe.MatchString(email) {
		verr.Add("email", "Invalid email address")
	}
	if strings.TrimSpace(password) == "" {
		verr.Add("password", "Password cannot be empty or whitespace-only")
	} else if len(password) < 8 {
		verr.Add("password", "Password must be at least 8 characters")
	} else if len(password) > 128 {
		verr.Add("password", "Password must be at most 128 characters")
	}
	if utf8.RuneCountInString(name) > 255 {
		verr.Add("name", "Name must be at most 255 characters")
	}

	if verr.HasIssues() {
		return verr
	}
	return nil
}

// SignUp validates the registration fields, hashes the password, and
// creates the account. A duplicate email surfaces as
// common.ErrorAlreadyExists.
func (s *Service) SignUp(ctx context.Context, email, password, name string) (*User, error) {
	if err := validateSignUp(email, password, name); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         strings.TrimSpace(name),
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate checks the credentials. Both an unknown email and a wrong
// password map to common.ErrorUnauthorized so callers cannot distinguish
// the two.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)) != nil {
		return nil, common.ErrorUnauthorized
	}

	return user, nil
}

// GetByID resolves the account behind a verified token subject.
func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
