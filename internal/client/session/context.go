package session

import (
	"context"
	"errors"
)

// ErrNotProvided is returned by FromContext when no store was installed.
// Consumers must fail fast on it rather than operate on absent state.
var ErrNotProvided = errors.New("session: store not provided in context")

type ctxKey struct{}

// NewContext returns a child context carrying the store.
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext retrieves the store installed by NewContext.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(ctxKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNotProvided
	}
	return s, nil
}
