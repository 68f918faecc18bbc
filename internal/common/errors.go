// Package common defines shared constants and sentinel errors used across
// client and server layers of TaskPad. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// auth-specific errors (invalid or malformed token)
	ErrInvalidToken = errors.New("invalid token")
)
