package users

import "time"

// User is the server-side account record. PasswordHash never leaves this
// package except through the repository.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash []byte
	CreatedAt    time.Time
}
