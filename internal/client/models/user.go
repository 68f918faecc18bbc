// Package models defines the data records the client exchanges with the
// backend. They are plain values; the backend is the source of truth.
package models

import "time"

// User is an account as returned by the backend. The ID is assigned
// server-side and is opaque to the client.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
