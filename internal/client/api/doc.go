// Package api is the single point of contact with the backend REST API.
//
// It wraps net/http with typed operations for authentication and task CRUD,
// carries the httpOnly session cookie automatically via a cookie jar, and
// normalizes every failure into one *Error from a closed taxonomy of kinds.
// Callers branch on KindOf(err), never on concrete transport errors.
package api
