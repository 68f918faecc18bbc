package api

import "errors"

// Kind classifies an API failure. The set is closed: every error raised by
// the client carries exactly one of these values.
type Kind int

const (
	// KindGeneric covers any HTTP status without a dedicated kind.
	KindGeneric Kind = iota
	// KindAuthentication is HTTP 401: missing, invalid, or expired session.
	KindAuthentication
	// KindAuthorization is HTTP 403: valid session, foreign resource.
	KindAuthorization
	// KindValidation is HTTP 400, optionally with field-level issues.
	KindValidation
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindServer is HTTP 500.
	KindServer
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "generic"
	}
}

// Default user-facing messages, used when the backend supplies no detail.
const (
	msgAuthentication = "Your session has expired. Please sign in again."
	msgAuthorization  = "You don't have permission to perform this action."
	msgNotFound       = "The requested resource was not found."
	msgServer         = "Something went wrong. Please try again later."
	msgNetwork        = "Network error. Please check your connection and try again."
	msgGeneric        = "An error occurred"
)

// ValidationIssue is a field-level message from a 400 response body.
type ValidationIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the one error type raised by the client. Message is always safe
// to show to the user.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Issues     []ValidationIssue

	cause error
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the transport error behind a KindNetwork failure.
func (e *Error) Unwrap() error { return e.cause }

// KindOf extracts the taxonomy kind from err. Errors that did not originate
// from this package report KindGeneric.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindGeneric
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// newStatusError builds the taxonomy error for an HTTP status. An empty
// detail falls back to the kind's documented default message.
func newStatusError(status int, detail string, issues []ValidationIssue) *Error {
	e := &Error{StatusCode: status, Message: detail, Issues: issues}
	switch status {
	case 401:
		e.Kind = KindAuthentication
		if e.Message == "" {
			e.Message = msgAuthentication
		}
	case 403:
		e.Kind = KindAuthorization
		if e.Message == "" {
			e.Message = msgAuthorization
		}
	case 400:
		e.Kind = KindValidation
		if e.Message == "" {
			e.Message = msgGeneric
		}
	case 404:
		e.Kind = KindNotFound
		if e.Message == "" {
			e.Message = msgNotFound
		}
	case 500:
		e.Kind = KindServer
		if e.Message == "" {
			e.Message = msgServer
		}
	default:
		e.Kind = KindGeneric
		if e.Message == "" {
			e.Message = msgGeneric
		}
	}
	return e
}

// newNetworkError wraps a transport-level failure. It is never produced for
// a request that reached the server and got a status code back.
func newNetworkError(cause error) *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, cause: cause}
}
