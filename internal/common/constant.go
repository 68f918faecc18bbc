package common

// SessionCookieName is the name of the httpOnly cookie carrying the session
// token. The client never reads it directly; the cookie jar round-trips it.
const SessionCookieName = "token"

// RequestIDHeaderName is the header carrying the client-generated request id
// used to correlate client and server logs.
const RequestIDHeaderName = "X-Request-ID"
