package httpapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/okorotkov/taskpad/internal/common"
	"github.com/okorotkov/taskpad/internal/server/auth"
)

// userIDKey is the echo context key the auth middleware stores the verified
// token subject under.
const userIDKey = "userID"

func tokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(common.SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

// requireAuth verifies the session token from the cookie or a Bearer header
// and stores the subject user id on the context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := tokenFromRequest(c)
		if token == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Missing authentication token"})
		}

		userID, err := auth.GetUserIDFromToken(token, s.secretKey)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid or expired token"})
		}

		c.Set(userIDKey, userID)
		return next(c)
	}
}

// requireOwner gates the per-user task routes: the path userId must match
// the token subject.
func (s *Server) requireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Param("userId") != c.Get(userIDKey).(string) {
			return c.JSON(http.StatusForbidden, echo.Map{"detail": "Access forbidden: You can only access your own resources"})
		}
		return next(c)
	}
}
