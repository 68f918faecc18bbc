package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okorotkov/taskpad/internal/common"
	"github.com/okorotkov/taskpad/internal/server/auth"
	"github.com/okorotkov/taskpad/internal/server/users"
)

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public account shape; the password hash never
// appears in a response body.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserResponse(u *users.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}

func (s *Server) sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (s *Server) issueSession(c echo.Context, u *users.User) error {
	token, err := auth.GenerateToken(u.ID, u.Email, s.secretKey, s.tokenValidity)
	if err != nil {
		return err
	}
	c.SetCookie(s.sessionCookie(token, int(s.tokenValidity.Seconds())))
	return nil
}

func (s *Server) signUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}

	u, err := s.users.SignUp(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		var verr *common.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Validation failed", "errors": verr.Issues})
		case errors.Is(err, common.ErrorAlreadyExists):
			return c.JSON(http.StatusConflict, echo.Map{"detail": "Email already registered"})
		}
		return s.internalError(c, err)
	}

	if err := s.issueSession(c, u); err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusCreated, toUserResponse(u))
}

func (s *Server) signIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}

	u, err := s.users.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid email or password"})
		}
		return s.internalError(c, err)
	}

	if err := s.issueSession(c, u); err != nil {
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

// signOut clears the cookie unconditionally; it does not require a valid
// session, so a client with an expired token can still sign out cleanly.
func (s *Server) signOut(c echo.Context) error {
	c.SetCookie(s.sessionCookie("", -1))
	return c.JSON(http.StatusOK, echo.Map{"message": "Signed out successfully"})
}

func (s *Server) currentUser(c echo.Context) error {
	userID := c.Get(userIDKey).(string)

	u, err := s.users.GetByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// valid token, vanished account
			return c.JSON(http.StatusUnauthorized, echo.Map{"detail": "Invalid or expired token"})
		}
		return s.internalError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(u))
}

func (s *Server) internalError(c echo.Context, err error) error {
	s.logger.Error(c.Request().Context(), "internal error", "error", err.Error(), "path", c.Path())
	return c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal server error"})
}
