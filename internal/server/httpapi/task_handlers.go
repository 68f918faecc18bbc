package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/okorotkov/taskpad/internal/common"
	"github.com/okorotkov/taskpad/internal/server/tasks"
)

// taskError maps task service failures onto the documented error bodies.
func (s *Server) taskError(c echo.Context, err error) error {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Validation failed", "errors": verr.Issues})
	case errors.Is(err, common.ErrorNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Task not found"})
	}
	return s.internalError(c, err)
}

func taskID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	return id, err == nil
}

func (s *Server) listTasks(c echo.Context) error {
	list, err := s.tasks.List(c.Request().Context(), c.Get(userIDKey).(string))
	if err != nil {
		return s.taskError(c, err)
	}
	if list == nil {
		list = []tasks.Task{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) createTask(c echo.Context) error {
	var req tasks.Create
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}

	t, err := s.tasks.Create(c.Request().Context(), c.Get(userIDKey).(string), req)
	if err != nil {
		return s.taskError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (s *Server) getTask(c echo.Context) error {
	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Task not found"})
	}

	t, err := s.tasks.Get(c.Request().Context(), c.Get(userIDKey).(string), id)
	if err != nil {
		return s.taskError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) updateTask(c echo.Context) error {
	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Task not found"})
	}

	var req tasks.Update
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid request body"})
	}

	t, err := s.tasks.Update(c.Request().Context(), c.Get(userIDKey).(string), id, req)
	if err != nil {
		return s.taskError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) toggleComplete(c echo.Context) error {
	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Task not found"})
	}

	t, err := s.tasks.ToggleComplete(c.Request().Context(), c.Get(userIDKey).(string), id)
	if err != nil {
		return s.taskError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTask(c echo.Context) error {
	id, ok := taskID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"detail": "Task not found"})
	}

	if err := s.tasks.Delete(c.Request().Context(), c.Get(userIDKey).(string), id); err != nil {
		return s.taskError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
