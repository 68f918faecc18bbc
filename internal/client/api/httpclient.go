package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	"github.com/google/uuid"

	"github.com/okorotkov/taskpad/internal/client/models"
	"github.com/okorotkov/taskpad/internal/common"
)

// HTTPClient talks JSON over HTTP to the backend at a configured base URL.
// A cookie jar on the underlying http.Client round-trips the httpOnly
// session cookie, so application code never handles tokens.
//
// There is deliberately no retry and no client-side timeout here; the
// transport's defaults apply and callers control cancellation via context.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
}

func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar init error: %w", err)
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Jar: jar},
	}, nil
}

// errorBody is the backend error shape {"detail": ..., "errors": [...]}.
// detail is normally a string, but schema validators emit a list of issues,
// so it is decoded leniently.
type errorBody struct {
	Detail json.RawMessage   `json:"detail"`
	Errors []ValidationIssue `json:"errors"`
}

// do performs one request/response cycle. A non-nil body is sent as JSON;
// a non-nil out receives the decoded success body. 204 responses resolve
// without touching the body.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("request encoding error: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("request build error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		// The request never produced a response: always the network kind,
		// never conflated with an application status.
		return newNetworkError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errorFromResponse(resp)
	}

	if resp.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newNetworkError(fmt.Errorf("response decoding error: %w", err))
	}
	return nil
}

// errorFromResponse maps an application-level failure to the taxonomy,
// keeping the backend-provided detail when the body is parseable.
func errorFromResponse(resp *http.Response) *Error {
	var eb errorBody
	detail := ""
	var issues []ValidationIssue

	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if len(eb.Detail) > 0 {
			// string detail first, then the issue-list variant
			if err := json.Unmarshal(eb.Detail, &detail); err != nil {
				var list []ValidationIssue
				if json.Unmarshal(eb.Detail, &list) == nil && len(list) > 0 {
					issues = list
					detail = list[0].Message
				}
			}
		}
		issues = append(issues, eb.Errors...)
	}

	return newStatusError(resp.StatusCode, detail, issues)
}

// Close releases idle connections held by the transport.
func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *HTTPClient) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	var u models.User
	req := signUpRequest{Email: email, Password: password, Name: name}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	var u models.User
	req := signInRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/signin", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/auth/signout", nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context, userID string) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/api/"+userID+"/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *HTTPClient) GetTask(ctx context.Context, userID string, taskID int64) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodGet, taskPath(userID, taskID), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, userID string, data models.TaskCreate) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPost, "/api/"+userID+"/tasks", data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) UpdateTask(ctx context.Context, userID string, taskID int64, data models.TaskUpdate) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPut, taskPath(userID, taskID), data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) ToggleComplete(ctx context.Context, userID string, taskID int64) (*models.Task, error) {
	var t models.Task
	if err := c.do(ctx, http.MethodPatch, taskPath(userID, taskID)+"/complete", nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) DeleteTask(ctx context.Context, userID string, taskID int64) error {
	return c.do(ctx, http.MethodDelete, taskPath(userID, taskID), nil, nil)
}

func taskPath(userID string, taskID int64) string {
	return fmt.Sprintf("/api/%s/tasks/%d", userID, taskID)
}
