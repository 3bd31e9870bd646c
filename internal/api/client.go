// Package api is the typed client for the CRM REST API. All business
// logic lives behind that API; this package only shapes requests,
// attaches the bearer token, and decodes responses.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Hamidziya/crm-edfront/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Error is a failed API call. Message carries the server-provided
// message when the response body had one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

// Client calls the CRM API over JSON/HTTP with a bearer token.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client for the given base URL. The timeout is
// the only one this client imposes; individual calls may shorten it
// further through their context.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "api").Logger(),
	}
}

// SetToken installs the bearer token attached to every request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login authenticates and returns the token plus profile. It is the
// only call made without a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result models.LoginResult
	if err := c.do(ctx, http.MethodPost, "/user/login", body, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListTasks fetches every task (admin view).
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var resp struct {
		Tasks []models.Task `json:"tasks"`
	}
	if err := c.do(ctx, http.MethodGet, "/task/tasks", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

// ListUserTasks fetches the tasks assigned to the signed-in user.
// Unlike the admin listing, the response is a bare array.
func (c *Client) ListUserTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.do(ctx, http.MethodGet, "/task/user", nil, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTaskUpdates fetches the follow-up history of one task, oldest
// first as the server returns it.
func (c *Client) GetTaskUpdates(ctx context.Context, taskID string) ([]models.TaskUpdate, error) {
	var resp struct {
		Updates []models.TaskUpdate `json:"updates"`
	}
	if err := c.do(ctx, http.MethodGet, "/task/"+taskID+"/updates", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Updates, nil
}

// CreateTask creates one task/lead. The id is assigned server-side.
func (c *Client) CreateTask(ctx context.Context, title, description, assignedTo string) (string, error) {
	body := map[string]string{
		"title":       title,
		"description": description,
		"assignedTo":  assignedTo,
	}
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/task/create", body, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// BulkCreateTasks submits one import batch as a single request. An
// Idempotency-Key header guards against double-imports when a
// transport failure hides a success.
func (c *Client) BulkCreateTasks(ctx context.Context, tasks []models.CandidateRecord) (*models.BulkCreateResult, error) {
	body := map[string]interface{}{"tasks": tasks}
	headers := map[string]string{"Idempotency-Key": uuid.New().String()}

	var result models.BulkCreateResult
	if err := c.do(ctx, http.MethodPost, "/task/bulk-create", body, headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// TaskPatch is a partial task update for EditTask.
type TaskPatch struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty"`
}

// EditTask applies a partial update to one task.
func (c *Client) EditTask(ctx context.Context, taskID string, patch TaskPatch) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPut, "/task/edit/"+taskID, patch, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// DeleteTask removes one task.
func (c *Client) DeleteTask(ctx context.Context, taskID string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodDelete, "/task/delete/"+taskID, nil, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// FollowUpRequest is one new follow-up history entry.
type FollowUpRequest struct {
	TaskID       string            `json:"taskId"`
	UpdateType   models.UpdateType `json:"updateType"`
	Notes        string            `json:"notes"`
	OldStatus    models.TaskStatus `json:"oldStatus,omitempty"`
	NewStatus    models.TaskStatus `json:"newStatus,omitempty"`
	NextFollowUp string            `json:"nextFollowUp,omitempty"`
	Priority     models.Priority   `json:"priority"`
}

// AddLeadUpdate appends a follow-up entry to a task's history.
func (c *Client) AddLeadUpdate(ctx context.Context, req FollowUpRequest) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/task/addLeadUpdate", req, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListUsers fetches the account directory.
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp struct {
		UserData []models.User `json:"userData"`
	}
	if err := c.do(ctx, http.MethodGet, "/user/getData", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.UserData, nil
}

// GetUser fetches one account by id.
func (c *Client) GetUser(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/user/getuser/"+userID, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type messageResponse struct {
	Message string `json:"message"`
}

// do runs one API call: marshal the body, attach auth, decode the
// response into out. Non-2xx responses become *Error carrying the
// server message when the body had one.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, headers map[string]string, out interface{}) error {
	start := time.Now()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("Request failed")
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var msg messageResponse
		if json.Unmarshal(data, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
