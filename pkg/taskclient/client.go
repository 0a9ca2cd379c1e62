// Package taskclient is a Go client for the task service. Besides plain CRUD
// calls it carries the multi-record workflows the service leaves to callers:
// reordering a folder and emptying a folder into the inbox before deleting it.
package taskclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Fields is a partial request body. A nil value is sent as JSON null.
type Fields map[string]any

type Task struct {
	OwnerID     string   `json:"ownerId"`
	TaskID      string   `json:"taskId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	DueDate     *string  `json:"dueDate"`
	ReminderAt  *string  `json:"reminderAt"`
	Priority    *float64 `json:"priority"`
	FolderID    string   `json:"folderId"`
	Position    float64  `json:"position"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Folder struct {
	OwnerID     string  `json:"ownerId"`
	ListID      string  `json:"listId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Position    float64 `json:"position"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type TaskPage struct {
	Items         []Task  `json:"items"`
	NextPageToken *string `json:"nextPageToken"`
}

type ListParams struct {
	Status    string
	FolderID  string
	Limit     int
	PageToken string
}

// APIError is a non-2xx answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("task service: %d %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	baseURL     string
	httpClient  *http.Client
	authorize   func(*http.Request)
	concurrency int
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithSubject sends the caller identity the way a trusted gateway would.
func WithSubject(header, subject string) Option {
	return func(c *Client) {
		c.authorize = func(r *http.Request) { r.Header.Set(header, subject) }
	}
}

func WithBearerToken(token string) Option {
	return func(c *Client) {
		c.authorize = func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
	}
}

// WithConcurrency bounds the parallel updates of fan-out workflows.
func WithConcurrency(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		authorize:   func(*http.Request) {},
		concurrency: 8,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) CreateTask(ctx context.Context, fields Fields) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPost, "/tasks", nil, fields, &task)
	return task, err
}

func (c *Client) GetTask(ctx context.Context, taskID string) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, "/tasks/"+url.PathEscape(taskID), nil, nil, &task)
	return task, err
}

func (c *Client) ListTasks(ctx context.Context, params ListParams) (TaskPage, error) {
	query := url.Values{}
	if params.Status != "" {
		query.Set("status", params.Status)
	}
	if params.FolderID != "" {
		query.Set("folderId", params.FolderID)
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.PageToken != "" {
		query.Set("pageToken", params.PageToken)
	}

	var page TaskPage
	err := c.do(ctx, http.MethodGet, "/tasks", query, nil, &page)
	return page, err
}

// ListAllTasks follows continuation tokens until the last page.
func (c *Client) ListAllTasks(ctx context.Context, params ListParams) ([]Task, error) {
	var all []Task
	for {
		page, err := c.ListTasks(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if page.NextPageToken == nil || *page.NextPageToken == "" {
			return all, nil
		}
		params.PageToken = *page.NextPageToken
	}
}

func (c *Client) UpdateTask(ctx context.Context, taskID string, fields Fields) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(taskID), nil, fields, &task)
	return task, err
}

func (c *Client) DeleteTask(ctx context.Context, taskID string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(taskID), nil, nil, nil)
}

func (c *Client) CreateFolder(ctx context.Context, fields Fields) (Folder, error) {
	var folder Folder
	err := c.do(ctx, http.MethodPost, "/folders", nil, fields, &folder)
	return folder, err
}

func (c *Client) GetFolder(ctx context.Context, folderID string) (Folder, error) {
	var folder Folder
	err := c.do(ctx, http.MethodGet, "/folders/"+url.PathEscape(folderID), nil, nil, &folder)
	return folder, err
}

func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	var list struct {
		Items []Folder `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/folders", nil, nil, &list); err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *Client) UpdateFolder(ctx context.Context, folderID string, fields Fields) (Folder, error) {
	var folder Folder
	err := c.do(ctx, http.MethodPut, "/folders/"+url.PathEscape(folderID), nil, fields, &folder)
	return folder, err
}

func (c *Client) DeleteFolder(ctx context.Context, folderID string) error {
	return c.do(ctx, http.MethodDelete, "/folders/"+url.PathEscape(folderID), nil, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
	}
	return apiErr
}
