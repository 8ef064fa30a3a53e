package browseruse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deepmindru-afk/superuzyr/internal/application/port/output"
)

const DefaultBaseURL = "https://api.browser-use.com/api/v1"

type TaskStatus string

const (
	StatusCreated  TaskStatus = "created"
	StatusRunning  TaskStatus = "running"
	StatusPaused   TaskStatus = "paused"
	StatusFinished TaskStatus = "finished"
	StatusStopped  TaskStatus = "stopped"
	StatusFailed   TaskStatus = "failed"
)

func (s TaskStatus) Terminal() bool {
	return s == StatusFinished || s == StatusStopped || s == StatusFailed
}

type CreateTaskRequest struct {
	Task     string `json:"task"`
	LLMModel string `json:"llm_model,omitempty"`
}

type CreatedTask struct {
	ID      string `json:"id"`
	LiveURL string `json:"live_url,omitempty"`
}

type Step struct {
	ID                     string `json:"id"`
	Step                   int    `json:"step"`
	EvaluationPreviousGoal string `json:"evaluation_previous_goal"`
	NextGoal               string `json:"next_goal"`
	URL                    string `json:"url"`
	ScreenshotURL          string `json:"screenshot_url,omitempty"`
}

type TaskDetails struct {
	ID      string     `json:"id"`
	Task    string     `json:"task"`
	Status  TaskStatus `json:"status"`
	Output  string     `json:"output"`
	LiveURL string     `json:"live_url"`
	Steps   []Step     `json:"steps"`
}

// APIError is a non-2xx answer from the cloud API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("browser use api: status %d: %s", e.StatusCode, e.Body)
}

var ErrMissingAPIKey = errors.New("browser use cloud api key not configured")

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  output.LoggerPort
}

type ClientConfig struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     output.LoggerPort
}

func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    httpClient,
		logger:  cfg.Logger,
	}
}

func (c *Client) CreateTask(ctx context.Context, req CreateTaskRequest) (*CreatedTask, error) {
	var out CreatedTask
	if err := c.do(ctx, http.MethodPost, "/run-task", req, &out); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	if out.ID == "" {
		return nil, errors.New("create task: response has no task id")
	}
	return &out, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (*TaskDetails, error) {
	var out TaskDetails
	if err := c.do(ctx, http.MethodGet, "/task/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &out, nil
}

func (c *Client) Screenshots(ctx context.Context, id string) ([]string, error) {
	var out struct {
		Screenshots []string `json:"screenshots"`
	}
	if err := c.do(ctx, http.MethodGet, "/task/"+url.PathEscape(id)+"/screenshots", nil, &out); err != nil {
		return nil, fmt.Errorf("get screenshots %s: %w", id, err)
	}
	return out.Screenshots, nil
}

func (c *Client) StopTask(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodPut, "/stop-task?"+url.Values{"task_id": {id}}.Encode(), nil, nil); err != nil {
		return fmt.Errorf("stop task %s: %w", id, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if c.logger != nil {
		c.logger.Debug("Browser Use API call", "method", method, "path", path, "status", resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
