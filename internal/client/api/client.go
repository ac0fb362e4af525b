package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"student-notes-ai/internal/dto"

	"github.com/go-resty/resty/v2"
)

// TransportError marks failures where no usable server response exists:
// connection refused, timeouts, unparseable bodies. Server-reported failures
// (success:false payloads) are returned as normal responses, never as errors.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the notes backend. One request, one response; no retries.
type Client struct {
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}

	return &Client{http: cli}
}

func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return nil, &TransportError{Op: "health request", Err: err}
	}

	var out dto.HealthResponse
	if err := decodeBody(resp, &out); err != nil {
		return nil, &TransportError{Op: "health response", Err: err}
	}
	return &out, nil
}

func (c *Client) CompleteNotes(ctx context.Context, req *dto.CompletionRequest) (*dto.CompletionResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/complete-notes")
	if err != nil {
		return nil, &TransportError{Op: "complete-notes request", Err: err}
	}

	var out dto.CompletionResponse
	if err := decodeBody(resp, &out); err != nil {
		return nil, &TransportError{Op: "complete-notes response", Err: err}
	}
	return &out, nil
}

func (c *Client) UploadText(ctx context.Context, req *dto.TextUploadRequest) (*dto.TextUploadResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/upload-text")
	if err != nil {
		return nil, &TransportError{Op: "upload-text request", Err: err}
	}

	var out dto.TextUploadResponse
	if err := decodeBody(resp, &out); err != nil {
		return nil, &TransportError{Op: "upload-text response", Err: err}
	}
	return &out, nil
}

func (c *Client) AddLiterature(ctx context.Context, req *dto.AddLiteratureRequest) (*dto.AddLiteratureResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/add-literature")
	if err != nil {
		return nil, &TransportError{Op: "add-literature request", Err: err}
	}

	var out dto.AddLiteratureResponse
	if err := decodeBody(resp, &out); err != nil {
		return nil, &TransportError{Op: "add-literature response", Err: err}
	}
	return &out, nil
}

func (c *Client) SearchLiterature(ctx context.Context, req *dto.SearchLiteratureRequest) (*dto.SearchLiteratureResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/search-literature")
	if err != nil {
		return nil, &TransportError{Op: "search-literature request", Err: err}
	}

	var out dto.SearchLiteratureResponse
	if err := decodeBody(resp, &out); err != nil {
		return nil, &TransportError{Op: "search-literature response", Err: err}
	}
	return &out, nil
}

// decodeBody unmarshals the response body regardless of status code. Error
// statuses still carry the wire error shape, which callers inspect via the
// success field.
func decodeBody(resp *resty.Response, out interface{}) error {
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode response (http %d): %w", resp.StatusCode(), err)
	}
	return nil
}
