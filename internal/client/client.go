// Package client is the typed client for the upstream webhook backend,
// which owns all persistence (employees, shifts, leave, missions, AI).
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// apiResponse backend envelope: {success, data|error, message}.
type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

// Client resty-backed backend API client.
type Client struct {
	httpClient *resty.Client
	logger     *zap.Logger
}

// New builds a Client for the given base URL (".../webhook").
func New(baseURL string, timeout time.Duration, retryCount int, logger *zap.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(1 * time.Second).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: httpClient,
		logger:     logger,
	}
}

// call issues one request and unwraps the envelope into out (out may be
// nil when the caller only cares about success).
func (c *Client) call(ctx context.Context, method, path string, query map[string]string, body any, out any) error {
	req := c.httpClient.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("api request %s %s failed: %w", method, path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("api request %s %s failed: status %d", method, path, resp.StatusCode())
	}

	var envelope apiResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("api response %s %s: invalid JSON: %w", method, path, err)
	}
	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = envelope.Message
		}
		if msg == "" {
			msg = "request failed"
		}
		return fmt.Errorf("api response %s %s: %s", method, path, msg)
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("api response %s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

// callRaw is for AI endpoints whose responses are not wrapped in the
// standard data envelope.
func (c *Client) callRaw(ctx context.Context, method, path string, body any, out any) error {
	resp, err := c.httpClient.R().SetContext(ctx).SetBody(body).Execute(method, path)
	if err != nil {
		return fmt.Errorf("api request %s %s failed: %w", method, path, err)
	}
	if resp.IsError() {
		return fmt.Errorf("api request %s %s failed: status %d", method, path, resp.StatusCode())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("api response %s %s: invalid JSON: %w", method, path, err)
	}
	return nil
}
