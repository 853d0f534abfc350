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
	"time"

	"carexpert/config"
	"carexpert/models"
	"carexpert/utils"

	"go.uber.org/zap"
)

// SessionCookie is the cookie the backend sets on login and expects on every
// credentialed request.
const SessionCookie = "token"

// Client is the credentialed REST client for the CareXpert backend. Session
// credentials live in the cookie jar and ride on every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client against the given base URL (falling back to the
// configured API_BASE_URL when empty).
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		baseURL = config.AppConfig.APIBaseURL
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	timeout := time.Duration(config.AppConfig.HTTPTimeoutSecs) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}, nil
}

// do issues one request and decodes the {statusCode, message, success, data}
// envelope. A reachable backend answering success=false (or a non-2xx
// status) becomes an *utils.APIError carrying the server's message; anything
// below that (DNS, refusal, cancellation) is returned as a wrapped transport
// error.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	logger := utils.GetLogger()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("Request failed", zap.String("method", method), zap.String("path", path), zap.Error(err))
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	var envelope models.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		if resp.StatusCode >= 400 {
			return &utils.APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	if !envelope.Success || resp.StatusCode >= 400 {
		logger.Debug("Request rejected",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", envelope.Message))
		return &utils.APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data from %s: %w", path, err)
		}
	}
	return nil
}

// get and post are the only verbs the backend uses.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}
