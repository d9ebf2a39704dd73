package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/habithero/habitctl/pkg/httputil"
)

// Client talks to the habit-tracker REST collaborator. It implements
// AuthAPI, HabitsAPI, CheckinsAPI and InsightsAPI.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

func New(baseURL string, tokens TokenSource, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// NewWithHTTP builds a client on a caller-owned http.Client. Used by tests
// against a fake collaborator.
func NewWithHTTP(baseURL string, tokens TokenSource, httpClient *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

func (c *Client) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// do performs one request/response round trip. A non-2xx status comes back
// as *httputil.APIError; callers map it onto sentinel errors. out may be nil
// for operations without a response body.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := sonic.ConfigDefault.Marshal(body)
		if err != nil {
			return errors.New("encoding request body: " + err.Error())
		}
		reqBody = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.New("building request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.New("transport error: " + err.Error())
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return httputil.ParseAPIError(resp)
	}
	return httputil.DecodeResponse(resp, out)
}

// statusOf extracts the HTTP status of an API error, 0 for transport and
// decode failures.
func statusOf(err error) int {
	var apiErr *httputil.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
