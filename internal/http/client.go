package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Common errors.
var (
	ErrStatus       = errors.New("http: unsuccessful status")
	ErrNotFound     = errors.New("http: resource not found")
	ErrForbidden    = errors.New("http: access forbidden")
	ErrUnauthorized = errors.New("http: unauthorized")
	ErrServerError  = errors.New("http: server error")
)

// StatusError is returned for responses outside the 2xx range. It matches
// ErrStatus with errors.Is, and additionally ErrNotFound, ErrForbidden,
// ErrUnauthorized or ErrServerError depending on the code.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http: unexpected status %s", e.Status)
}

func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrStatus:
		return true
	case ErrNotFound:
		return e.Code == http.StatusNotFound
	case ErrForbidden:
		return e.Code == http.StatusForbidden
	case ErrUnauthorized:
		return e.Code == http.StatusUnauthorized
	case ErrServerError:
		return e.Code >= 500
	}
	return false
}

// Options configures the HTTP client.
type Options struct {
	// Timeout bounds the whole request including reading the body.
	// Default: 0 (no limit; streamed bodies may take arbitrarily long)
	Timeout time.Duration

	// ResponseHeaderTimeout bounds the wait for response headers.
	// Default: 30s
	ResponseHeaderTimeout time.Duration

	// MaxIdleConnsPerHost sets the maximum idle connections per host.
	// Default: 2
	MaxIdleConnsPerHost int

	// UserAgent is sent with every request when set.
	UserAgent string
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		ResponseHeaderTimeout: 30 * time.Second,
		MaxIdleConnsPerHost:   2,
	}
}

// Response is a successful response whose body has not been read yet.
type Response struct {
	Body          io.ReadCloser
	ContentLength int64 // -1 if not declared
	ContentType   string
}

// Client issues streamed GET requests.
type Client struct {
	client *http.Client
	opts   Options
}

// NewClient creates a new HTTP client with the given options.
func NewClient(opts Options) *Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConnsPerHost:   opts.MaxIdleConnsPerHost,
		IdleConnTimeout:       90 * time.Second,
		ResponseHeaderTimeout: opts.ResponseHeaderTimeout,
		DisableCompression:    true, // the declared length must match the bytes we stream
	}

	return &Client{
		client: &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		},
		opts: opts,
	}
}

// WrapClient uses an existing *http.Client for requests. Its transport
// settings are left untouched.
func WrapClient(c *http.Client, opts Options) *Client {
	return &Client{client: c, opts: opts}
}

// Get performs a GET request and returns as soon as the headers have been
// read. The caller must close Response.Body.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if c.opts.UserAgent != "" {
		req.Header.Set("User-Agent", c.opts.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	if err := checkStatusCode(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return &Response{
		Body:          resp.Body,
		ContentLength: resp.ContentLength,
		ContentType:   resp.Header.Get("Content-Type"),
	}, nil
}

// checkStatusCode returns a *StatusError for non-success status codes.
func checkStatusCode(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	return &StatusError{Code: resp.StatusCode, Status: resp.Status}
}
