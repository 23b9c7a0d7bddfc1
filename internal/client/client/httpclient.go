package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/artgallery/internal/client/models"
	"github.com/dmitrijs2005/artgallery/internal/logging"
)

// RequestIDHeader carries a fresh uuid on every request.
const RequestIDHeader = "X-Request-ID"

// HTTPClient talks to the storefront REST backend. Every endpoint goes
// through do, and every failure through translate.
type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	log     logging.Logger
	newID   func() string
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout bounds each request; zero means no deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// NewHTTPClient builds a client for the backend at baseURL.
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		log:     logging.Nop(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "http_client")
	return c, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// request describes one call. body may be nil.
type request struct {
	method string
	path   string
	query  url.Values
	body   body
}

func (c *HTTPClient) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = u.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// response is a successful reply.
type response struct {
	contentType string
	data        []byte
}

// do performs r and returns the body of a 2xx response.
func (c *HTTPClient) do(ctx context.Context, r request) (response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var (
		payload     io.Reader
		contentType string
	)
	if r.body != nil {
		var err error
		payload, contentType, err = r.body.encode()
		if err != nil {
			return response{}, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.endpoint(r.path, r.query), payload)
	if err != nil {
		return response{}, fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)

	requestID := c.newID()
	req.Header.Set(RequestIDHeader, requestID)
	log := c.log.With("method", r.method, "path", r.path, "request_id", requestID)

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err.Error())
		return response{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn(ctx, "reading response failed", "status", resp.StatusCode, "error", err.Error())
		return response{}, &NetworkError{Err: err}
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(started).String())

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		appErr := translate(resp.StatusCode, resp.Header.Get("Content-Type"), data)
		log.Warn(ctx, "server rejected request", "status", resp.StatusCode, "message", appErr.Message)
		return response{}, appErr
	}
	return response{contentType: resp.Header.Get("Content-Type"), data: data}, nil
}

// translate turns a non-2xx response into an ApplicationError, keeping the
// server's message verbatim when there is one.
func translate(status int, contentType string, data []byte) *ApplicationError {
	return &ApplicationError{Status: status, Message: serverMessage(contentType, data, FallbackMessage)}
}

// serverMessage extracts a human message from a response body: the
// "message" field of a JSON object, a bare JSON string, or a text/plain body.
func serverMessage(contentType string, data []byte, fallback string) string {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fallback
	}

	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(trimmed, &obj); err == nil {
		if obj.Message != "" {
			return obj.Message
		}
		return fallback
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		if s != "" {
			return s
		}
		return fallback
	}

	if mt, _, err := mime.ParseMediaType(contentType); err == nil && mt == "text/plain" {
		return string(trimmed)
	}
	return fallback
}

func (c *HTTPClient) doJSON(ctx context.Context, r request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(resp.data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.data, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", r.method, r.path, err)
	}
	return nil
}

// doStatus decodes replies that may be a JSON StatusResult, a bare JSON
// string or plain text. A 2xx without an explicit success flag counts as
// success.
func (c *HTTPClient) doStatus(ctx context.Context, r request) (models.StatusResult, error) {
	resp, err := c.do(ctx, r)
	if err != nil {
		return models.StatusResult{}, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(resp.data, &obj); err == nil {
		var res models.StatusResult
		if err := json.Unmarshal(resp.data, &res); err != nil {
			return models.StatusResult{}, fmt.Errorf("decode %s %s response: %w", r.method, r.path, err)
		}
		if _, ok := obj["success"]; !ok {
			res.Success = true
		}
		return res, nil
	}

	return models.StatusResult{Success: true, Message: serverMessage(resp.contentType, resp.data, "")}, nil
}
