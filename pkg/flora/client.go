package flora

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	pkgerrors "github.com/florawhisper/storefront-gateway/pkg/errors"
	"github.com/florawhisper/storefront-gateway/pkg/metrics"
)

const errorBodyReadLimit int64 = 4096

var errBaseURLRequired = errors.New("flora api base url is required")

// Client wraps the remote flora commerce API. It owns no state beyond the
// connection settings; the caller supplies the bearer token per request.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *metrics.UpstreamMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithMetrics records every outbound call on the given collector.
func WithMetrics(upstream *metrics.UpstreamMetrics) Option {
	return func(c *Client) {
		c.metrics = upstream
	}
}

// NewClient builds a flora API client for the given base URL (including the
// upstream's /api prefix).
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// Ping checks upstream reachability for the readiness probe.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeUpstream, "flora client not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL("/flora/categories"), nil)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "build ping request")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "flora api unreachable")
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= http.StatusInternalServerError {
		return pkgerrors.New(pkgerrors.CodeUpstream, fmt.Sprintf("flora api returned status %d", resp.StatusCode))
	}
	return nil
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + path
}

func (c *Client) newRequest(ctx context.Context, token, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	target := c.buildURL(path)
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "build flora request")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do executes the request and records the call outcome.
func (c *Client) do(req *http.Request, action string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	c.metrics.ObserveCall(action, status, time.Since(start))
	return resp, err
}

// doJSON executes the request and decodes a JSON body into out when out is
// non-nil.
func (c *Client) doJSON(req *http.Request, action string, out any) error {
	resp, err := c.do(req, action)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, action+" request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.errorFromResponse(resp, action)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "decode "+action+" response")
	}
	return nil
}

// doText executes the request and returns the plain-text body the upstream
// uses for create/update/delete confirmations.
func (c *Client) doText(req *http.Request, action string) (string, error) {
	resp, err := c.do(req, action)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeUpstream, err, action+" request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", c.errorFromResponse(resp, action)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "read "+action+" response")
	}
	return strings.TrimSpace(string(body)), nil
}

func (c *Client) getJSON(ctx context.Context, token, path string, query url.Values, action string, out any) error {
	req, err := c.newRequest(ctx, token, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return c.doJSON(req, action, out)
}

func (c *Client) sendJSON(ctx context.Context, token, method, path string, payload any, action string, out any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "marshal "+action+" request")
	}
	req, err := c.newRequest(ctx, token, method, path, nil, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.doJSON(req, action, out)
}

// sendMultipart forwards field/file parts as multipart/form-data, the shape
// the upstream expects for image-carrying create/update calls.
func (c *Client) sendMultipart(ctx context.Context, token, method, path string, fields []FormField, file *FormFile, action string) (*http.Request, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range fields {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "write "+action+" form field")
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "write "+action+" form file")
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "write "+action+" form file")
		}
	}
	if err := writer.Close(); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstream, err, "finalize "+action+" form")
	}

	req, err := c.newRequest(ctx, token, method, path, nil, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req, nil
}

// errorFromResponse maps a non-2xx upstream response to a typed error,
// surfacing the body's error/message field when present.
func (c *Client) errorFromResponse(resp *http.Response, action string) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))

	message := upstreamMessage(body)
	if message == "" {
		message = fmt.Sprintf("%s failed with status %d", action, resp.StatusCode)
	}

	code := codeForStatus(resp.StatusCode)
	return pkgerrors.New(code, message).WithDetails(map[string]any{
		"upstream_status": resp.StatusCode,
	})
}

func upstreamMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Error != "" {
		return payload.Error
	}
	return payload.Message
}

func codeForStatus(status int) pkgerrors.Code {
	switch status {
	case http.StatusBadRequest:
		return pkgerrors.CodeValidation
	case http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case http.StatusConflict:
		return pkgerrors.CodeConflict
	default:
		return pkgerrors.CodeUpstream
	}
}
