package client

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

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

// retryableError marks an outcome the retry policy may attempt again.
// terminal is the error surfaced if the retry budget runs out; delay is the
// wait before the next attempt.
type retryableError struct {
	terminal error
	delay    time.Duration
}

func (e *retryableError) Error() string {
	return e.terminal.Error()
}

func (e *retryableError) Unwrap() error {
	return e.terminal
}

// classifiedDelays implements backoff.BackOff. Each wait comes from the
// response classifier rather than a fixed schedule: the Retry-After header
// for rate limits, the linear transport schedule otherwise.
type classifiedDelays struct {
	next time.Duration
}

func (d *classifiedDelays) NextBackOff() time.Duration {
	return d.next
}

func (d *classifiedDelays) Reset() {}

// do executes one logical API call: build the URL, issue the request,
// classify the response, and retry rate limits and transport failures within
// the configured budget. The returned bytes are the raw response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "path", path, "request_id", requestID)

	delays := &classifiedDelays{}
	policy := backoff.WithContext(backoff.WithMaxRetries(delays, uint64(c.maxRetries)), ctx)

	attempt := 0
	var result json.RawMessage
	operation := func() error {
		err := c.attempt(ctx, method, fullURL, payload, requestID, attempt, &result)
		if err == nil {
			return nil
		}

		var re *retryableError
		if errors.As(err, &re) {
			delays.next = re.delay
			logger.Debug("retrying request",
				"attempt", attempt,
				"wait", re.delay,
				"cause", re.terminal,
			)
			attempt++
			return re
		}
		return backoff.Permanent(err)
	}

	if err := backoff.Retry(operation, policy); err != nil {
		var re *retryableError
		if errors.As(err, &re) {
			// Budget exhausted on a retryable outcome.
			return nil, re.terminal
		}
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		// Context cancellation between attempts lands here.
		return nil, &TransportError{Err: err}
	}

	return result, nil
}

// attempt issues a single HTTP request and classifies the outcome.
func (c *Client) attempt(ctx context.Context, method, fullURL string, payload []byte, requestID string, attempt int, out *json.RawMessage) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &retryableError{
			terminal: &TransportError{Err: err},
			delay:    c.transportBackoff * time.Duration(attempt+1),
		}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &retryableError{
			terminal: &TransportError{Err: err},
			delay:    c.transportBackoff * time.Duration(attempt+1),
		}
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := c.retryAfterDefault
		if raw := resp.Header.Get("Retry-After"); raw != "" {
			if secs, perr := strconv.ParseFloat(raw, 64); perr == nil && secs >= 0 {
				retryAfter = time.Duration(secs * float64(time.Second))
			}
		}
		return &retryableError{
			terminal: &RateLimitError{RetryAfter: retryAfter},
			delay:    retryAfter,
		}
	}

	if resp.StatusCode >= 400 {
		msg := ""
		if len(respBody) > 0 {
			var envelope struct {
				Error string `json:"error"`
			}
			if json.Unmarshal(respBody, &envelope) == nil {
				msg = envelope.Error
			}
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	*out = json.RawMessage(respBody)
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) patch(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body)
}

// sanitizePathParam validates a caller-supplied identifier before it is
// interpolated into the URL path. Rejects empty values and anything that
// could traverse into a different endpoint. No network call is made on
// failure.
func sanitizePathParam(name, value string) (string, error) {
	if value == "" ||
		strings.Contains(value, "/") ||
		strings.Contains(value, "\\") ||
		strings.Contains(value, "..") {
		return "", &ValidationError{Param: name, Value: value}
	}
	return value, nil
}

// unwrap extracts the named envelope key from a response body, falling back
// to the whole body when the key is absent. The remote API's envelope shape
// is not uniform across endpoints.
func (c *Client) unwrap(body json.RawMessage, key string) json.RawMessage {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		if raw, ok := envelope[key]; ok {
			return raw
		}
	}
	c.logger.Debug("envelope key absent, treating body as payload", "key", key)
	return body
}

// searchLimit clamps a search limit to the server-safe [1, 500] range. The
// zero value selects the default page size.
func searchLimit(limit int) int {
	if limit == 0 {
		return defaultPageSize
	}
	return clampLimit(limit)
}

func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

const (
	defaultPageSize = 20
	maxPageSize     = 500
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
