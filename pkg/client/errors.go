package client

import (
	"fmt"
	"time"
)

// ValidationError reports a request rejected client-side before any network
// call was made, such as a path parameter that could escape its endpoint.
type ValidationError struct {
	Param string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Param, e.Value)
}

// RateLimitError reports a 429 response after the retry budget was
// exhausted. RetryAfter carries the server's last requested wait.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// APIError reports a non-429 error response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// TransportError reports a network-level failure (connection error, timeout,
// unreadable response) after the retry budget was exhausted.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
