package dub

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/dubinc/dub-go/headers"
)

// ConfigError reports an invalid client configuration.
type ConfigError struct {
	Reason string
}

func (e ConfigError) Error() string { return "dub: " + e.Reason }

// ValidationError reports a value that does not satisfy its schema.
//
// It is returned before any network I/O for malformed caller input, and for
// 422 responses from the API (Status, Code, DocURL and RequestID are then
// populated).
type ValidationError struct {
	// Field is a JSON pointer to the offending value ("/links/2/url").
	Field    string
	Expected string
	Got      string
	Message  string

	Status    int
	Code      string
	DocURL    string
	RequestID string
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("dub: validation failed")
	if e.Field != "" {
		fmt.Fprintf(&b, " at %s", e.Field)
	}
	switch {
	case e.Message != "":
		b.WriteString(": " + e.Message)
	case e.Expected != "":
		fmt.Fprintf(&b, ": expected %s, got %s", e.Expected, e.Got)
	}
	return b.String()
}

// ResponseValidationError reports a successful response whose body does not
// match the documented schema.
type ResponseValidationError struct {
	Status int
	Err    error
}

func (e *ResponseValidationError) Error() string {
	return fmt.Sprintf("dub: response (%d) failed validation: %v", e.Status, e.Err)
}

func (e *ResponseValidationError) Unwrap() error { return e.Err }

// APIError captures the error envelope of a non-2xx response.
type APIError struct {
	Status    int
	Code      string
	Message   string
	DocURL    string
	RequestID string
}

func (e *APIError) Error() string {
	code := e.Code
	if code == "" {
		code = "unknown"
	}
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.Status)
	}
	return fmt.Sprintf("dub: %s (%d): %s", code, e.Status, msg)
}

// NotFoundError is returned for 404 responses.
type NotFoundError struct{ APIError }

func (e *NotFoundError) Unwrap() error { return &e.APIError }

// UnauthorizedError is returned for 401 responses.
type UnauthorizedError struct{ APIError }

func (e *UnauthorizedError) Unwrap() error { return &e.APIError }

// RateLimitedError is returned for 429 responses.
type RateLimitedError struct {
	APIError
	RetryAfter time.Duration
}

func (e *RateLimitedError) Unwrap() error { return &e.APIError }

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsUnauthorized reports whether err is a 401 from the API.
func IsUnauthorized(err error) bool {
	var target *UnauthorizedError
	return errors.As(err, &target)
}

// IsRateLimited reports whether err is a 429 from the API.
func IsRateLimited(err error) bool {
	var target *RateLimitedError
	return errors.As(err, &target)
}

// IsValidation reports whether err is a ValidationError, raised either
// locally or by the API.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		DocURL  string `json:"doc_url"`
	} `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// decodeAPIError maps a non-2xx response onto the error taxonomy.
func decodeAPIError(resp *http.Response, data []byte) error {
	apiErr := APIError{
		Status:    resp.StatusCode,
		RequestID: resp.Header.Get(headers.RequestID),
	}
	var env errorEnvelope
	switch {
	case len(data) == 0:
		apiErr.Message = resp.Status
	case json.Unmarshal(data, &env) != nil:
		apiErr.Message = strings.TrimSpace(string(data))
	case env.Error != nil:
		apiErr.Code = env.Error.Code
		apiErr.Message = env.Error.Message
		apiErr.DocURL = env.Error.DocURL
	default:
		apiErr.Code = env.Code
		apiErr.Message = env.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = resp.Status
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return &UnauthorizedError{APIError: apiErr}
	case http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	case http.StatusUnprocessableEntity:
		return &ValidationError{
			Message:   apiErr.Message,
			Status:    apiErr.Status,
			Code:      apiErr.Code,
			DocURL:    apiErr.DocURL,
			RequestID: apiErr.RequestID,
		}
	case http.StatusTooManyRequests:
		return &RateLimitedError{APIError: apiErr, RetryAfter: parseRetryAfter(resp.Header.Get(headers.RetryAfter))}
	default:
		return &apiErr
	}
}

func parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func readBody(resp *http.Response) ([]byte, error) {
	//nolint:errcheck // best-effort cleanup on return
	defer func() { _ = resp.Body.Close() }()
	return io.ReadAll(resp.Body)
}
