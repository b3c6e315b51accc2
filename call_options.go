package dub

import (
	"net/http"
	"strings"
	"time"
)

// CallOption customizes a single API call.
type CallOption func(*callOptions)

type callOptions struct {
	headers   http.Header
	timeout   time.Duration
	raw       *RawResponse
	workspace string
}

func buildCallOptions(opts []CallOption) callOptions {
	co := callOptions{headers: http.Header{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&co)
		}
	}
	return co
}

// WithHeader sets an extra request header. Empty keys are ignored.
func WithHeader(key, value string) CallOption {
	return func(co *callOptions) {
		key = strings.TrimSpace(key)
		if key == "" {
			return
		}
		co.headers.Set(key, value)
	}
}

// WithTimeout bounds the call, including reading the response body.
func WithTimeout(d time.Duration) CallOption {
	return func(co *callOptions) {
		co.timeout = d
	}
}

// WithRawResponse captures the status, headers and body of the exchange
// into dst. Without it the raw response is never retained.
func WithRawResponse(dst *RawResponse) CallOption {
	return func(co *callOptions) {
		co.raw = dst
	}
}

// WithWorkspace scopes the call to a workspace other than Config.WorkspaceID.
func WithWorkspace(id string) CallOption {
	return func(co *callOptions) {
		co.workspace = strings.TrimSpace(id)
	}
}
