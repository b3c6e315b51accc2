// Package headers defines the HTTP header names the SDK sends and reads.
package headers

const (
	// Authorization carries the bearer token.
	Authorization = "Authorization"

	// RequestID correlates a call across client logs and server logs.
	RequestID = "X-Request-Id"

	// RetryAfter is set on 429 responses.
	RetryAfter = "Retry-After"

	// Traceparent is the W3C trace-context header.
	Traceparent = "Traceparent"

	// ContentType and Accept are set on every JSON request.
	ContentType = "Content-Type"
	Accept      = "Accept"

	// UserAgent identifies the SDK build.
	UserAgent = "User-Agent"
)
