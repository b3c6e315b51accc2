package dub

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func jsonServer(status int, body string, hdr map[string]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		for k, v := range hdr {
			w.Header().Set(k, v)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestStatusTable(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		hdr    map[string]string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"error":{"code":"unauthorized","message":"Missing API key."}}`,
			check: func(t *testing.T, err error) {
				if !IsUnauthorized(err) {
					t.Fatalf("expected UnauthorizedError, got %T %v", err, err)
				}
			},
		},
		{
			name:   "not found",
			status: http.StatusNotFound,
			body:   `{"error":{"code":"not_found","message":"Link not found.","doc_url":"https://dub.co/docs/not-found"}}`,
			check: func(t *testing.T, err error) {
				var nf *NotFoundError
				if !errors.As(err, &nf) {
					t.Fatalf("expected NotFoundError, got %T %v", err, err)
				}
				if nf.Code != "not_found" || nf.Message != "Link not found." || nf.DocURL == "" {
					t.Fatalf("unexpected envelope %+v", nf.APIError)
				}
			},
		},
		{
			name:   "unprocessable",
			status: http.StatusUnprocessableEntity,
			body:   `{"code":"unprocessable_entity","message":"invalid url"}`,
			check: func(t *testing.T, err error) {
				verr := asValidation(t, err)
				if verr.Status != http.StatusUnprocessableEntity || verr.Code != "unprocessable_entity" {
					t.Fatalf("unexpected validation error %+v", verr)
				}
			},
		},
		{
			name:   "rate limited",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"code":"rate_limit_exceeded","message":"Slow down."}}`,
			hdr:    map[string]string{"Retry-After": "7"},
			check: func(t *testing.T, err error) {
				var rl *RateLimitedError
				if !errors.As(err, &rl) {
					t.Fatalf("expected RateLimitedError, got %T %v", err, err)
				}
				if rl.RetryAfter != 7*time.Second {
					t.Fatalf("expected 7s retry-after, got %s", rl.RetryAfter)
				}
			},
		},
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `upstream exploded`,
			check: func(t *testing.T, err error) {
				var apiErr *APIError
				if !errors.As(err, &apiErr) {
					t.Fatalf("expected APIError, got %T %v", err, err)
				}
				if apiErr.Status != 500 || apiErr.Message != "upstream exploded" {
					t.Fatalf("unexpected api error %+v", apiErr)
				}
				if IsNotFound(err) || IsRateLimited(err) {
					t.Fatalf("500 must not map onto a specific kind")
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := jsonServer(tc.status, tc.body, tc.hdr)
			defer srv.Close()
			client := newTestClient(t, srv, Config{})
			tags, err := client.Tags.List(context.Background())
			if err == nil {
				t.Fatalf("expected error, got %+v", tags)
			}
			if tags != nil {
				t.Fatalf("expected no value alongside error, got %+v", tags)
			}
			tc.check(t, err)
		})
	}
}

func TestAPIErrorCarriesRequestID(t *testing.T) {
	srv := jsonServer(http.StatusNotFound, `{"error":{"code":"not_found","message":"nope"}}`, nil)
	defer srv.Close()
	client := newTestClient(t, srv, Config{})
	_, err := client.Workspaces.Get(context.Background(), "acme", WithHeader("X-Request-Id", "req_123"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError in chain, got %T %v", err, err)
	}
	if apiErr.RequestID != "req_123" {
		t.Fatalf("expected request id req_123, got %q", apiErr.RequestID)
	}
}

func TestResponseSchemaViolation(t *testing.T) {
	srv := jsonServer(http.StatusOK, `[{"id":"t1","name":"news","color":"chartreuse"}]`, nil)
	defer srv.Close()
	client := newTestClient(t, srv, Config{})
	_, err := client.Tags.List(context.Background())
	var rverr *ResponseValidationError
	if !errors.As(err, &rverr) {
		t.Fatalf("expected ResponseValidationError, got %T %v", err, err)
	}
	verr := asValidation(t, err)
	if verr.Field != "/0/color" {
		t.Fatalf("expected /0/color, got %q", verr.Field)
	}
}

func TestRawResponseOnlyWhenRequested(t *testing.T) {
	srv := jsonServer(http.StatusOK, `[]`, map[string]string{"X-Ratelimit-Remaining": "59"})
	defer srv.Close()
	client := newTestClient(t, srv, Config{})

	var raw RawResponse
	if _, err := client.Tags.List(context.Background(), WithRawResponse(&raw)); err != nil {
		t.Fatalf("list: %v", err)
	}
	if raw.StatusCode != http.StatusOK || string(raw.Body) != "[]" {
		t.Fatalf("unexpected raw response %+v", raw)
	}
	if raw.Header.Get("X-Ratelimit-Remaining") != "59" {
		t.Fatalf("expected headers captured, got %v", raw.Header)
	}
}

func TestRawResponseCapturedOnError(t *testing.T) {
	srv := jsonServer(http.StatusNotFound, `{"error":{"code":"not_found","message":"nope"}}`, nil)
	defer srv.Close()
	client := newTestClient(t, srv, Config{})
	var raw RawResponse
	_, err := client.Domains.Delete(context.Background(), "gone.example", WithRawResponse(&raw))
	if !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if raw.StatusCode != http.StatusNotFound || len(raw.Body) == 0 {
		t.Fatalf("expected raw error response, got %+v", raw)
	}
}

func TestParseRetryAfter(t *testing.T) {
	if got := parseRetryAfter("3"); got != 3*time.Second {
		t.Fatalf("expected 3s, got %s", got)
	}
	if got := parseRetryAfter(""); got != 0 {
		t.Fatalf("expected 0, got %s", got)
	}
	future := time.Now().Add(time.Minute).UTC().Format(http.TimeFormat)
	if got := parseRetryAfter(future); got <= 0 || got > time.Minute {
		t.Fatalf("expected positive duration under a minute, got %s", got)
	}
}

func TestUnprocessableCarriesDocURLAndRequestID(t *testing.T) {
	srv := jsonServer(http.StatusUnprocessableEntity,
		`{"error":{"code":"unprocessable_entity","message":"bad url","doc_url":"https://dub.co/docs/api-reference/errors#unprocessable-entity"}}`,
		map[string]string{"X-Request-Id": "req_422"})
	defer srv.Close()
	client := newTestClient(t, srv, Config{})
	_, err := client.Links.Create(context.Background(), CreateLinkRequest{URL: "https://a.example"})
	verr := asValidation(t, err)
	if verr.Status != http.StatusUnprocessableEntity || verr.Code != "unprocessable_entity" {
		t.Fatalf("unexpected status/code %+v", verr)
	}
	if verr.DocURL != "https://dub.co/docs/api-reference/errors#unprocessable-entity" {
		t.Fatalf("expected doc url, got %q", verr.DocURL)
	}
	if verr.RequestID != "req_422" {
		t.Fatalf("expected request id req_422, got %q", verr.RequestID)
	}
}
