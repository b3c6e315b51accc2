package dub

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/dubinc/dub-go/routes"
)

// MockClient provides an in-memory client for unit tests without hitting the API.
// It currently supports the link surface (LinksAPI).
type MockClient struct {
	Links *MockLinksClient
}

// MockClientError is returned when a mock client is used without configuration.
type MockClientError struct {
	Reason string
}

func (e MockClientError) Error() string { return "mock client: " + e.Reason }

type mockResult struct {
	value any
	err   error
}

// MockLinksClient implements LinksAPI using preconfigured responses. Requests
// still go through BuildRequest, so invalid params fail exactly as they would
// against the real client and consume nothing from the queue.
type MockLinksClient struct {
	mu    sync.Mutex
	queue []mockResult
	calls []RequestDescriptor
}

var _ LinksAPI = (*MockLinksClient)(nil)

const mockBaseURL = "https://mock.dub.invalid"

// NewMockClient creates an empty mock client.
func NewMockClient() *MockClient {
	return &MockClient{Links: &MockLinksClient{}}
}

// WithLink enqueues a link for the next Get, Create or Update call.
func (c *MockClient) WithLink(link Link) *MockClient {
	c.Links.enqueue(link, nil)
	return c
}

// WithLinks enqueues a slice for the next List or BulkCreate call.
func (c *MockClient) WithLinks(links []Link) *MockClient {
	c.Links.enqueue(append([]Link(nil), links...), nil)
	return c
}

// WithCount enqueues the result of the next Count call.
func (c *MockClient) WithCount(n int) *MockClient {
	c.Links.enqueue(n, nil)
	return c
}

// WithDeleted enqueues the acknowledgement of the next Delete call.
func (c *MockClient) WithDeleted(id string) *MockClient {
	c.Links.enqueue(DeletedLink{ID: id}, nil)
	return c
}

// WithError enqueues an error for the next call, whatever its kind.
func (c *MockClient) WithError(err error) *MockClient {
	c.Links.enqueue(nil, err)
	return c
}

func (c *MockLinksClient) enqueue(v any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = append(c.queue, mockResult{value: v, err: err})
}

// Calls returns the requests the mock has accepted, oldest first.
func (c *MockLinksClient) Calls() []RequestDescriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]RequestDescriptor(nil), c.calls...)
}

func mockDo[T any](c *MockLinksClient, method, route string, params any) (T, error) {
	var zero T
	desc, err := BuildRequest(mockBaseURL, method, route, params)
	if err != nil {
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		return zero, MockClientError{Reason: fmt.Sprintf("no response configured for %s %s", method, route)}
	}
	res := c.queue[0]
	c.queue = c.queue[1:]
	c.calls = append(c.calls, *desc)
	if res.err != nil {
		return zero, res.err
	}
	v, ok := res.value.(T)
	if !ok {
		return zero, MockClientError{Reason: fmt.Sprintf("queued %T cannot answer %s %s", res.value, method, route)}
	}
	return v, nil
}

// List returns the next queued []Link.
func (c *MockLinksClient) List(_ context.Context, req ListLinksRequest, _ ...CallOption) ([]Link, error) {
	return mockDo[[]Link](c, http.MethodGet, routes.Links, req)
}

// Count returns the next queued count.
func (c *MockLinksClient) Count(_ context.Context, req CountLinksRequest, _ ...CallOption) (int, error) {
	return mockDo[int](c, http.MethodGet, routes.LinksCount, req)
}

// Get returns the next queued Link.
func (c *MockLinksClient) Get(_ context.Context, req GetLinkRequest, _ ...CallOption) (Link, error) {
	return mockDo[Link](c, http.MethodGet, routes.LinksInfo, req)
}

// Create returns the next queued Link.
func (c *MockLinksClient) Create(_ context.Context, req CreateLinkRequest, _ ...CallOption) (Link, error) {
	return mockDo[Link](c, http.MethodPost, routes.Links, req)
}

// Update returns the next queued Link.
func (c *MockLinksClient) Update(_ context.Context, req UpdateLinkRequest, _ ...CallOption) (Link, error) {
	return mockDo[Link](c, http.MethodPatch, routes.LinksByID, req)
}

// Delete returns the next queued DeletedLink.
func (c *MockLinksClient) Delete(_ context.Context, linkID string, _ ...CallOption) (DeletedLink, error) {
	return mockDo[DeletedLink](c, http.MethodDelete, routes.LinksByID, linkIDParams{LinkID: linkID})
}

// BulkCreate returns the next queued []Link.
func (c *MockLinksClient) BulkCreate(_ context.Context, links []CreateLinkRequest, _ ...CallOption) ([]Link, error) {
	return mockDo[[]Link](c, http.MethodPost, routes.LinksBulk, bulkCreateParams{Links: links})
}
