package dub

import (
	"context"
	"net/http"

	"github.com/dubinc/dub-go/routes"
)

// Tag labels links within a workspace.
type Tag struct {
	ID    string   `json:"id" dub:"required"`
	Name  string   `json:"name" dub:"required"`
	Color TagColor `json:"color" dub:"required"`
}

// CreateTagRequest mirrors POST /tags. The API picks a color when Color is unset.
type CreateTagRequest struct {
	Tag   string             `json:"tag" dub:"required"`
	Color Optional[TagColor] `json:"color"`
}

// UpdateTagRequest mirrors PATCH /tags/{id}.
type UpdateTagRequest struct {
	ID    string             `json:"id" dub:"path"`
	Name  Optional[string]   `json:"name"`
	Color Optional[TagColor] `json:"color"`
}

// TagsClient wraps the tag endpoints.
type TagsClient struct {
	client *Client
}

// List returns every tag in the workspace.
func (c *TagsClient) List(ctx context.Context, opts ...CallOption) ([]Tag, error) {
	if c == nil || c.client == nil {
		return nil, ConfigError{Reason: "tags client not initialized"}
	}
	return call[[]Tag](ctx, c.client, http.MethodGet, routes.Tags, nil, opts)
}

// Create adds a tag.
func (c *TagsClient) Create(ctx context.Context, req CreateTagRequest, opts ...CallOption) (Tag, error) {
	if c == nil || c.client == nil {
		return Tag{}, ConfigError{Reason: "tags client not initialized"}
	}
	return call[Tag](ctx, c.client, http.MethodPost, routes.Tags, req, opts)
}

// Update renames or recolors a tag.
func (c *TagsClient) Update(ctx context.Context, req UpdateTagRequest, opts ...CallOption) (Tag, error) {
	if c == nil || c.client == nil {
		return Tag{}, ConfigError{Reason: "tags client not initialized"}
	}
	return call[Tag](ctx, c.client, http.MethodPatch, routes.TagsByID, req, opts)
}
