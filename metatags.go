package dub

import (
	"context"
	"net/http"

	"github.com/dubinc/dub-go/routes"
)

// Metatags are the preview fields scraped from a destination URL.
type Metatags struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Image       Optional[string] `json:"image"`
}

// MetatagsClient wraps GET /metatags.
type MetatagsClient struct {
	client *Client
}

type metatagsParams struct {
	URL string `json:"url" dub:"query,required"`
}

// Get scrapes the title, description and image of url.
func (c *MetatagsClient) Get(ctx context.Context, url string, opts ...CallOption) (Metatags, error) {
	if c == nil || c.client == nil {
		return Metatags{}, ConfigError{Reason: "metatags client not initialized"}
	}
	return call[Metatags](ctx, c.client, http.MethodGet, routes.Metatags, metatagsParams{URL: url}, opts)
}
