package dub

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dubinc/dub-go/routes"
)

// Link is a short link as returned by the API.
type Link struct {
	ID          string                      `json:"id" dub:"required"`
	Domain      string                      `json:"domain" dub:"required"`
	Key         string                      `json:"key" dub:"required"`
	URL         string                      `json:"url" dub:"required"`
	ShortLink   string                      `json:"shortLink"`
	QRCode      string                      `json:"qrCode"`
	Archived    bool                        `json:"archived"`
	ExpiresAt   Optional[time.Time]         `json:"expiresAt"`
	ExpiredURL  Optional[string]            `json:"expiredUrl"`
	Password    Optional[string]            `json:"password"`
	Proxy       bool                        `json:"proxy"`
	Title       Optional[string]            `json:"title"`
	Description Optional[string]            `json:"description"`
	Image       Optional[string]            `json:"image"`
	Rewrite     bool                        `json:"rewrite"`
	IOS         Optional[string]            `json:"ios"`
	Android     Optional[string]            `json:"android"`
	Geo         Optional[map[string]string] `json:"geo"`
	PublicStats bool                        `json:"publicStats"`
	TagID       Optional[string]            `json:"tagId"`
	Tags        []Tag                       `json:"tags"`
	Comments    Optional[string]            `json:"comments"`
	UTMSource   Optional[string]            `json:"utm_source"`
	UTMMedium   Optional[string]            `json:"utm_medium"`
	UTMCampaign Optional[string]            `json:"utm_campaign"`
	UTMTerm     Optional[string]            `json:"utm_term"`
	UTMContent  Optional[string]            `json:"utm_content"`
	UserID      Optional[string]            `json:"userId"`
	WorkspaceID string                      `json:"workspaceId"`
	Clicks      int64                       `json:"clicks"`
	LastClicked Optional[time.Time]         `json:"lastClicked"`
	CreatedAt   time.Time                   `json:"createdAt" dub:"required"`
	UpdatedAt   time.Time                   `json:"updatedAt" dub:"required"`
}

// CreateLinkRequest mirrors POST /links and one element of POST /links/bulk.
// Only URL is required; everything left unset takes the server default.
type CreateLinkRequest struct {
	URL         string                      `json:"url" dub:"required"`
	Domain      Optional[string]            `json:"domain"`
	Key         Optional[string]            `json:"key"`
	Prefix      Optional[string]            `json:"prefix"`
	Archived    Optional[bool]              `json:"archived"`
	ExpiresAt   Optional[time.Time]         `json:"expiresAt"`
	ExpiredURL  Optional[string]            `json:"expiredUrl"`
	Password    Optional[string]            `json:"password"`
	Proxy       Optional[bool]              `json:"proxy"`
	Title       Optional[string]            `json:"title"`
	Description Optional[string]            `json:"description"`
	Image       Optional[string]            `json:"image"`
	Rewrite     Optional[bool]              `json:"rewrite"`
	IOS         Optional[string]            `json:"ios"`
	Android     Optional[string]            `json:"android"`
	Geo         Optional[map[string]string] `json:"geo"`
	PublicStats Optional[bool]              `json:"publicStats"`
	TagIDs      Optional[[]string]          `json:"tagIds"`
	Comments    Optional[string]            `json:"comments"`
}

// UpdateLinkRequest mirrors PATCH /links/{linkId}. Set a field to Null to
// clear it on the server; leave it unset to keep the current value.
type UpdateLinkRequest struct {
	LinkID      string                      `json:"linkId" dub:"path"`
	URL         Optional[string]            `json:"url"`
	Domain      Optional[string]            `json:"domain"`
	Key         Optional[string]            `json:"key"`
	Archived    Optional[bool]              `json:"archived"`
	ExpiresAt   Optional[time.Time]         `json:"expiresAt"`
	ExpiredURL  Optional[string]            `json:"expiredUrl"`
	Password    Optional[string]            `json:"password"`
	Proxy       Optional[bool]              `json:"proxy"`
	Title       Optional[string]            `json:"title"`
	Description Optional[string]            `json:"description"`
	Image       Optional[string]            `json:"image"`
	Rewrite     Optional[bool]              `json:"rewrite"`
	IOS         Optional[string]            `json:"ios"`
	Android     Optional[string]            `json:"android"`
	Geo         Optional[map[string]string] `json:"geo"`
	PublicStats Optional[bool]              `json:"publicStats"`
	TagIDs      Optional[[]string]          `json:"tagIds"`
	Comments    Optional[string]            `json:"comments"`
}

// ListLinksRequest filters GET /links.
type ListLinksRequest struct {
	Domain       Optional[string]   `json:"domain" dub:"query"`
	TagID        Optional[string]   `json:"tagId" dub:"query"`
	TagIDs       Optional[[]string] `json:"tagIds" dub:"query"`
	Search       Optional[string]   `json:"search" dub:"query"`
	Sort         Optional[LinkSort] `json:"sort" dub:"query"`
	Page         Optional[int]      `json:"page" dub:"query"`
	UserID       Optional[string]   `json:"userId" dub:"query"`
	ShowArchived Optional[bool]     `json:"showArchived" dub:"query"`
	WithTags     Optional[bool]     `json:"withTags" dub:"query"`
}

// CountLinksRequest filters GET /links/count.
type CountLinksRequest struct {
	Domain       Optional[string]   `json:"domain" dub:"query"`
	TagID        Optional[string]   `json:"tagId" dub:"query"`
	TagIDs       Optional[[]string] `json:"tagIds" dub:"query"`
	Search       Optional[string]   `json:"search" dub:"query"`
	UserID       Optional[string]   `json:"userId" dub:"query"`
	ShowArchived Optional[bool]     `json:"showArchived" dub:"query"`
	WithTags     Optional[bool]     `json:"withTags" dub:"query"`
}

// GroupedCountRequest is CountLinksRequest with a mandatory grouping; the
// API then answers with one row per group instead of a single number.
type GroupedCountRequest struct {
	GroupBy      LinkGroupBy        `json:"groupBy" dub:"query,required"`
	Domain       Optional[string]   `json:"domain" dub:"query"`
	TagID        Optional[string]   `json:"tagId" dub:"query"`
	TagIDs       Optional[[]string] `json:"tagIds" dub:"query"`
	Search       Optional[string]   `json:"search" dub:"query"`
	UserID       Optional[string]   `json:"userId" dub:"query"`
	ShowArchived Optional[bool]     `json:"showArchived" dub:"query"`
}

// LinkCountGroup is one row of a grouped count. Exactly one of Domain and
// TagID is set, matching the requested grouping.
type LinkCountGroup struct {
	Domain Optional[string] `json:"domain"`
	TagID  Optional[string] `json:"tagId"`
	Count  int64            `json:"_count" dub:"required"`
}

// GetLinkRequest identifies a link either by Domain and Key or by LinkID.
type GetLinkRequest struct {
	Domain Optional[string] `json:"domain" dub:"query"`
	Key    Optional[string] `json:"key" dub:"query"`
	LinkID Optional[string] `json:"linkId" dub:"query"`
}

// Validate enforces the domain+key or linkId rule.
func (r GetLinkRequest) Validate() error {
	domain, hasDomain := r.Domain.Get()
	key, hasKey := r.Key.Get()
	if id, ok := r.LinkID.Get(); ok && strings.TrimSpace(id) != "" {
		return nil
	}
	if !hasDomain || strings.TrimSpace(domain) == "" {
		return &ValidationError{Field: "/domain", Message: "domain and key, or linkId, required"}
	}
	if !hasKey || strings.TrimSpace(key) == "" {
		return &ValidationError{Field: "/key", Message: "domain and key, or linkId, required"}
	}
	return nil
}

// DeletedLink is the acknowledgement of DELETE /links/{linkId}.
type DeletedLink struct {
	ID string `json:"id" dub:"required"`
}

type linkIDParams struct {
	LinkID string `json:"linkId" dub:"path"`
}

type bulkCreateParams struct {
	Links []CreateLinkRequest `json:"links" dub:"body,required"`
}

// LinksAPI is the link surface shared by LinksClient and MockLinksClient.
type LinksAPI interface {
	List(ctx context.Context, req ListLinksRequest, opts ...CallOption) ([]Link, error)
	Count(ctx context.Context, req CountLinksRequest, opts ...CallOption) (int, error)
	Get(ctx context.Context, req GetLinkRequest, opts ...CallOption) (Link, error)
	Create(ctx context.Context, req CreateLinkRequest, opts ...CallOption) (Link, error)
	Update(ctx context.Context, req UpdateLinkRequest, opts ...CallOption) (Link, error)
	Delete(ctx context.Context, linkID string, opts ...CallOption) (DeletedLink, error)
	BulkCreate(ctx context.Context, links []CreateLinkRequest, opts ...CallOption) ([]Link, error)
}

var _ LinksAPI = (*LinksClient)(nil)

// LinksClient wraps the link endpoints.
type LinksClient struct {
	client *Client
}

func (c *LinksClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return ConfigError{Reason: "links client not initialized"}
	}
	return nil
}

// List returns the links of the workspace, newest first unless Sort says otherwise.
func (c *LinksClient) List(ctx context.Context, req ListLinksRequest, opts ...CallOption) ([]Link, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	return call[[]Link](ctx, c.client, http.MethodGet, routes.Links, req, opts)
}

// Count returns the number of links matching the filter.
func (c *LinksClient) Count(ctx context.Context, req CountLinksRequest, opts ...CallOption) (int, error) {
	if err := c.ensureInitialized(); err != nil {
		return 0, err
	}
	return call[int](ctx, c.client, http.MethodGet, routes.LinksCount, req, opts)
}

// CountGrouped returns link counts per domain or per tag.
func (c *LinksClient) CountGrouped(ctx context.Context, req GroupedCountRequest, opts ...CallOption) ([]LinkCountGroup, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	return call[[]LinkCountGroup](ctx, c.client, http.MethodGet, routes.LinksCount, req, opts)
}

// Get retrieves a single link. A deleted or unknown link yields *NotFoundError.
func (c *LinksClient) Get(ctx context.Context, req GetLinkRequest, opts ...CallOption) (Link, error) {
	if err := c.ensureInitialized(); err != nil {
		return Link{}, err
	}
	return call[Link](ctx, c.client, http.MethodGet, routes.LinksInfo, req, opts)
}

// Create shortens a URL.
func (c *LinksClient) Create(ctx context.Context, req CreateLinkRequest, opts ...CallOption) (Link, error) {
	if err := c.ensureInitialized(); err != nil {
		return Link{}, err
	}
	return call[Link](ctx, c.client, http.MethodPost, routes.Links, req, opts)
}

// Update patches the fields present in req.
func (c *LinksClient) Update(ctx context.Context, req UpdateLinkRequest, opts ...CallOption) (Link, error) {
	if err := c.ensureInitialized(); err != nil {
		return Link{}, err
	}
	return call[Link](ctx, c.client, http.MethodPatch, routes.LinksByID, req, opts)
}

// Delete removes a link.
func (c *LinksClient) Delete(ctx context.Context, linkID string, opts ...CallOption) (DeletedLink, error) {
	if err := c.ensureInitialized(); err != nil {
		return DeletedLink{}, err
	}
	return call[DeletedLink](ctx, c.client, http.MethodDelete, routes.LinksByID, linkIDParams{LinkID: linkID}, opts)
}

// BulkCreate creates many links in one call. The body is sent as a bare
// JSON array and the returned links keep the submitted order.
func (c *LinksClient) BulkCreate(ctx context.Context, links []CreateLinkRequest, opts ...CallOption) ([]Link, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	return call[[]Link](ctx, c.client, http.MethodPost, routes.LinksBulk, bulkCreateParams{Links: links}, opts)
}
