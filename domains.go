package dub

import (
	"context"
	"net/http"

	"github.com/dubinc/dub-go/routes"
)

// Domain is a custom short-link domain.
type Domain struct {
	ID          string               `json:"id" dub:"required"`
	Slug        string               `json:"slug" dub:"required"`
	Verified    bool                 `json:"verified"`
	Primary     bool                 `json:"primary"`
	Archived    bool                 `json:"archived"`
	Placeholder Optional[string]     `json:"placeholder"`
	ExpiredURL  Optional[string]     `json:"expiredUrl"`
	Target      Optional[string]     `json:"target"`
	Type        Optional[DomainType] `json:"type"`
	Clicks      int64                `json:"clicks"`
}

// CreateDomainRequest mirrors POST /domains.
type CreateDomainRequest struct {
	Slug        string               `json:"slug" dub:"required"`
	Type        Optional[DomainType] `json:"type"`
	Target      Optional[string]     `json:"target"`
	ExpiredURL  Optional[string]     `json:"expiredUrl"`
	Archived    Optional[bool]       `json:"archived"`
	Placeholder Optional[string]     `json:"placeholder"`
}

// UpdateDomainRequest mirrors PATCH /domains/{slug}.
type UpdateDomainRequest struct {
	Slug        string               `json:"slug" dub:"path"`
	NewSlug     Optional[string]     `json:"newSlug"`
	Type        Optional[DomainType] `json:"type"`
	Target      Optional[string]     `json:"target"`
	ExpiredURL  Optional[string]     `json:"expiredUrl"`
	Archived    Optional[bool]       `json:"archived"`
	Placeholder Optional[string]     `json:"placeholder"`
}

// DeletedDomain is the acknowledgement of DELETE /domains/{slug}.
type DeletedDomain struct {
	Slug string `json:"slug" dub:"required"`
}

type domainParams struct {
	Slug string `json:"slug" dub:"path"`
}

// DomainsClient wraps the domain endpoints.
type DomainsClient struct {
	client *Client
}

func (c *DomainsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return ConfigError{Reason: "domains client not initialized"}
	}
	return nil
}

// List returns the workspace's domains.
func (c *DomainsClient) List(ctx context.Context, opts ...CallOption) ([]Domain, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	return call[[]Domain](ctx, c.client, http.MethodGet, routes.Domains, nil, opts)
}

// Create adds a domain to the workspace.
func (c *DomainsClient) Create(ctx context.Context, req CreateDomainRequest, opts ...CallOption) (Domain, error) {
	if err := c.ensureInitialized(); err != nil {
		return Domain{}, err
	}
	return call[Domain](ctx, c.client, http.MethodPost, routes.Domains, req, opts)
}

// Update changes a domain's settings.
func (c *DomainsClient) Update(ctx context.Context, req UpdateDomainRequest, opts ...CallOption) (Domain, error) {
	if err := c.ensureInitialized(); err != nil {
		return Domain{}, err
	}
	return call[Domain](ctx, c.client, http.MethodPatch, routes.DomainsBySlug, req, opts)
}

// Delete removes a domain and every link on it.
func (c *DomainsClient) Delete(ctx context.Context, slug string, opts ...CallOption) (DeletedDomain, error) {
	if err := c.ensureInitialized(); err != nil {
		return DeletedDomain{}, err
	}
	return call[DeletedDomain](ctx, c.client, http.MethodDelete, routes.DomainsBySlug, domainParams{Slug: slug}, opts)
}
