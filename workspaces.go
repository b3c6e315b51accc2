package dub

import (
	"context"
	"net/http"
	"time"

	"github.com/dubinc/dub-go/routes"
)

// Workspace groups links, domains, tags and members under one plan.
type Workspace struct {
	ID                string              `json:"id" dub:"required"`
	Name              string              `json:"name" dub:"required"`
	Slug              string              `json:"slug" dub:"required"`
	Logo              Optional[string]    `json:"logo"`
	Usage             int64               `json:"usage"`
	UsageLimit        int64               `json:"usageLimit"`
	LinksUsage        int64               `json:"linksUsage"`
	LinksLimit        int64               `json:"linksLimit"`
	DomainsLimit      int64               `json:"domainsLimit"`
	TagsLimit         int64               `json:"tagsLimit"`
	UsersLimit        int64               `json:"usersLimit"`
	Plan              WorkspacePlan       `json:"plan" dub:"required"`
	StripeID          Optional[string]    `json:"stripeId"`
	BillingCycleStart int64               `json:"billingCycleStart"`
	CreatedAt         time.Time           `json:"createdAt" dub:"required"`
	Users             []WorkspaceUser     `json:"users"`
	Domains           []WorkspaceDomain   `json:"domains"`
	InviteCode        Optional[string]    `json:"inviteCode"`
	ConversionEnabled Optional[bool]      `json:"conversionEnabled"`
	PaymentFailedAt   Optional[time.Time] `json:"paymentFailedAt"`
}

// WorkspaceUser is the caller's membership in a workspace.
type WorkspaceUser struct {
	Role WorkspaceRole `json:"role" dub:"required"`
}

// WorkspaceDomain is a domain attached to a workspace.
type WorkspaceDomain struct {
	Slug    string `json:"slug" dub:"required"`
	Primary bool   `json:"primary"`
}

// CreateWorkspaceRequest mirrors POST /workspaces.
type CreateWorkspaceRequest struct {
	Name   string           `json:"name" dub:"required"`
	Slug   string           `json:"slug" dub:"required"`
	Domain Optional[string] `json:"domain"`
}

// UpdateWorkspaceRequest mirrors PATCH /workspaces/{idOrSlug}.
type UpdateWorkspaceRequest struct {
	IDOrSlug string           `json:"idOrSlug" dub:"path"`
	Name     Optional[string] `json:"name"`
	Slug     Optional[string] `json:"slug"`
}

type workspaceParams struct {
	IDOrSlug string `json:"idOrSlug" dub:"path"`
}

// WorkspacesClient wraps the workspace endpoints.
type WorkspacesClient struct {
	client *Client
}

func (c *WorkspacesClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return ConfigError{Reason: "workspaces client not initialized"}
	}
	return nil
}

// List returns the workspaces the token can access.
func (c *WorkspacesClient) List(ctx context.Context, opts ...CallOption) ([]Workspace, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	return call[[]Workspace](ctx, c.client, http.MethodGet, routes.Workspaces, nil, opts)
}

// Create provisions a workspace.
func (c *WorkspacesClient) Create(ctx context.Context, req CreateWorkspaceRequest, opts ...CallOption) (Workspace, error) {
	if err := c.ensureInitialized(); err != nil {
		return Workspace{}, err
	}
	return call[Workspace](ctx, c.client, http.MethodPost, routes.Workspaces, req, opts)
}

// Get retrieves a workspace by id or slug.
func (c *WorkspacesClient) Get(ctx context.Context, idOrSlug string, opts ...CallOption) (Workspace, error) {
	if err := c.ensureInitialized(); err != nil {
		return Workspace{}, err
	}
	return call[Workspace](ctx, c.client, http.MethodGet, routes.WorkspacesByIDOrSlug, workspaceParams{IDOrSlug: idOrSlug}, opts)
}

// Update renames a workspace or changes its slug.
func (c *WorkspacesClient) Update(ctx context.Context, req UpdateWorkspaceRequest, opts ...CallOption) (Workspace, error) {
	if err := c.ensureInitialized(); err != nil {
		return Workspace{}, err
	}
	return call[Workspace](ctx, c.client, http.MethodPatch, routes.WorkspacesByIDOrSlug, req, opts)
}
