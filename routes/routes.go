// Package routes provides the API path templates used by the SDK and the
// fake server in testutil, so both sides agree on every endpoint.
//
// Placeholders use the {name} form and are filled by the request builder
// from fields tagged `dub:"path"`.
package routes

const (
	// Links lists links (GET) or creates one (POST).
	Links = "/links"

	// LinksCount returns the number of links matching a filter.
	LinksCount = "/links/count"

	// LinksInfo retrieves a single link by domain+key or linkId.
	LinksInfo = "/links/info"

	// LinksBulk creates many links from a bare JSON array.
	LinksBulk = "/links/bulk"

	// LinksByID updates (PATCH) or deletes (DELETE) a link.
	LinksByID = "/links/{linkId}"

	// QR renders a QR code PNG for a URL.
	QR = "/qr"

	// Tags lists tags (GET) or creates one (POST).
	Tags = "/tags"

	// TagsByID updates a tag.
	TagsByID = "/tags/{id}"

	// Workspaces lists workspaces (GET) or creates one (POST).
	Workspaces = "/workspaces"

	// WorkspacesByIDOrSlug retrieves or updates a workspace.
	WorkspacesByIDOrSlug = "/workspaces/{idOrSlug}"

	// Domains lists domains (GET) or adds one (POST).
	Domains = "/domains"

	// DomainsBySlug updates or deletes a domain.
	DomainsBySlug = "/domains/{slug}"

	// Metatags scrapes title/description/image for a URL.
	Metatags = "/metatags"

	// Analytics is the prefix for every analytics endpoint.
	Analytics = "/analytics/{kind}"
)
