package dub

// Version is the published SDK version.
// 0.3.0: Breaking - BulkCreate takes a bare []CreateLinkRequest instead of a {body: [...]} envelope.
// 0.2.0: Add Domains and Metatags clients; WithRawResponse replaces the always-on raw response field.
// 0.1.0: Initial links, tags, workspaces, QR code and analytics clients.
const Version = "0.3.0"
