// Package testutil provides an in-memory Dub API for SDK tests and examples.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dubinc/dub-go/headers"
	"github.com/dubinc/dub-go/routes"
)

// FakeServerConfig configures a FakeServer.
type FakeServerConfig struct {
	// Token is the bearer token every request must carry. Empty accepts any.
	Token string
	// DefaultDomain is used for links created without a domain.
	DefaultDomain string
	// Clock stamps createdAt/updatedAt. Defaults to time.Now.
	Clock func() time.Time
}

// RecordedRequest is a request the fake accepted for routing.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
}

// InjectedError makes the next request fail with a fixed response.
type InjectedError struct {
	Status  int
	Code    string
	Message string
	Header  map[string]string
}

// FakeServer is a stateful stand-in for api.dub.co. Objects are kept as JSON
// maps so PATCH bodies can set fields to null.
type FakeServer struct {
	*httptest.Server

	cfg FakeServerConfig

	mu         sync.Mutex
	links      []map[string]any
	tags       []map[string]any
	workspaces []map[string]any
	domains    []map[string]any
	requests   []RecordedRequest
	inject     []InjectedError
}

// PNG is the image body returned by the fake /qr endpoint.
var PNG = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00\x1f\x15\xc4\x89")

var intervals = []string{"1h", "24h", "7d", "30d", "90d", "all"}

var tagColors = []string{"red", "yellow", "green", "blue", "purple", "pink", "brown"}

// NewFakeServer starts the fake. Callers must Close it.
func NewFakeServer(cfg FakeServerConfig) *FakeServer {
	if cfg.DefaultDomain == "" {
		cfg.DefaultDomain = "dub.sh"
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	f := &FakeServer{cfg: cfg}
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = f.handleError
	e.Use(f.record, f.authenticate)

	e.GET(echoPath(routes.Links), f.listLinks)
	e.POST(echoPath(routes.Links), f.createLink)
	e.GET(echoPath(routes.LinksCount), f.countLinks)
	e.GET(echoPath(routes.LinksInfo), f.linkInfo)
	e.POST(echoPath(routes.LinksBulk), f.bulkCreate)
	e.PATCH(echoPath(routes.LinksByID), f.updateLink)
	e.DELETE(echoPath(routes.LinksByID), f.deleteLink)
	e.GET(echoPath(routes.QR), f.qr)
	e.GET(echoPath(routes.Tags), f.listTags)
	e.POST(echoPath(routes.Tags), f.createTag)
	e.PATCH(echoPath(routes.TagsByID), f.updateTag)
	e.GET(echoPath(routes.Workspaces), f.listWorkspaces)
	e.POST(echoPath(routes.Workspaces), f.createWorkspace)
	e.GET(echoPath(routes.WorkspacesByIDOrSlug), f.getWorkspace)
	e.PATCH(echoPath(routes.WorkspacesByIDOrSlug), f.updateWorkspace)
	e.GET(echoPath(routes.Domains), f.listDomains)
	e.POST(echoPath(routes.Domains), f.createDomain)
	e.PATCH(echoPath(routes.DomainsBySlug), f.updateDomain)
	e.DELETE(echoPath(routes.DomainsBySlug), f.deleteDomain)
	e.GET(echoPath(routes.Metatags), f.metatags)
	e.GET(echoPath(routes.Analytics), f.analytics)

	f.Server = httptest.NewServer(e)
	return f
}

// echoPath rewrites {name} placeholders into echo's :name form.
func echoPath(route string) string {
	parts := strings.Split(route, "/")
	for i, p := range parts {
		if strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
			parts[i] = ":" + p[1:len(p)-1]
		}
	}
	return strings.Join(parts, "/")
}

// Requests returns every request received so far.
func (f *FakeServer) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// LastRequest returns the most recent request.
func (f *FakeServer) LastRequest() RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return RecordedRequest{}
	}
	return f.requests[len(f.requests)-1]
}

// FailNext queues an error response for the next request.
func (f *FakeServer) FailNext(e InjectedError) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inject = append(f.inject, e)
}

// SeedLink stores a link as-is, bypassing create validation. Missing
// server-owned fields are filled in.
func (f *FakeServer) SeedLink(link map[string]any) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := f.newLinkLocked(link, "")
	f.links = append(f.links, stored)
	return clone(stored)
}

func (f *FakeServer) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		f.mu.Lock()
		f.requests = append(f.requests, RecordedRequest{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Header: req.Header.Clone(),
		})
		var injected *InjectedError
		if len(f.inject) > 0 {
			injected = &f.inject[0]
			f.inject = f.inject[1:]
		}
		f.mu.Unlock()
		if id := req.Header.Get(headers.RequestID); id != "" {
			c.Response().Header().Set(headers.RequestID, id)
		}
		if injected != nil {
			for k, v := range injected.Header {
				c.Response().Header().Set(k, v)
			}
			return apiError(c, injected.Status, injected.Code, injected.Message)
		}
		return next(c)
	}
}

func (f *FakeServer) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get(headers.Authorization)
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || token == "" || (f.cfg.Token != "" && token != f.cfg.Token) {
			return apiError(c, http.StatusUnauthorized, "unauthorized", "Missing or invalid API key.")
		}
		return next(c)
	}
}

func (f *FakeServer) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	code := "internal_server_error"
	msg := err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		msg = fmt.Sprint(he.Message)
		switch status {
		case http.StatusNotFound:
			code = "not_found"
		case http.StatusMethodNotAllowed:
			code = "method_not_allowed"
		default:
			code = "bad_request"
		}
	}
	_ = apiError(c, status, code, msg)
}

func apiError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
			"doc_url": "https://dub.co/docs/api-reference/errors#" + strings.ReplaceAll(code, "_", "-"),
		},
	})
}

func unprocessable(c echo.Context, format string, args ...any) error {
	return apiError(c, http.StatusUnprocessableEntity, "unprocessable_entity", fmt.Sprintf(format, args...))
}

func notFound(c echo.Context, what string) error {
	return apiError(c, http.StatusNotFound, "not_found", what+" not found.")
}

func (f *FakeServer) now() string {
	return f.cfg.Clock().UTC().Format(time.RFC3339Nano)
}

func workspaceOf(c echo.Context) string {
	if ws := c.QueryParam("workspaceId"); ws != "" {
		return ws
	}
	return "ws_default"
}

func clone(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func bindObject(c echo.Context) (map[string]any, error) {
	var body map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

func validURL(raw any) bool {
	s, ok := raw.(string)
	if !ok {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

func shortKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
}

// newLinkLocked applies server defaults to a create body.
func (f *FakeServer) newLinkLocked(body map[string]any, workspace string) map[string]any {
	link := clone(body)
	if _, ok := link["id"]; !ok {
		link["id"] = "link_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
	}
	if d, _ := link["domain"].(string); d == "" {
		link["domain"] = f.cfg.DefaultDomain
	}
	if k, _ := link["key"].(string); k == "" {
		link["key"] = shortKey()
	}
	if p, _ := link["prefix"].(string); p != "" {
		link["key"] = p + "/" + link["key"].(string)
	}
	delete(link, "prefix")
	if raw, ok := link["tagIds"]; ok {
		ids, _ := raw.([]any)
		tags := make([]any, 0, len(ids))
		for _, id := range ids {
			for _, tag := range f.tags {
				if tag["id"] == id {
					tags = append(tags, clone(tag))
				}
			}
		}
		link["tags"] = tags
		link["tagId"] = nil
		if len(ids) > 0 {
			link["tagId"] = ids[0]
		}
		delete(link, "tagIds")
	}
	defaults := map[string]any{
		"archived":    false,
		"expiresAt":   nil,
		"password":    nil,
		"proxy":       false,
		"title":       nil,
		"description": nil,
		"image":       nil,
		"rewrite":     false,
		"ios":         nil,
		"android":     nil,
		"geo":         nil,
		"publicStats": false,
		"tagId":       nil,
		"tags":        []any{},
		"comments":    nil,
		"clicks":      0,
		"lastClicked": nil,
		"createdAt":   f.now(),
		"updatedAt":   f.now(),
	}
	for k, v := range defaults {
		if _, ok := link[k]; !ok {
			link[k] = v
		}
	}
	if workspace != "" {
		link["workspaceId"] = workspace
	} else if _, ok := link["workspaceId"]; !ok {
		link["workspaceId"] = "ws_default"
	}
	link["shortLink"] = fmt.Sprintf("https://%s/%s", link["domain"], link["key"])
	link["qrCode"] = "https://api.dub.co/qr?url=" + url.QueryEscape(link["shortLink"].(string))
	return link
}

func (f *FakeServer) findLinkLocked(pred func(map[string]any) bool) int {
	for i, l := range f.links {
		if pred(l) {
			return i
		}
	}
	return -1
}

func (f *FakeServer) createLinkLocked(c echo.Context, body map[string]any) (map[string]any, error) {
	if !validURL(body["url"]) {
		return nil, fmt.Errorf("invalid url: must be an absolute URL")
	}
	link := f.newLinkLocked(body, workspaceOf(c))
	if f.findLinkLocked(func(l map[string]any) bool {
		return l["domain"] == link["domain"] && l["key"] == link["key"]
	}) >= 0 {
		return nil, fmt.Errorf("duplicate key: %s/%s already exists", link["domain"], link["key"])
	}
	f.links = append(f.links, link)
	return clone(link), nil
}

func (f *FakeServer) createLink(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	f.mu.Lock()
	link, err := f.createLinkLocked(c, body)
	f.mu.Unlock()
	if err != nil {
		return unprocessable(c, "%v", err)
	}
	return c.JSON(http.StatusOK, link)
}

func (f *FakeServer) bulkCreate(c echo.Context) error {
	var body []map[string]any
	if err := (&echo.DefaultBinder{}).BindBody(c, &body); err != nil {
		return unprocessable(c, "expected an array of links: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(body))
	for i, item := range body {
		link, err := f.createLinkLocked(c, item)
		if err != nil {
			return unprocessable(c, "links[%d]: %v", i, err)
		}
		out = append(out, link)
	}
	return c.JSON(http.StatusOK, out)
}

func (f *FakeServer) matchingLinksLocked(c echo.Context) []map[string]any {
	domain := c.QueryParam("domain")
	tagIDs := c.QueryParams()["tagIds"]
	if id := c.QueryParam("tagId"); id != "" {
		tagIDs = append(tagIDs, id)
	}
	search := strings.ToLower(c.QueryParam("search"))
	showArchived := c.QueryParam("showArchived") == "true"
	ws := workspaceOf(c)
	var out []map[string]any
	for _, l := range f.links {
		if l["workspaceId"] != ws {
			continue
		}
		if domain != "" && l["domain"] != domain {
			continue
		}
		if archived, _ := l["archived"].(bool); archived && !showArchived {
			continue
		}
		if len(tagIDs) > 0 {
			tid, _ := l["tagId"].(string)
			if !slices.Contains(tagIDs, tid) {
				continue
			}
		}
		if search != "" {
			hay := strings.ToLower(fmt.Sprint(l["url"], " ", l["key"]))
			if !strings.Contains(hay, search) {
				continue
			}
		}
		out = append(out, clone(l))
	}
	return out
}

func (f *FakeServer) listLinks(c echo.Context) error {
	f.mu.Lock()
	links := f.matchingLinksLocked(c)
	f.mu.Unlock()
	switch sortKey := c.QueryParam("sort"); sortKey {
	case "", "createdAt":
		slices.Reverse(links)
	case "clicks":
		sort.SliceStable(links, func(i, j int) bool {
			return toInt(links[i]["clicks"]) > toInt(links[j]["clicks"])
		})
	case "lastClicked":
	default:
		return unprocessable(c, "invalid sort: %q", sortKey)
	}
	const pageSize = 100
	page := 1
	if p := c.QueryParam("page"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 {
			return unprocessable(c, "invalid page: %q", p)
		}
		page = n
	}
	start := min((page-1)*pageSize, len(links))
	end := min(start+pageSize, len(links))
	if links == nil {
		links = []map[string]any{}
	}
	return c.JSON(http.StatusOK, links[start:end])
}

func (f *FakeServer) countLinks(c echo.Context) error {
	f.mu.Lock()
	links := f.matchingLinksLocked(c)
	f.mu.Unlock()
	groupBy := c.QueryParam("groupBy")
	if groupBy == "" {
		return c.JSON(http.StatusOK, len(links))
	}
	if groupBy != "domain" && groupBy != "tagId" {
		return unprocessable(c, "invalid groupBy: %q", groupBy)
	}
	counts := map[string]int{}
	var order []string
	for _, l := range links {
		k, _ := l[groupBy].(string)
		if k == "" {
			continue
		}
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}
	out := make([]map[string]any, 0, len(order))
	for _, k := range order {
		out = append(out, map[string]any{groupBy: k, "_count": counts[k]})
	}
	return c.JSON(http.StatusOK, out)
}

func (f *FakeServer) linkInfo(c echo.Context) error {
	id := c.QueryParam("linkId")
	domain, key := c.QueryParam("domain"), c.QueryParam("key")
	if id == "" && (domain == "" || key == "") {
		return apiError(c, http.StatusBadRequest, "bad_request", "Missing domain and key, or linkId.")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i := f.findLinkLocked(func(l map[string]any) bool {
		if id != "" {
			return l["id"] == id
		}
		return l["domain"] == domain && l["key"] == key
	})
	if i < 0 {
		return notFound(c, "Link")
	}
	return c.JSON(http.StatusOK, f.links[i])
}

func (f *FakeServer) updateLink(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	if u, ok := body["url"]; ok && !validURL(u) {
		return unprocessable(c, "invalid url: must be an absolute URL")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	id := c.Param("linkId")
	i := f.findLinkLocked(func(l map[string]any) bool { return l["id"] == id })
	if i < 0 {
		return notFound(c, "Link")
	}
	link := f.links[i]
	for k, v := range body {
		switch k {
		case "id", "createdAt", "workspaceId", "shortLink", "qrCode", "clicks":
			continue
		}
		link[k] = v
	}
	if _, ok := body["tagIds"]; ok {
		link = f.newLinkLocked(link, "")
	}
	link["updatedAt"] = f.now()
	link["shortLink"] = fmt.Sprintf("https://%s/%s", link["domain"], link["key"])
	f.links[i] = link
	return c.JSON(http.StatusOK, link)
}

func (f *FakeServer) deleteLink(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := c.Param("linkId")
	i := f.findLinkLocked(func(l map[string]any) bool { return l["id"] == id })
	if i < 0 {
		return notFound(c, "Link")
	}
	f.links = slices.Delete(f.links, i, i+1)
	return c.JSON(http.StatusOK, map[string]any{"id": id})
}

func (f *FakeServer) qr(c echo.Context) error {
	if !validURL(c.QueryParam("url")) {
		return unprocessable(c, "invalid url")
	}
	if lvl := c.QueryParam("level"); lvl != "" && !slices.Contains([]string{"L", "M", "Q", "H"}, lvl) {
		return unprocessable(c, "invalid level: %q", lvl)
	}
	return c.Blob(http.StatusOK, "image/png", PNG)
}

func (f *FakeServer) listTags(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.tags))
	for _, t := range f.tags {
		out = append(out, clone(t))
	}
	return c.JSON(http.StatusOK, out)
}

func (f *FakeServer) createTag(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	name, _ := body["tag"].(string)
	if name == "" {
		return unprocessable(c, "tag is required")
	}
	color, _ := body["color"].(string)
	if color == "" {
		color = tagColors[0]
	}
	if !slices.Contains(tagColors, color) {
		return unprocessable(c, "invalid color: %q", color)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t["name"] == name {
			return apiError(c, http.StatusConflict, "conflict", "A tag with that name already exists.")
		}
	}
	tag := map[string]any{"id": "tag_" + shortKey(), "name": name, "color": color}
	f.tags = append(f.tags, tag)
	return c.JSON(http.StatusCreated, tag)
}

func (f *FakeServer) updateTag(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t["id"] != c.Param("id") {
			continue
		}
		if name, ok := body["name"].(string); ok {
			t["name"] = name
		}
		if color, ok := body["color"].(string); ok {
			if !slices.Contains(tagColors, color) {
				return unprocessable(c, "invalid color: %q", color)
			}
			t["color"] = color
		}
		return c.JSON(http.StatusOK, clone(t))
	}
	return notFound(c, "Tag")
}

func (f *FakeServer) newWorkspace(name, slug string) map[string]any {
	return map[string]any{
		"id":                "ws_" + shortKey(),
		"name":              name,
		"slug":              slug,
		"logo":              nil,
		"usage":             0,
		"usageLimit":        1000,
		"linksUsage":        0,
		"linksLimit":        25,
		"domainsLimit":      3,
		"tagsLimit":         5,
		"usersLimit":        1,
		"plan":              "free",
		"stripeId":          nil,
		"billingCycleStart": 1,
		"createdAt":         f.now(),
		"users":             []any{map[string]any{"role": "owner"}},
		"domains":           []any{},
	}
}

func (f *FakeServer) listWorkspaces(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.workspaces))
	for _, w := range f.workspaces {
		out = append(out, clone(w))
	}
	return c.JSON(http.StatusOK, out)
}

func (f *FakeServer) createWorkspace(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	name, _ := body["name"].(string)
	slug, _ := body["slug"].(string)
	if name == "" || slug == "" {
		return unprocessable(c, "name and slug are required")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, w := range f.workspaces {
		if w["slug"] == slug {
			return apiError(c, http.StatusConflict, "conflict", "Slug is already in use.")
		}
	}
	ws := f.newWorkspace(name, slug)
	if d, ok := body["domain"].(string); ok && d != "" {
		ws["domains"] = []any{map[string]any{"slug": d, "primary": true}}
	}
	f.workspaces = append(f.workspaces, ws)
	return c.JSON(http.StatusOK, ws)
}

func (f *FakeServer) findWorkspaceLocked(idOrSlug string) map[string]any {
	for _, w := range f.workspaces {
		if w["id"] == idOrSlug || w["slug"] == idOrSlug {
			return w
		}
	}
	return nil
}

func (f *FakeServer) getWorkspace(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	ws := f.findWorkspaceLocked(c.Param("idOrSlug"))
	if ws == nil {
		return notFound(c, "Workspace")
	}
	return c.JSON(http.StatusOK, clone(ws))
}

func (f *FakeServer) updateWorkspace(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ws := f.findWorkspaceLocked(c.Param("idOrSlug"))
	if ws == nil {
		return notFound(c, "Workspace")
	}
	for _, k := range []string{"name", "slug"} {
		if v, ok := body[k].(string); ok && v != "" {
			ws[k] = v
		}
	}
	return c.JSON(http.StatusOK, clone(ws))
}

func (f *FakeServer) listDomains(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]map[string]any, 0, len(f.domains))
	for _, d := range f.domains {
		out = append(out, clone(d))
	}
	return c.JSON(http.StatusOK, out)
}

func (f *FakeServer) createDomain(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	slug, _ := body["slug"].(string)
	if slug == "" || !strings.Contains(slug, ".") {
		return unprocessable(c, "invalid domain: %q", slug)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.domains {
		if d["slug"] == slug {
			return apiError(c, http.StatusConflict, "conflict", "Domain is already in use.")
		}
	}
	domain := map[string]any{
		"id":          "dom_" + shortKey(),
		"slug":        slug,
		"verified":    false,
		"primary":     len(f.domains) == 0,
		"archived":    false,
		"placeholder": "https://dub.co/help/article/what-is-dub",
		"expiredUrl":  nil,
		"target":      nil,
		"type":        "redirect",
		"clicks":      0,
	}
	for _, k := range []string{"type", "target", "expiredUrl", "archived", "placeholder"} {
		if v, ok := body[k]; ok {
			domain[k] = v
		}
	}
	f.domains = append(f.domains, domain)
	return c.JSON(http.StatusCreated, domain)
}

func (f *FakeServer) updateDomain(c echo.Context) error {
	body, err := bindObject(c)
	if err != nil {
		return unprocessable(c, "invalid body: %v", err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.domains {
		if d["slug"] != c.Param("slug") {
			continue
		}
		for k, v := range body {
			if k == "newSlug" {
				d["slug"] = v
				continue
			}
			d[k] = v
		}
		return c.JSON(http.StatusOK, clone(d))
	}
	return notFound(c, "Domain")
}

func (f *FakeServer) deleteDomain(c echo.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	slug := c.Param("slug")
	for i, d := range f.domains {
		if d["slug"] == slug {
			f.domains = slices.Delete(f.domains, i, i+1)
			f.links = slices.DeleteFunc(f.links, func(l map[string]any) bool { return l["domain"] == slug })
			return c.JSON(http.StatusOK, map[string]any{"slug": slug})
		}
	}
	return notFound(c, "Domain")
}

func (f *FakeServer) metatags(c echo.Context) error {
	raw := c.QueryParam("url")
	if !validURL(raw) {
		return unprocessable(c, "invalid url")
	}
	u, _ := url.Parse(raw)
	return c.JSON(http.StatusOK, map[string]any{
		"title":       u.Host,
		"description": nil,
		"image":       nil,
	})
}

// analytics answers from the stored links: every link contributes its
// clicks count, attributed to a fixed set of dimensions.
func (f *FakeServer) analytics(c echo.Context) error {
	if iv := c.QueryParam("interval"); iv != "" && !slices.Contains(intervals, iv) {
		return unprocessable(c, "invalid interval: %q", iv)
	}
	f.mu.Lock()
	links := f.matchingLinksLocked(c)
	f.mu.Unlock()
	if key := c.QueryParam("key"); key != "" {
		links = slices.DeleteFunc(links, func(l map[string]any) bool { return l["key"] != key })
	}
	total := 0
	for _, l := range links {
		total += toInt(l["clicks"])
	}
	switch kind := c.Param("kind"); kind {
	case "clicks":
		return c.JSON(http.StatusOK, total)
	case "timeseries":
		start := f.cfg.Clock().UTC().Truncate(time.Hour)
		return c.JSON(http.StatusOK, []map[string]any{
			{"start": start.Add(-time.Hour).Format(time.RFC3339), "clicks": 0},
			{"start": start.Format(time.RFC3339), "clicks": total},
		})
	case "country":
		return c.JSON(http.StatusOK, []map[string]any{{"country": "US", "clicks": total}})
	case "city":
		return c.JSON(http.StatusOK, []map[string]any{{"city": "San Francisco", "country": "US", "clicks": total}})
	case "device":
		return c.JSON(http.StatusOK, []map[string]any{{"device": "Desktop", "clicks": total}})
	case "browser":
		return c.JSON(http.StatusOK, []map[string]any{{"browser": "Chrome", "clicks": total}})
	case "os":
		return c.JSON(http.StatusOK, []map[string]any{{"os": "Mac OS", "clicks": total}})
	case "referer":
		return c.JSON(http.StatusOK, []map[string]any{{"referer": "(direct)", "clicks": total}})
	case "top-links":
		out := make([]map[string]any, 0, len(links))
		for _, l := range links {
			out = append(out, map[string]any{"link": l["id"], "clicks": toInt(l["clicks"])})
		}
		return c.JSON(http.StatusOK, out)
	case "top-urls":
		byURL := map[string]int{}
		var order []string
		for _, l := range links {
			u := fmt.Sprint(l["url"])
			if _, ok := byURL[u]; !ok {
				order = append(order, u)
			}
			byURL[u] += toInt(l["clicks"])
		}
		out := make([]map[string]any, 0, len(order))
		for _, u := range order {
			out = append(out, map[string]any{"url": u, "clicks": byURL[u]})
		}
		return c.JSON(http.StatusOK, out)
	default:
		return notFound(c, "Endpoint")
	}
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return 0
}
