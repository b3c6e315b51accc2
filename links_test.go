package dub

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dubinc/dub-go/testutil"
)

func TestLinkLifecycle(t *testing.T) {
	client, _ := newFakeClient(t, Config{WorkspaceID: "ws_1"})
	ctx := context.Background()

	created, err := client.Links.Create(ctx, CreateLinkRequest{URL: "https://example.com/docs", Key: String("docs")})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" || created.Domain != "dub.sh" || created.Key != "docs" {
		t.Fatalf("unexpected link %+v", created)
	}
	if created.ShortLink != "https://dub.sh/docs" || created.WorkspaceID != "ws_1" {
		t.Fatalf("expected server defaults, got %+v", created)
	}
	if !created.Password.IsNull() || created.ExpiresAt.IsSet() {
		t.Fatalf("expected null password and no expiry, got %+v %+v", created.Password, created.ExpiresAt)
	}

	got, err := client.Links.Get(ctx, GetLinkRequest{Domain: String("dub.sh"), Key: String("docs")})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.URL != "https://example.com/docs" {
		t.Fatalf("get returned %+v", got)
	}

	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	updated, err := client.Links.Update(ctx, UpdateLinkRequest{
		LinkID:    created.ID,
		Title:     String("Docs"),
		ExpiresAt: Some(expires),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title.Or("") != "Docs" {
		t.Fatalf("expected title, got %+v", updated.Title)
	}
	if at, ok := updated.ExpiresAt.Get(); !ok || !at.Equal(expires) {
		t.Fatalf("expected expiry %s, got %+v", expires, updated.ExpiresAt)
	}

	cleared, err := client.Links.Update(ctx, UpdateLinkRequest{LinkID: created.ID, Title: Null[string]()})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if !cleared.Title.IsNull() {
		t.Fatalf("expected title cleared, got %+v", cleared.Title)
	}
	if !cleared.ExpiresAt.IsSet() {
		t.Fatalf("unset field should be untouched, got %+v", cleared.ExpiresAt)
	}

	deleted, err := client.Links.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != created.ID {
		t.Fatalf("unexpected delete ack %+v", deleted)
	}

	_, err = client.Links.Get(ctx, GetLinkRequest{Domain: String("dub.sh"), Key: String("docs")})
	if !IsNotFound(err) {
		t.Fatalf("expected not found by domain/key after delete, got %T %v", err, err)
	}
	_, err = client.Links.Get(ctx, GetLinkRequest{LinkID: String(created.ID)})
	if !IsNotFound(err) {
		t.Fatalf("expected not found by id after delete, got %T %v", err, err)
	}
}

func TestCreateWithOnlyURLDecodesServerDefaults(t *testing.T) {
	client, _ := newFakeClient(t, Config{})
	link, err := client.Links.Create(context.Background(), CreateLinkRequest{URL: "https://example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if link.ID == "" || link.Key == "" || link.Domain != "dub.sh" || link.CreatedAt.IsZero() {
		t.Fatalf("expected server defaults, got %+v", link)
	}
	if link.ShortLink != "https://dub.sh/"+link.Key {
		t.Fatalf("unexpected short link %q", link.ShortLink)
	}
}

func TestCreateLinkRequestShape(t *testing.T) {
	client, fake := newFakeClient(t, Config{})
	if _, err := client.Links.Create(context.Background(), CreateLinkRequest{URL: "https://example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	req := fake.LastRequest()
	if req.Method != "POST" || req.Path != "/links" {
		t.Fatalf("unexpected request %s %s", req.Method, req.Path)
	}
	if req.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("expected JSON body")
	}
}

func TestCreateLinkServerValidation(t *testing.T) {
	client, _ := newFakeClient(t, Config{})
	_, err := client.Links.Create(context.Background(), CreateLinkRequest{URL: "not a url"})
	verr := asValidation(t, err)
	if verr.Status != 422 || !strings.Contains(verr.Message, "invalid url") {
		t.Fatalf("unexpected validation error %+v", verr)
	}
}

func TestBulkCreatePreservesOrder(t *testing.T) {
	client, fake := newFakeClient(t, Config{})
	reqs := []CreateLinkRequest{
		{URL: "https://a.example"},
		{URL: "https://b.example"},
		{URL: "https://c.example"},
	}
	links, err := client.Links.BulkCreate(context.Background(), reqs)
	if err != nil {
		t.Fatalf("bulk: %v", err)
	}
	if len(links) != len(reqs) {
		t.Fatalf("expected %d links, got %d", len(reqs), len(links))
	}
	keys := map[string]bool{}
	for i, l := range links {
		if l.URL != reqs[i].URL {
			t.Fatalf("link %d: expected %s, got %s", i, reqs[i].URL, l.URL)
		}
		keys[l.Key] = true
	}
	if len(keys) != len(reqs) {
		t.Fatalf("expected distinct generated keys, got %v", keys)
	}
	if fake.LastRequest().Path != "/links/bulk" {
		t.Fatalf("unexpected path %s", fake.LastRequest().Path)
	}
}

func TestBulkCreateInvalidElementFailsLocally(t *testing.T) {
	client, fake := newFakeClient(t, Config{})
	_, err := client.Links.BulkCreate(context.Background(), []CreateLinkRequest{{URL: "https://a.example"}, {}})
	verr := asValidation(t, err)
	if verr.Field != "/1/url" {
		t.Fatalf("expected /1/url, got %q", verr.Field)
	}
	if n := len(fake.Requests()); n != 0 {
		t.Fatalf("expected no request, got %d", n)
	}
}

func TestListAndCountLinks(t *testing.T) {
	client, _ := newFakeClient(t, Config{})
	ctx := context.Background()
	tag, err := client.Tags.Create(ctx, CreateTagRequest{Tag: "blog", Color: Some(TagColorGreen)})
	if err != nil {
		t.Fatalf("create tag: %v", err)
	}
	if _, err := client.Links.Create(ctx, CreateLinkRequest{URL: "https://a.example", TagIDs: Some([]string{tag.ID})}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := client.Links.Create(ctx, CreateLinkRequest{URL: "https://b.example", Domain: String("go.acme.com")}); err != nil {
		t.Fatalf("create: %v", err)
	}

	all, err := client.Links.List(ctx, ListLinksRequest{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 || all[0].URL != "https://b.example" {
		t.Fatalf("expected newest first, got %+v", all)
	}

	tagged, err := client.Links.List(ctx, ListLinksRequest{TagIDs: Some([]string{tag.ID, "tag_other"})})
	if err != nil {
		t.Fatalf("list by tag: %v", err)
	}
	if len(tagged) != 1 || len(tagged[0].Tags) != 1 || tagged[0].Tags[0].Name != "blog" {
		t.Fatalf("unexpected tagged links %+v", tagged)
	}

	n, err := client.Links.Count(ctx, CountLinksRequest{Domain: String("go.acme.com")})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}

	groups, err := client.Links.CountGrouped(ctx, GroupedCountRequest{GroupBy: LinkGroupByDomain})
	if err != nil {
		t.Fatalf("count grouped: %v", err)
	}
	if len(groups) != 2 || groups[0].Count != 1 {
		t.Fatalf("unexpected groups %+v", groups)
	}
	if d, ok := groups[1].Domain.Get(); !ok || d != "go.acme.com" {
		t.Fatalf("unexpected second group %+v", groups[1])
	}
}

func TestGetUnknownLinkIsNotFound(t *testing.T) {
	client, _ := newFakeClient(t, Config{})
	_, err := client.Links.Get(context.Background(), GetLinkRequest{Domain: String("dub.sh"), Key: String("missing")})
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %T %v", err, err)
	}
}

func TestUnauthorizedToken(t *testing.T) {
	fake := testutil.NewFakeServer(testutil.FakeServerConfig{Token: "right"})
	defer fake.Close()
	client := newTestClient(t, fake.Server, Config{Token: "wrong"})
	_, err := client.Links.List(context.Background(), ListLinksRequest{})
	if !IsUnauthorized(err) {
		t.Fatalf("expected UnauthorizedError, got %T %v", err, err)
	}
}

func TestRateLimitedThenRecovered(t *testing.T) {
	client, fake := newFakeClient(t, Config{})
	fake.FailNext(testutil.InjectedError{
		Status:  429,
		Code:    "rate_limit_exceeded",
		Message: "Too many requests.",
		Header:  map[string]string{"Retry-After": "2"},
	})
	_, err := client.Links.List(context.Background(), ListLinksRequest{})
	if !IsRateLimited(err) {
		t.Fatalf("expected RateLimitedError, got %T %v", err, err)
	}
	if _, err := client.Links.List(context.Background(), ListLinksRequest{}); err != nil {
		t.Fatalf("second call should succeed: %v", err)
	}
}

func TestSeededLinkWithUnknownFieldsDecodes(t *testing.T) {
	client, fake := newFakeClient(t, Config{})
	fake.SeedLink(map[string]any{
		"id":          "link_seed",
		"url":         "https://seed.example",
		"key":         "seed",
		"clicks":      12,
		"futureField": map[string]any{"nested": true},
		"geo":         map[string]any{"DE": "https://seed.example/de"},
	})
	got, err := client.Links.Get(context.Background(), GetLinkRequest{LinkID: String("link_seed")})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Clicks != 12 {
		t.Fatalf("expected 12 clicks, got %d", got.Clicks)
	}
	if geo, ok := got.Geo.Get(); !ok || geo["DE"] != "https://seed.example/de" {
		t.Fatalf("unexpected geo %+v", got.Geo)
	}
}

func TestNullSuccessBodyIsRejected(t *testing.T) {
	srv := jsonServer(200, `null`, nil)
	defer srv.Close()
	client := newTestClient(t, srv, Config{})
	ctx := context.Background()

	link, err := client.Links.Get(ctx, GetLinkRequest{LinkID: String("link_1")})
	var rverr *ResponseValidationError
	if !errors.As(err, &rverr) {
		t.Fatalf("expected ResponseValidationError, got %T %v", err, err)
	}
	if link.ID != "" {
		t.Fatalf("expected zero link alongside error, got %+v", link)
	}

	links, err := client.Links.BulkCreate(ctx, []CreateLinkRequest{{URL: "https://a.example"}})
	if !errors.As(err, &rverr) || links != nil {
		t.Fatalf("expected ResponseValidationError and no links, got %v %+v", err, links)
	}
}

func TestNullElementInListIsRejected(t *testing.T) {
	srv := jsonServer(200, `[{"id":"t0","name":"a","color":"red"},null]`, nil)
	defer srv.Close()
	client := newTestClient(t, srv, Config{})
	tags, err := client.Tags.List(context.Background())
	verr := asValidation(t, err)
	if verr.Field != "/1" || tags != nil {
		t.Fatalf("expected failure at /1 and no tags, got %+v %+v", verr, tags)
	}
}
