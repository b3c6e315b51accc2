package dub

import (
	"bytes"
	"errors"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/dubinc/dub-go/testutil"
)

func canonicalJSON(t *testing.T, raw []byte) []byte {
	t.Helper()
	var anyVal any
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		t.Fatalf("unmarshal json: %v", err)
	}
	// encoding of map[string]any sorts keys
	canon, err := json.Marshal(anyVal)
	if err != nil {
		t.Fatalf("canonicalize json: %v", err)
	}
	return canon
}

func assertJSONEqual(t *testing.T, got []byte, want string) {
	t.Helper()
	if g, w := canonicalJSON(t, got), canonicalJSON(t, []byte(want)); !bytes.Equal(g, w) {
		t.Fatalf("json mismatch\n got: %s\nwant: %s", g, w)
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, cfg Config) *Client {
	t.Helper()
	cfg.BaseURL = srv.URL
	cfg.HTTPClient = srv.Client()
	if cfg.Token == "" {
		cfg.Token = "dub_test_token"
	}
	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func newFakeClient(t *testing.T, cfg Config) (*Client, *testutil.FakeServer) {
	t.Helper()
	fake := testutil.NewFakeServer(testutil.FakeServerConfig{Token: "dub_test_token"})
	t.Cleanup(fake.Close)
	return newTestClient(t, fake.Server, cfg), fake
}

func asValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T %v", err, err)
	}
	return verr
}
