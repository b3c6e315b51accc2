// Package dub provides a typed Go client for the Dub link-management API.
package dub

import (
	"net/http"
	"strings"

	"github.com/dubinc/dub-go/headers"
)

type authStrategy interface {
	Apply(req *http.Request)
}

type authChain []authStrategy

func (c authChain) Apply(req *http.Request) {
	for _, s := range c {
		if s == nil {
			continue
		}
		s.Apply(req)
	}
}

type bearerAuth struct {
	token string
}

func (b bearerAuth) Apply(req *http.Request) {
	if b.token == "" {
		return
	}
	req.Header.Set(headers.Authorization, "Bearer "+b.token)
}

// workspaceScope adds the default workspaceId query parameter unless the
// call already carries one.
type workspaceScope struct {
	id string
}

func (w workspaceScope) Apply(req *http.Request) {
	if w.id == "" {
		return
	}
	q := req.URL.Query()
	if q.Get(workspaceParam) != "" {
		return
	}
	q.Set(workspaceParam, w.id)
	req.URL.RawQuery = q.Encode()
}

const workspaceParam = "workspaceId"

func normalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	return token
}
