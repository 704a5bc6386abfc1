package taigaclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/auth"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*taigaclient.Client, *auth.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := taigaclient.New(srv.URL, http.DefaultClient, nil, "", "", "static-token")
	session := auth.New(c, 5*time.Minute)
	// Replace client's session via a fresh construction sharing the session.
	c = taigaclient.New(srv.URL, http.DefaultClient, session, "", "", "static-token")
	return c, session
}

func TestClient_Do_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer static-token" {
			t.Errorf("missing bearer token, got %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "demo"})
	})

	var out struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	err := c.Do(context.Background(), taigaclient.RequestSpec{Method: "GET", Path: "/projects/7"}, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != 7 || out.Name != "demo" {
		t.Errorf("got %+v", out)
	}
}

func TestClient_Do_ErrorMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantKind taigaerr.Kind
	}{
		{http.StatusUnauthorized, taigaerr.Unauthenticated},
		{http.StatusForbidden, taigaerr.PermissionDenied},
		{http.StatusNotFound, taigaerr.NotFound},
		{http.StatusConflict, taigaerr.Conflict},
		{http.StatusUnprocessableEntity, taigaerr.InvalidInput},
		{http.StatusTooManyRequests, taigaerr.RateLimited},
		{http.StatusServiceUnavailable, taigaerr.Transient},
	}

	for _, tt := range tests {
		t.Run(string(tt.wantKind), func(t *testing.T) {
			c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.status == http.StatusUnprocessableEntity {
					json.NewEncoder(w).Encode(map[string][]string{"name": {"this field is required"}})
				}
			})
			err := c.Do(context.Background(), taigaclient.RequestSpec{Method: "GET", Path: "/x"}, nil)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := taigaerr.KindOf(err); got != tt.wantKind {
				t.Errorf("kind = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestClient_Do_401ClearsToken(t *testing.T) {
	c, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	session.Seed(auth.Token{AccessToken: "stale", ExpiresAt: time.Now().Add(time.Hour)})

	err := c.Do(context.Background(), taigaclient.RequestSpec{Method: "GET", Path: "/x"}, nil)
	if taigaerr.KindOf(err) != taigaerr.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	if session.Status().Authenticated {
		t.Error("expected token to be cleared after 401")
	}
}

func TestRequestSpec_CanonicalKey(t *testing.T) {
	s1 := taigaclient.RequestSpec{Path: "/userstories", Query: url.Values{"project": {"7"}, "status": {"open"}}}
	s2 := taigaclient.RequestSpec{Path: "/userstories", Query: url.Values{"status": {"open"}, "project": {"7"}}}
	if s1.CanonicalKey() != s2.CanonicalKey() {
		t.Errorf("canonical keys differ by param order: %q vs %q", s1.CanonicalKey(), s2.CanonicalKey())
	}

	s3 := taigaclient.RequestSpec{Path: "/userstories", Query: url.Values{"project": {"7"}, "status": {""}}}
	s4 := taigaclient.RequestSpec{Path: "/userstories", Query: url.Values{"project": {"7"}}}
	if s3.CanonicalKey() != s4.CanonicalKey() {
		t.Errorf("empty-valued params should canonicalise identically to absent: %q vs %q", s3.CanonicalKey(), s4.CanonicalKey())
	}
}
