package cache_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/cache"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
)

type fakeUpstream struct {
	calls int
	resp  map[string]any
}

func (f *fakeUpstream) Do(ctx context.Context, spec taigaclient.RequestSpec, out any) error {
	f.calls++
	if m, ok := out.(*map[string]any); ok {
		*m = f.resp
	}
	return nil
}

func newPolicies() []cache.EndpointPolicy {
	return cache.DefaultPolicies()
}

func TestCachedClient_HappyPathCachedRead(t *testing.T) {
	up := &fakeUpstream{resp: map[string]any{"id": float64(7)}}
	mc := cache.New(100, time.Minute)
	cc := cache.NewCachedClient(up, mc, newPolicies(), true)

	spec := taigaclient.RequestSpec{Method: "GET", Path: "/userstories/filters_data", Query: url.Values{"project": {"7"}}}

	var out1 map[string]any
	if err := cc.Read(context.Background(), "/userstories/filters_data", spec, &out1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var out2 map[string]any
	if err := cc.Read(context.Background(), "/userstories/filters_data", spec, &out2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if up.calls != 1 {
		t.Errorf("upstream calls = %d, want 1 (second call should hit cache)", up.calls)
	}
	stats := cc.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("stats = %+v, want hits=1 misses=1", stats)
	}
}

func TestCachedClient_WriteInvalidatesRead(t *testing.T) {
	up := &fakeUpstream{resp: map[string]any{"id": float64(7), "name": "old"}}
	mc := cache.New(100, time.Minute)
	cc := cache.NewCachedClient(up, mc, newPolicies(), true)

	readSpec := taigaclient.RequestSpec{Method: "GET", Path: "/projects/7/stats"}
	var out map[string]any
	cc.Read(context.Background(), "/projects/{id}/stats", readSpec, &out) // prime cache

	projectID := 7
	writeSpec := taigaclient.RequestSpec{Method: "PATCH", Path: "/projects/7"}
	var writeOut map[string]any
	if err := cc.Write(context.Background(), writeSpec, cache.WriteScope{ProjectID: &projectID, EntityName: "projects", EntityID: &projectID}, &writeOut); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	callsBefore := up.calls
	var out2 map[string]any
	cc.Read(context.Background(), "/projects/{id}/stats", readSpec, &out2)
	if up.calls != callsBefore+1 {
		t.Error("expected read after write to miss cache and hit upstream again")
	}
}

func TestCachedClient_NonCacheableEndpointAlwaysHitsUpstream(t *testing.T) {
	up := &fakeUpstream{resp: map[string]any{"id": float64(1)}}
	mc := cache.New(100, time.Minute)
	cc := cache.NewCachedClient(up, mc, newPolicies(), true)

	spec := taigaclient.RequestSpec{Method: "GET", Path: "/userstories"}
	var out map[string]any
	cc.Read(context.Background(), "userstories/list", spec, &out)
	cc.Read(context.Background(), "userstories/list", spec, &out)

	if up.calls != 2 {
		t.Errorf("upstream calls = %d, want 2 (uncacheable endpoint)", up.calls)
	}
}

func TestCachedClient_DisabledBypassesCache(t *testing.T) {
	up := &fakeUpstream{resp: map[string]any{"id": float64(1)}}
	mc := cache.New(100, time.Minute)
	cc := cache.NewCachedClient(up, mc, newPolicies(), false)

	spec := taigaclient.RequestSpec{Method: "GET", Path: "/users/me"}
	var out map[string]any
	cc.Read(context.Background(), "users/me", spec, &out)
	cc.Read(context.Background(), "users/me", spec, &out)

	if up.calls != 2 {
		t.Errorf("upstream calls = %d, want 2 when cache disabled", up.calls)
	}
}

func TestCachedClient_ClearProject(t *testing.T) {
	up := &fakeUpstream{resp: map[string]any{"id": float64(1)}}
	mc := cache.New(100, time.Minute)
	cc := cache.NewCachedClient(up, mc, newPolicies(), true)

	spec := taigaclient.RequestSpec{Method: "GET", Path: "/projects/7/stats"}
	var out map[string]any
	cc.Read(context.Background(), "/projects/{id}/stats", spec, &out)

	n := cc.ClearProject(7)
	if n == 0 {
		t.Error("expected at least one entry cleared for project 7")
	}
}
