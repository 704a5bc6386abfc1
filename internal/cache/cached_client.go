// cached_client.go implements spec §4.6: the decorator that consults the
// memory cache for a whitelisted set of read endpoints and invalidates
// affected keys after a successful write.
package cache

import (
	"context"
	"fmt"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaclient"
)

// Upstream is the subset of *taigaclient.Client the cached client depends
// on, kept as an interface so tests can substitute a fake.
type Upstream interface {
	Do(ctx context.Context, spec taigaclient.RequestSpec, out any) error
}

// WriteScope names what a successful write affects, driving the
// invalidation rule of spec §4.6: "for any write targeting entity E within
// project P, after success invalidate (a) any key carrying project_id=P,
// and (b) any key referencing E by id."
type WriteScope struct {
	ProjectID  *int
	EntityName string // e.g. "projects", "userstories"; empty if not entity-scoped
	EntityID   *int
}

// CachedClient wraps an [Upstream] with the memory cache described in spec
// §4.5/§4.6.
type CachedClient struct {
	upstream Upstream
	cache    *MemoryCache
	policies []EndpointPolicy
	enabled  bool
}

// NewCachedClient builds a CachedClient. When enabled is false, every call
// passes straight through to upstream and the cache is never consulted —
// this is the TAIGA_CACHE_ENABLED master switch from spec §6.
func NewCachedClient(upstream Upstream, cache *MemoryCache, policies []EndpointPolicy, enabled bool) *CachedClient {
	return &CachedClient{upstream: upstream, cache: cache, policies: policies, enabled: enabled}
}

// Read executes a cacheable GET identified by endpointName (a logical
// endpoint family name matched against the policy table, e.g.
// "/projects/{id}/stats"), consulting the cache first. On miss it fetches
// upstream, stores, and returns. Endpoints not present in the policy table
// are never cached, even if called through Read.
func (c *CachedClient) Read(ctx context.Context, endpointName string, spec taigaclient.RequestSpec, out any) error {
	if !c.enabled {
		return c.upstream.Do(ctx, spec, out)
	}

	ttl, cacheable := Lookup(c.policies, endpointName)
	if !cacheable {
		return c.upstream.Do(ctx, spec, out)
	}

	key := spec.CanonicalKey()
	if cached, ok := c.cache.Get(key); ok {
		return copyOut(cached, out)
	}

	if err := c.upstream.Do(ctx, spec, out); err != nil {
		return err
	}
	c.cache.Set(key, out, ttl)
	return nil
}

// Write executes a non-cacheable mutation through upstream and, on success,
// invalidates every cache key scoped to scope's project and/or entity.
// Invalidation runs synchronously before Write returns, matching spec §5's
// "a cache invalidate triggered by a write W completes-before any
// subsequent get" ordering guarantee.
func (c *CachedClient) Write(ctx context.Context, spec taigaclient.RequestSpec, scope WriteScope, out any) error {
	if err := c.upstream.Do(ctx, spec, out); err != nil {
		return err
	}
	if c.enabled {
		c.invalidateScope(scope)
	}
	return nil
}

func (c *CachedClient) invalidateScope(scope WriteScope) {
	if scope.ProjectID != nil {
		pattern := fmt.Sprintf(`(^|[?&])project(_id)?=%d(&|$)`, *scope.ProjectID)
		c.cache.Invalidate(pattern)
	}
	if scope.EntityName != "" && scope.EntityID != nil {
		pattern := fmt.Sprintf(`/%s/%d(/|\?|$)`, scope.EntityName, *scope.EntityID)
		c.cache.Invalidate(pattern)
	}
}

// Stats exposes the cache management operations from spec §4.6.
func (c *CachedClient) Stats() Stats {
	return c.cache.Stats()
}

// ClearAll removes every cache entry and returns the count removed.
func (c *CachedClient) ClearAll() int {
	return c.cache.Clear()
}

// ClearProject removes every cache entry scoped to the given project id and
// returns the count removed.
func (c *CachedClient) ClearProject(projectID int) int {
	pattern := fmt.Sprintf(`(^|[?&])project(_id)?=%d(&|$)|/projects/%d(/|\?|$)`, projectID, projectID)
	n, _ := c.cache.Invalidate(pattern)
	return n
}

// copyOut marshals a previously-cached value into out. Since cached values
// are the exact pointer target captured at Set time reused across callers,
// we round-trip through the same JSON codec the client already uses rather
// than risk aliasing a caller's struct across concurrent invocations.
func copyOut(cached any, out any) error {
	if out == nil {
		return nil
	}
	return assignJSON(cached, out)
}
