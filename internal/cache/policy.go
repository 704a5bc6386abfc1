package cache

import (
	"regexp"
	"time"
)

// EndpointPolicy is one row of the static, read-only-at-runtime table
// mapping an upstream endpoint family to its cacheability and TTL (spec
// §3 "EndpointPolicy", §4.6 table).
type EndpointPolicy struct {
	// Pattern matches against a RequestSpec's logical endpoint name (not
	// the fully-substituted path), e.g. "/userstories/filters_data".
	Pattern *regexp.Regexp
	TTL     time.Duration
	// ReadOnly is always true for entries in this table; write endpoints
	// are never cacheable and instead drive invalidation.
	ReadOnly bool
}

// DefaultPolicies returns the endpoint policy table from spec §4.6.
func DefaultPolicies() []EndpointPolicy {
	return []EndpointPolicy{
		{Pattern: regexp.MustCompile(`/filters_data$`), TTL: 30 * time.Minute, ReadOnly: true},
		{Pattern: regexp.MustCompile(`^/projects/[^/]+/modules$`), TTL: 30 * time.Minute, ReadOnly: true},
		{Pattern: regexp.MustCompile(`^/projects/[^/]+/stats$`), TTL: 5 * time.Minute, ReadOnly: true},
		{Pattern: regexp.MustCompile(`^/milestones/[^/]+/stats$`), TTL: 5 * time.Minute, ReadOnly: true},
		{Pattern: regexp.MustCompile(`^/users/me$`), TTL: 10 * time.Minute, ReadOnly: true},
		{Pattern: regexp.MustCompile(`^/memberships$`), TTL: 10 * time.Minute, ReadOnly: true},
	}
}

// Lookup returns the TTL for endpointName and whether it is cacheable at
// all. All other reads (listings of user stories/issues/tasks, etc.) are
// not cached, per spec §4.6's table.
func Lookup(policies []EndpointPolicy, endpointName string) (time.Duration, bool) {
	for _, p := range policies {
		if p.Pattern.MatchString(endpointName) {
			return p.TTL, true
		}
	}
	return 0, false
}
