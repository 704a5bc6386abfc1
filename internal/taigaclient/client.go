// Package taigaclient is the authenticated Taiga REST façade described in
// spec §2/§4.3: it consults the auth token cache, submits requests through
// the HTTP session pool, decodes JSON, and normalises upstream errors into
// the taigaerr taxonomy. Per-tool typed convenience is intentionally thin —
// the bulk of the ~200 endpoint shapes are driven by catalog descriptors
// (internal/catalog) that call [Client.Do] directly, per spec §9's
// table-driven dispatch design note.
package taigaclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/auth"
	"github.com/taiga-mcp/taiga-mcp-server/internal/httppool"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// Option configures a Client at construction time, following the teacher's
// functional-options idiom (pkg/provider/llm/openai.Option).
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.requestTimeout = d }
}

// WithHTTPDoer overrides the pool used for outbound calls, primarily for
// tests.
func WithHTTPDoer(d HTTPDoer) Option {
	return func(c *Client) { c.pool = d }
}

// HTTPDoer is the subset of *httppool.Pool the client depends on.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is the Taiga API façade (spec §3 "Taiga API client").
type Client struct {
	baseURL        string
	pool           HTTPDoer
	session        *auth.Session
	requestTimeout time.Duration

	username, password string
	staticToken        string
}

// New builds a Client. pool is typically an *httppool.Pool; session is
// shared with the rest of the container.
func New(baseURL string, pool HTTPDoer, session *auth.Session, username, password, staticToken string, opts ...Option) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		pool:           pool,
		session:        session,
		requestTimeout: 30 * time.Second,
		username:       username,
		password:       password,
		staticToken:    staticToken,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestSpec describes one call against the Taiga REST API. Catalog
// descriptors build one of these per tool invocation.
type RequestSpec struct {
	Method string
	Path   string // already has path params substituted in
	Query  url.Values
	Body   any // marshaled as JSON if non-nil; ignored for GET/HEAD/DELETE
}

// CanonicalKey renders (endpoint, sorted query params) into the cache-key
// fragment used by internal/cache, per the canonicalisation decided in
// SPEC_FULL.md's Open Question Decisions: sorted-by-name query params,
// default/absent values omitted.
func (s RequestSpec) CanonicalKey() string {
	if len(s.Query) == 0 {
		return s.Path
	}
	names := make([]string, 0, len(s.Query))
	for k := range s.Query {
		if s.Query.Get(k) == "" {
			continue
		}
		names = append(names, k)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return s.Path
	}
	var b strings.Builder
	b.WriteString(s.Path)
	b.WriteByte('?')
	for i, k := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(s.Query.Get(k))
	}
	return b.String()
}

// Do executes spec against Taiga and decodes the JSON response into out
// (which may be nil to discard the body). It is the single entry point
// every catalog tool and the cached client route through.
func (c *Client) Do(ctx context.Context, spec RequestSpec, out any) error {
	tok, err := c.session.GetValidToken(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := c.buildRequest(ctx, spec, tok)
	if err != nil {
		return taigaerr.Wrap(taigaerr.Internal, err, "build request")
	}

	resp, err := c.pool.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return taigaerr.New(taigaerr.Timeout, "request deadline exceeded")
		}
		return taigaerr.Wrap(taigaerr.Transient, err, "upstream request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return taigaerr.Wrap(taigaerr.Transient, err, "reading response body")
	}

	if err := mapStatus(resp.StatusCode, resp.Header, body); err != nil {
		if taigaerr.KindOf(err) == taigaerr.Unauthenticated {
			c.session.Clear()
		}
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return taigaerr.Wrap(taigaerr.Internal, err, "decoding response body")
	}
	return nil
}

// doUnauthenticated executes spec without consulting the token cache. It
// backs the login and refresh calls themselves (internal/taigaclient/auth.go)
// which must not recurse back into Session.GetValidToken while that very
// call is what's obtaining the first token.
func (c *Client) doUnauthenticated(ctx context.Context, spec RequestSpec, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := c.buildRequest(ctx, spec, "")
	if err != nil {
		return taigaerr.Wrap(taigaerr.Internal, err, "build request")
	}

	resp, err := c.pool.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return taigaerr.New(taigaerr.Timeout, "request deadline exceeded")
		}
		return taigaerr.Wrap(taigaerr.Transient, err, "upstream request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return taigaerr.Wrap(taigaerr.Transient, err, "reading response body")
	}

	if err := mapStatus(resp.StatusCode, resp.Header, body); err != nil {
		return err
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return taigaerr.Wrap(taigaerr.Internal, err, "decoding response body")
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, spec RequestSpec, token string) (*http.Request, error) {
	u := c.baseURL + spec.Path
	if len(spec.Query) > 0 {
		u += "?" + spec.Query.Encode()
	}

	var bodyReader io.Reader
	method := strings.ToUpper(spec.Method)
	if spec.Body != nil && method != http.MethodGet && method != http.MethodHead && method != http.MethodDelete {
		buf, err := json.Marshal(spec.Body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bodyReader)
	if err != nil {
		return nil, err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// mapStatus implements the status→kind mapping from spec §4.3/§8 "Error
// mapping".
func mapStatus(status int, header http.Header, body []byte) error {
	switch {
	case status >= 200 && status < 300:
		return nil
	case status == http.StatusUnauthorized:
		return taigaerr.New(taigaerr.Unauthenticated, "upstream returned 401")
	case status == http.StatusForbidden:
		return taigaerr.New(taigaerr.PermissionDenied, "upstream returned 403")
	case status == http.StatusNotFound:
		return taigaerr.New(taigaerr.NotFound, "upstream returned 404")
	case status == http.StatusConflict:
		return taigaerr.New(taigaerr.Conflict, "upstream returned 409")
	case status == http.StatusUnprocessableEntity:
		return taigaerr.New(taigaerr.InvalidInput, fieldDetail(body)).WithField(firstField(body))
	case status == http.StatusTooManyRequests:
		// Open Question Decision (SPEC_FULL.md): no Retry-After header still
		// classifies as RateLimited; the error-handling middleware applies
		// its standard backoff when RetryAfter is zero.
		return taigaerr.New(taigaerr.RateLimited, "upstream returned 429").WithRetryAfter(retryAfterSeconds(header))
	case status >= 500:
		return taigaerr.Newf(taigaerr.Transient, "upstream returned %d", status)
	default:
		return taigaerr.Newf(taigaerr.Internal, "unexpected upstream status %d", status)
	}
}

// fieldDetail extracts a human-readable summary from a Taiga 422 body,
// which is typically {"field_name": ["error", ...], ...}.
func fieldDetail(body []byte) string {
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err != nil || len(fields) == 0 {
		return "validation failed"
	}
	for field, msgs := range fields {
		if len(msgs) > 0 {
			return fmt.Sprintf("%s: %s", field, msgs[0])
		}
	}
	return "validation failed"
}

func firstField(body []byte) string {
	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}
	for field := range fields {
		return field
	}
	return ""
}

// retryAfterSeconds parses a Retry-After header value, supporting both the
// delta-seconds form Taiga uses and falling back to 0 when absent/invalid.
func retryAfterSeconds(h http.Header) float64 {
	v := h.Get("Retry-After")
	if v == "" {
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
