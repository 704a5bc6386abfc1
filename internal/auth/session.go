// Package auth holds the single-entry, thread-safe bearer-token cache
// described in spec §3 "AuthSession" / §4.3: it proactively refreshes before
// expiry and coalesces concurrent refreshes onto a single upstream call.
// Locking discipline follows the teacher's circuit breaker (mutex-guarded
// state, never held across a call into another component's lock).
package auth

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

// Refresher performs the actual upstream login/refresh call. Implemented by
// the Taiga client; kept as an interface here so Session has no import cycle
// on taigaclient.
type Refresher interface {
	// Authenticate performs a fresh login (password or static-token) and
	// returns the resulting token set.
	Authenticate(ctx context.Context) (Token, error)
	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (Token, error)
}

// Token is the bearer credential pair plus its validity window.
type Token struct {
	AccessToken  string
	RefreshToken string
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// Valid reports whether t has a non-empty access token and has not yet
// expired at the given instant.
func (t Token) Valid(now time.Time) bool {
	return t.AccessToken != "" && now.Before(t.ExpiresAt)
}

// Session is the process-singleton auth token cache (spec §3 AuthSession).
// The zero value is not usable; construct with [New].
type Session struct {
	refresher        Refresher
	refreshThreshold time.Duration

	mu    sync.RWMutex
	token Token

	group singleflight.Group
}

// New builds a Session backed by r. refreshThreshold is the wall-clock
// margin before expiry at which a proactive refresh is triggered (spec
// GLOSSARY "Refresh threshold"; default 5 minutes per §4.3).
func New(r Refresher, refreshThreshold time.Duration) *Session {
	if refreshThreshold <= 0 {
		refreshThreshold = 5 * time.Minute
	}
	return &Session{refresher: r, refreshThreshold: refreshThreshold}
}

// Seed installs an initial token, e.g. one supplied as a static
// TAIGA_AUTH_TOKEN that bypasses password login entirely.
func (s *Session) Seed(tok Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
}

// GetValidToken returns a token guaranteed to satisfy expiry > now (spec §8
// "Token freshness"). If the cached token is within refreshThreshold of
// expiry, exactly one refresh is performed across all concurrent callers
// racing on that condition, coalesced via singleflight. If the refresh
// fails but the old token is still within its absolute validity, the old
// token is returned; if the old token has actually expired, an
// Unauthenticated error is surfaced.
func (s *Session) GetValidToken(ctx context.Context) (string, error) {
	now := time.Now()

	s.mu.RLock()
	tok := s.token
	s.mu.RUnlock()

	if tok.AccessToken == "" {
		return s.initialLogin(ctx)
	}

	if now.Add(s.refreshThreshold).Before(tok.ExpiresAt) {
		return tok.AccessToken, nil
	}

	refreshed, err, _ := s.group.Do("refresh", func() (any, error) {
		return s.doRefresh(ctx, tok)
	})
	if err != nil {
		if tok.Valid(time.Now()) {
			return tok.AccessToken, nil
		}
		return "", taigaerr.Wrap(taigaerr.Unauthenticated, err, "token refresh failed and the cached token has expired")
	}
	return refreshed.(Token).AccessToken, nil
}

func (s *Session) initialLogin(ctx context.Context) (string, error) {
	result, err, _ := s.group.Do("login", func() (any, error) {
		tok, err := s.refresher.Authenticate(ctx)
		if err != nil {
			return Token{}, err
		}
		s.mu.Lock()
		s.token = tok
		s.mu.Unlock()
		return tok, nil
	})
	if err != nil {
		return "", taigaerr.Wrap(taigaerr.Unauthenticated, err, "initial login failed")
	}
	return result.(Token).AccessToken, nil
}

func (s *Session) doRefresh(ctx context.Context, stale Token) (Token, error) {
	tok, err := s.refresher.Refresh(ctx, stale.RefreshToken)
	if err != nil {
		return Token{}, err
	}
	s.mu.Lock()
	s.token = tok
	s.mu.Unlock()
	return tok, nil
}

// Clear drops the cached token, as required on logout and on a 401 from
// upstream (spec §4.3).
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = Token{}
}

// Status reports the public auth status surfaced by the taiga_auth_status
// tool (SPEC_FULL.md Supplemented Features).
type Status struct {
	Authenticated bool
	ExpiresAt     *time.Time
}

// Status returns the current token's presence and expiry without
// triggering a refresh.
func (s *Session) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.token.Valid(time.Now()) {
		return Status{Authenticated: false}
	}
	exp := s.token.ExpiresAt
	return Status{Authenticated: true, ExpiresAt: &exp}
}
