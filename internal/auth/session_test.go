package auth_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/auth"
	"github.com/taiga-mcp/taiga-mcp-server/internal/taigaerr"
)

type fakeRefresher struct {
	authCalls     atomic.Int64
	refreshCalls  atomic.Int64
	refreshErr    error
	nextExpiry    time.Duration
}

func (f *fakeRefresher) Authenticate(ctx context.Context) (auth.Token, error) {
	f.authCalls.Add(1)
	now := time.Now()
	return auth.Token{AccessToken: "initial", RefreshToken: "r0", IssuedAt: now, ExpiresAt: now.Add(f.nextExpiry)}, nil
}

func (f *fakeRefresher) Refresh(ctx context.Context, refreshToken string) (auth.Token, error) {
	f.refreshCalls.Add(1)
	if f.refreshErr != nil {
		return auth.Token{}, f.refreshErr
	}
	now := time.Now()
	return auth.Token{AccessToken: "refreshed", RefreshToken: "r1", IssuedAt: now, ExpiresAt: now.Add(f.nextExpiry)}, nil
}

func TestSession_InitialLogin(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour}
	s := auth.New(r, 5*time.Minute)

	tok, err := s.GetValidToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "initial" {
		t.Errorf("token = %q, want %q", tok, "initial")
	}
	if r.authCalls.Load() != 1 {
		t.Errorf("authCalls = %d, want 1", r.authCalls.Load())
	}
}

func TestSession_RefreshesWhenNearExpiry(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour}
	s := auth.New(r, 5*time.Minute)
	s.Seed(auth.Token{AccessToken: "stale", RefreshToken: "r0", ExpiresAt: time.Now().Add(30 * time.Second)})

	tok, err := s.GetValidToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "refreshed" {
		t.Errorf("token = %q, want %q", tok, "refreshed")
	}
	if r.refreshCalls.Load() != 1 {
		t.Errorf("refreshCalls = %d, want 1", r.refreshCalls.Load())
	}
}

func TestSession_ConcurrentRefreshCoalesces(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour}
	s := auth.New(r, 5*time.Minute)
	s.Seed(auth.Token{AccessToken: "stale", RefreshToken: "r0", ExpiresAt: time.Now().Add(30 * time.Second)})

	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.GetValidToken(context.Background())
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if r.refreshCalls.Load() != 1 {
		t.Errorf("refreshCalls = %d, want exactly 1 across 10 concurrent callers", r.refreshCalls.Load())
	}
}

func TestSession_RefreshFailureFallsBackToOldTokenWithinValidity(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour, refreshErr: errors.New("upstream down")}
	s := auth.New(r, 5*time.Minute)
	s.Seed(auth.Token{AccessToken: "still-good", RefreshToken: "r0", ExpiresAt: time.Now().Add(time.Minute)})

	tok, err := s.GetValidToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok != "still-good" {
		t.Errorf("token = %q, want fallback to old token", tok)
	}
}

func TestSession_RefreshFailureOnExpiredTokenSurfacesUnauthenticated(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour, refreshErr: errors.New("upstream down")}
	s := auth.New(r, 5*time.Minute)
	s.Seed(auth.Token{AccessToken: "expired", RefreshToken: "r0", ExpiresAt: time.Now().Add(-time.Minute)})

	_, err := s.GetValidToken(context.Background())
	if err == nil {
		t.Fatal("expected error for expired token with failed refresh")
	}
	if taigaerr.KindOf(err) != taigaerr.Unauthenticated {
		t.Errorf("kind = %v, want Unauthenticated", taigaerr.KindOf(err))
	}
}

func TestSession_Clear(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour}
	s := auth.New(r, 5*time.Minute)
	s.Seed(auth.Token{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	s.Clear()
	status := s.Status()
	if status.Authenticated {
		t.Error("expected Authenticated=false after Clear")
	}
}

func TestSession_Status(t *testing.T) {
	r := &fakeRefresher{nextExpiry: time.Hour}
	s := auth.New(r, 5*time.Minute)
	s.Seed(auth.Token{AccessToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	status := s.Status()
	if !status.Authenticated {
		t.Error("expected Authenticated=true")
	}
	if status.ExpiresAt == nil {
		t.Error("expected ExpiresAt to be set")
	}
}
