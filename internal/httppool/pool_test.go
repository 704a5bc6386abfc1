package httppool_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/taiga-mcp/taiga-mcp-server/internal/httppool"
)

func TestPool_DoSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := httppool.New(httppool.DefaultConfig())
	defer p.Shutdown(context.Background())

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := p.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}

	stats := p.Stats()
	if stats.CreatedTotal != 1 {
		t.Errorf("CreatedTotal = %d, want 1", stats.CreatedTotal)
	}
	if stats.InFlight != 0 {
		t.Errorf("InFlight = %d, want 0 after completion", stats.InFlight)
	}
}

func TestPool_RejectsAfterShutdown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := httppool.New(httppool.DefaultConfig())
	if err := p.Shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected shutdown error: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	_, err := p.Do(req)
	if err != httppool.ErrShutdown {
		t.Errorf("Do() after shutdown: got %v, want ErrShutdown", err)
	}
}

func TestPool_ShutdownWaitsForInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := httppool.New(httppool.DefaultConfig())

	done := make(chan struct{})
	go func() {
		req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
		resp, err := p.Do(req)
		if err == nil {
			resp.Body.Close()
		}
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown returned error: %v", err)
	}
	<-done
}

func TestPool_ShutdownDeadlineExceeded(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()
	defer close(release)

	p := httppool.New(httppool.DefaultConfig())
	go func() {
		req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
		p.Do(req)
	}()
	time.Sleep(20 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := p.Shutdown(ctx); err == nil {
		t.Error("expected deadline-exceeded error from Shutdown")
	}
}
