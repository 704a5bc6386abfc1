// Package httppool provides the process-wide HTTP session pool described in
// spec §4.4: a pool of keep-alive HTTPS connections with per-host limits,
// idle eviction, and graceful shutdown. It is a thin, counter-instrumented
// wrapper over *http.Client/*http.Transport, grounded in the teacher pack's
// http.Client construction idiom (cklxx-elephant.ai/internal/infra/httpclient).
package httppool

import (
	"context"
	"crypto/tls"
	"errors"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// ErrShutdown is returned by Do once the pool has been shut down.
var ErrShutdown = errors.New("httppool: pool is shut down")

// Config configures a [Pool].
type Config struct {
	MaxConnsPerHost     int
	ConnectTimeout      time.Duration
	IdleConnTimeout     time.Duration
	ResponseTimeout     time.Duration
	IdlePruneInterval   time.Duration
}

// DefaultConfig returns sane defaults matching spec §4.4's contract.
func DefaultConfig() Config {
	return Config{
		MaxConnsPerHost:   32,
		ConnectTimeout:    10 * time.Second,
		IdleConnTimeout:   90 * time.Second,
		ResponseTimeout:   30 * time.Second,
		IdlePruneInterval: time.Minute,
	}
}

// Stats is a snapshot of the pool's counters. InFlight is the number of
// requests currently inside Do; CreatedTotal counts every request submitted
// through Do and ClosedTotal every one of those that failed with an error.
// Idle connections are not counted: IdleTotal is always zero.
type Stats struct {
	InFlight    int64
	IdleTotal   int64
	CreatedTotal int64
	ClosedTotal  int64
}

// Pool is a process-wide pool of keep-alive HTTPS connections. The zero
// value is not usable; construct with [New].
type Pool struct {
	cfg    Config
	client *http.Client

	inFlight     atomic.Int64
	createdTotal atomic.Int64
	closedTotal  atomic.Int64

	mu       sync.Mutex
	shutdown bool
	stopPrune chan struct{}
	pruneDone chan struct{}
}

// New builds a Pool from cfg and starts its idle-connection pruning loop.
func New(cfg Config) *Pool {
	transport := &http.Transport{
		MaxConnsPerHost:     cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost: cfg.MaxConnsPerHost,
		IdleConnTimeout:     cfg.IdleConnTimeout,
		TLSClientConfig:     &tls.Config{MinVersion: tls.VersionTLS12},
		DialContext: (&net.Dialer{
			Timeout: cfg.ConnectTimeout,
		}).DialContext,
	}

	p := &Pool{
		cfg: cfg,
		client: &http.Client{
			Transport: transport,
			Timeout:   cfg.ResponseTimeout,
		},
		stopPrune: make(chan struct{}),
		pruneDone: make(chan struct{}),
	}
	go p.pruneLoop(transport)
	return p
}

func (p *Pool) pruneLoop(transport *http.Transport) {
	defer close(p.pruneDone)
	interval := p.cfg.IdlePruneInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.stopPrune:
			return
		case <-ticker.C:
			transport.CloseIdleConnections()
		}
	}
}

// Do submits req through the pool. It fails with [ErrShutdown] immediately
// if the pool has already been shut down.
func (p *Pool) Do(req *http.Request) (*http.Response, error) {
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return nil, ErrShutdown
	}
	p.mu.Unlock()

	p.inFlight.Add(1)
	p.createdTotal.Add(1)
	defer p.inFlight.Add(-1)

	resp, err := p.client.Do(req)
	if err != nil {
		p.closedTotal.Add(1)
	}
	return resp, err
}

// Stats returns a snapshot of the pool's counters.
func (p *Pool) Stats() Stats {
	return Stats{
		InFlight:     p.inFlight.Load(),
		CreatedTotal: p.createdTotal.Load(),
		ClosedTotal:  p.closedTotal.Load(),
	}
}

// Shutdown marks the pool closed, waits for in-flight requests to drain up
// to ctx's deadline, then force-closes remaining idle connections. After
// Shutdown returns, Do fails immediately with [ErrShutdown].
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return nil
	}
	p.shutdown = true
	p.mu.Unlock()

	close(p.stopPrune)
	<-p.pruneDone

	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	for p.inFlight.Load() > 0 {
		select {
		case <-ctx.Done():
			p.client.CloseIdleConnections()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	p.client.CloseIdleConnections()
	return nil
}
