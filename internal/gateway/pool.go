package gateway

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// Connection pool sizing. The per-host budget makes callers block when
	// the pool is exhausted instead of opening extra connections.
	maxPooledConns  = 100
	maxConnsPerHost = 100

	// Transport-level retry configuration. Only connection-level failures
	// are retried; HTTP status handling stays above this layer.
	transportRetryCount   = 3
	transportRetryWait    = 1 * time.Second
	transportRetryMaxWait = 5 * time.Second

	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 10 * time.Second
)

//nolint:gochecknoglobals // One pool per process, lazily created on first use
var (
	poolOnce   sync.Once
	sharedPool *resty.Client
)

// SharedClient returns the process-wide pooled client, creating it on first
// use. Every gateway constructed via Default shares this instance, which
// amortizes TCP/TLS handshake cost across calls.
func SharedClient() *resty.Client {
	poolOnce.Do(func() {
		sharedPool = NewPooledClient()
	})
	return sharedPool
}

// NewPooledClient builds a resty client over a bounded connection pool.
// The same transport serves both http and https targets. Callers that want
// to own the pool lifecycle construct one of these and pass it to New.
func NewPooledClient() *resty.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          maxPooledConns,
		MaxIdleConnsPerHost:   maxConnsPerHost,
		MaxConnsPerHost:       maxConnsPerHost,
		IdleConnTimeout:       idleConnTimeout,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return resty.New().
		SetTransport(transport).
		SetRetryCount(transportRetryCount).
		SetRetryWaitTime(transportRetryWait).
		SetRetryMaxWaitTime(transportRetryMaxWait)
}
