// Package network provides a pre-configured HTTP client for communicating with the players' remote-control interfaces.
package network

import (
	"net/http"
	"time"
)

// Client is the singleton HTTP client shared across the application for efficient resource utilization.
// Remote-control calls are small and local; the short timeout keeps fire-and-forget semantics honest.
var Client = &http.Client{
	Timeout:   10 * time.Second,
	Transport: newTransport(),
}

// newTransport initializes a tuned http.Transport with pool parameters sized for two long-lived endpoints.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 10 * time.Second
	return t
}
