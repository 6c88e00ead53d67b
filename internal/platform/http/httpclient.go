// Package http provides HTTP plumbing shared by outbound clients and the server.
package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns a client for calls to third-party services.
// http.DefaultClient has no timeout, so outbound calls always go through this.
// timeout bounds the whole exchange, including reading the body.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          50,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
