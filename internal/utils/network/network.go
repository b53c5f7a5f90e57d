package network

import (
	"crypto/tls"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/yarikoptic/neurodocker/internal/utils/logger"
)

// DefaultTimeout bounds a single reachability probe.
const DefaultTimeout = 5 * time.Second

// Checker reports whether a download URL answers at all. Implementations
// never return an error: an unreachable URL is advisory, not fatal.
type Checker interface {
	URLReachable(url string) bool
}

// NewSecureHTTPClient returns an http.Client with a custom TLS configuration
// and a bounded timeout. Callers can reuse this instead of re-defining the
// TLS settings everywhere.
func NewSecureHTTPClient(timeout time.Duration) *http.Client {

	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		MaxVersion: tls.VersionTLS13,

		// CipherSuites applies only to TLS 1.0–1.2
		CipherSuites: []uint16{
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
		},
	}

	transport := &http.Transport{
		TLSClientConfig:   tlsConfig,
		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// HTTPChecker probes URLs with a plain GET.
type HTTPChecker struct {
	Client *http.Client
	Log    *zap.SugaredLogger
}

// NewHTTPChecker returns a checker backed by the secure HTTP client and the
// process-wide logger.
func NewHTTPChecker() *HTTPChecker {
	return &HTTPChecker{
		Client: NewSecureHTTPClient(DefaultTimeout),
		Log:    logger.Logger(),
	}
}

// URLReachable returns true if url answered with a non-error status. Any
// network failure or HTTP error status is logged as a warning and reported
// as false, never as an error.
func (c *HTTPChecker) URLReachable(url string) bool {
	resp, err := c.Client.Get(url)
	if err != nil {
		c.Log.Warnf("URL %s not reachable: %v", url, err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.Log.Warnf("URL %s not reachable: %s", url, resp.Status)
		return false
	}
	return true
}
