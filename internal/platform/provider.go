package platform

import (
	"errors"
	"time"
)

// Provider bundles the host backends.
type Provider struct {
	Commander   Commander
	Inspector   Inspector
	Diagnostics Diagnostics
	Library     Library

	// Close releases transport resources. May be nil.
	Close func() error
}

// ConnectOptions locate the media center.
type ConnectOptions struct {
	Host      string
	Port      int // JSON-RPC HTTP port
	EventPort int // EventServer UDP port
	Username  string
	Password  string
	Timeout   time.Duration
	Retries   int
}

// ErrUnsupported is returned when no host backend has been registered.
var ErrUnsupported = errors.New("no media center backend registered")

// NewProviderFunc is set by backend packages via init().
// See internal/platform/kodi/init.go for the Kodi registration.
var NewProviderFunc func(opts ConnectOptions) (*Provider, error)

// NewProvider returns a Provider for the configured media center.
func NewProvider(opts ConnectOptions) (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc(opts)
}

// Shutdown calls p.Close if set.
func (p *Provider) Shutdown() error {
	if p == nil || p.Close == nil {
		return nil
	}
	return p.Close()
}
