// Package kodi talks to a Kodi media center: JSON-RPC over HTTP for queries
// and the EventServer UDP protocol for builtin commands.
package kodi

import "github.com/mj1618/kodi-search/internal/platform"

func init() {
	platform.NewProviderFunc = func(opts platform.ConnectOptions) (*platform.Provider, error) {
		rpc := NewClient(opts.Host, opts.Port, opts.Username, opts.Password, opts.Timeout, opts.Retries)
		events, err := DialEvents(opts.Host, opts.EventPort, opts.Timeout)
		if err != nil {
			return nil, err
		}
		host := NewHost(rpc, events)
		return &platform.Provider{
			Commander:   host,
			Inspector:   host,
			Diagnostics: host,
			Library:     host,
			Close:       host.Close,
		}, nil
	}
}
