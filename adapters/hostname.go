package adapters

import (
	"context"
	"fmt"
	"net"
	"os"
	"strings"

	"myregistrar/interfaces"
	"myregistrar/service"
)

// CanonicalHostnameResolver creates an interfaces.HostnameResolver backed by os.Hostname and net.DefaultResolver.
//
// Resolution: local hostname → first forward-resolved address → first reverse name (trailing dot removed).
// When the reverse lookup yields nothing the textual address is returned. Nothing is cached.
//
// Called from cmd/myregistrar once at startup.
func CanonicalHostnameResolver() interfaces.HostnameResolver {
	return &canonicalHostnameResolver{
		hostname:   os.Hostname,
		lookupHost: net.DefaultResolver.LookupHost,
		lookupAddr: net.DefaultResolver.LookupAddr,
	}
}

type canonicalHostnameResolver struct {
	hostname   func() (string, error)
	lookupHost func(ctx context.Context, host string) ([]string, error)
	lookupAddr func(ctx context.Context, addr string) ([]string, error)
}

// CanonicalHostname returns hostname_unresolved when the local hostname is unknown or does not resolve to any address.
func (r *canonicalHostnameResolver) CanonicalHostname(ctx context.Context) (string, error) {
	host, err := r.hostname()
	if err != nil {
		return "", service.NewHostnameUnresolvedError("local hostname lookup failed", err)
	}
	host = strings.TrimSpace(host)
	if host == "" {
		return "", service.NewHostnameUnresolvedError("local hostname is empty", nil)
	}

	addrs, err := r.lookupHost(ctx, host)
	if err != nil {
		return "", service.NewHostnameUnresolvedError(fmt.Sprintf("resolve local hostname %q failed", host), err)
	}
	if len(addrs) == 0 {
		return "", service.NewHostnameUnresolvedError(fmt.Sprintf("local hostname %q has no addresses", host), nil)
	}
	addr := addrs[0]

	names, err := r.lookupAddr(ctx, addr)
	if err != nil {
		// No reverse mapping: the address itself is the canonical form.
		return addr, nil
	}
	for _, name := range names {
		if name = strings.TrimSuffix(strings.TrimSpace(name), "."); name != "" {
			return name, nil
		}
	}
	return addr, nil
}
