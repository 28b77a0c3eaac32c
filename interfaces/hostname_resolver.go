package interfaces

import "context"

// HostnameResolver resolves the canonical hostname of the local machine.
//
//go:generate moq -stub -out mock/hostname_resolver.go -pkg mock . HostnameResolver
type HostnameResolver interface {
	// CanonicalHostname returns the fully-qualified name the machine resolves for itself, or its textual
	// address when no reverse name exists.
	// Returns hostname_unresolved when the local hostname cannot be determined or resolved.
	CanonicalHostname(ctx context.Context) (string, error)
}
