package interfaces

import (
	"context"

	"myregistrar/domain"
)

// Registry is the client side of the registry's application API.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// ListApplications reads GET {registryURL}/api/applications.
	// Returns:
	// 1) (listing, nil) on 200 with a valid JSON array (possibly empty);
	// 2) (nil, registry_unavailable) on transport error or deadline;
	// 3) (nil, registry_bad_response) on non-200 status or malformed body.
	ListApplications(ctx context.Context, registryURL string) (domain.RegistryListing, error)

	// RegisterApplication writes POST {registryURL}/api/applications with {id, url}. Response body is ignored.
	// Returns:
	// 1) nil on any 2xx status;
	// 2) registry_unavailable on transport error or deadline;
	// 3) bad_parameter when entry does not match the registry's Application schema;
	// 4) registry_bad_response on non-2xx status.
	RegisterApplication(ctx context.Context, registryURL string, entry domain.RegistrationEntry) error
}
