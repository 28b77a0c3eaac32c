package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"myregistrar/domain"
	"myregistrar/helpers"
	"myregistrar/interfaces"
	"myregistrar/service"
)

// maxListingBytes caps how much of a registry listing is read into memory.
const maxListingBytes = 4 << 20

// RegistryHTTP creates an interfaces.Registry that talks to the registry over HTTP:
// GET {registryURL}/api/applications and POST {registryURL}/api/applications. Panics on nil client.
//
// The client should carry a timeout; per-call deadlines come from ctx.
//
// Listing bodies and outgoing entries are validated against the schemas of api/registry.openapi.yaml.
//
// Called from cmd/myregistrar once at startup.
func RegistryHTTP(client *http.Client) interfaces.Registry {
	return &registryHTTP{
		client:  helpers.NilPanic(client, "adapters.registry.go: http client is required"),
		schemas: mustLoadRegistrySchemas(),
	}
}

// registryHTTP implements interfaces.Registry. Used by service.RegistrationAgent on every invocation.
type registryHTTP struct {
	client  *http.Client
	schemas *registrySchemas
}

// application is the JSON shape of one registry entry: {"id": "...", "url": "..."}. Extra fields are ignored.
type application struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ListApplications performs GET {registryURL}/api/applications.
//
// Returns: (listing, nil) on 200 with a JSON array matching ApplicationList (possibly empty); entries with a
// missing, null or empty id are skipped;
// (nil, registry_unavailable) on network error, deadline or body read error;
// (nil, registry_bad_response) on non-200 status, a body over maxListingBytes, invalid JSON or schema mismatch
// (e.g. null, an object, a non-string id);
// (nil, invalid_property) when registryURL cannot form a request.
func (r *registryHTTP) ListApplications(ctx context.Context, registryURL string) (domain.RegistryListing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, applicationsURL(registryURL), nil)
	if err != nil {
		return nil, service.NewInvalidPropertyError(domain.PropertyRegistryURL, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, service.NewRegistryUnavailableError("registry request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, service.NewRegistryBadResponseError(fmt.Sprintf("registry returned %d", resp.StatusCode), nil)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxListingBytes+1))
	if err != nil {
		return nil, service.NewRegistryUnavailableError("registry response read failed", err)
	}
	if len(body) > maxListingBytes {
		return nil, service.NewRegistryBadResponseError(fmt.Sprintf("registry listing exceeds %d bytes", maxListingBytes), nil)
	}

	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, service.NewRegistryBadResponseError("registry response is not valid JSON", err)
	}
	if err := r.schemas.applicationList.VisitJSON(raw); err != nil {
		return nil, service.NewRegistryBadResponseError("registry response does not match ApplicationList", err)
	}
	var apps []application
	if err := json.Unmarshal(body, &apps); err != nil {
		return nil, service.NewRegistryBadResponseError("registry response is not an application list", err)
	}

	out := make(domain.RegistryListing, 0, len(apps))
	for _, app := range apps {
		if app.ID == "" {
			continue
		}
		out = append(out, domain.RegistrationEntry{ID: app.ID, URL: app.URL})
	}
	return out, nil
}

// RegisterApplication performs POST {registryURL}/api/applications with body {"id","url"} and
// Content-Type: application/json. The response body is drained and ignored.
//
// Returns: nil on 2xx; bad_parameter when entry does not match Application or has no url;
// registry_unavailable on network error or deadline; registry_bad_response on any other status;
// invalid_property when registryURL cannot form a request.
func (r *registryHTTP) RegisterApplication(ctx context.Context, registryURL string, entry domain.RegistrationEntry) error {
	if entry.URL == "" {
		return service.NewBadParameterError("registration entry url is required", nil)
	}
	if err := r.schemas.application.VisitJSON(map[string]any{"id": entry.ID, "url": entry.URL}); err != nil {
		return service.NewBadParameterError("registration entry does not match Application", err)
	}
	payload, err := json.Marshal(application{ID: entry.ID, URL: entry.URL})
	if err != nil {
		return service.NewBadParameterError("registration entry marshal failed", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, applicationsURL(registryURL), bytes.NewReader(payload))
	if err != nil {
		return service.NewInvalidPropertyError(domain.PropertyRegistryURL, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return service.NewRegistryUnavailableError("registry request failed", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return service.NewRegistryBadResponseError(fmt.Sprintf("registry register returned %d", resp.StatusCode), nil)
	}
	return nil
}

// applicationsURL joins the registry base URL and /api/applications without doubling the slash.
func applicationsURL(registryURL string) string {
	return strings.TrimSuffix(registryURL, "/") + domain.ApplicationsPath
}
