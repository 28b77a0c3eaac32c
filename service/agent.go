package service

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	"myregistrar/domain"
	"myregistrar/helpers"
	"myregistrar/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// RegistrationAgent announces this process to the registry. Each Run is a stateless check-then-register cycle:
// the registry listing is re-fetched every time and nothing is remembered between invocations.
type RegistrationAgent struct {
	properties interfaces.PropertySource
	registry   interfaces.Registry
	resolver   interfaces.HostnameResolver
	logger     log.Logger
}

var _ interfaces.Task = (*RegistrationAgent)(nil)

// NewRegistrationAgent creates an agent. Panics on nil properties, registry, resolver or logger.
// Properties are re-read on every invocation.
func NewRegistrationAgent(
	properties interfaces.PropertySource,
	registry interfaces.Registry,
	resolver interfaces.HostnameResolver,
	logger log.Logger,
) *RegistrationAgent {
	return &RegistrationAgent{
		properties: helpers.NilPanic(properties, "service.agent.go: properties is required"),
		registry:   helpers.NilPanic(registry, "service.agent.go: registry is required"),
		resolver:   helpers.NilPanic(resolver, "service.agent.go: resolver is required"),
		logger:     log.With(helpers.NilPanic(logger, "service.agent.go: logger is required"), "component", "registration_agent"),
	}
}

// Check validates that the identity can be built from configuration. It must be called once before the agent
// is handed to a scheduler; a non-nil error means the agent must never be scheduled.
//
// Returns: nil when all required properties are present and valid; missing_property naming the first absent
// property (order: spring.boot.admin.url, server.port, info.id); invalid_property for a bad server.port.
func (a *RegistrationAgent) Check() error {
	_, err := LoadIdentity(a.properties)
	return err
}

// Run performs one invocation and logs its outcome. It never returns an error and never panics on registry
// failures, so a scheduler can call it indefinitely.
func (a *RegistrationAgent) Run(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			level.Warn(a.logger).Log("msg", "Failed to register application at the registry", "err", fmt.Sprintf("panic: %v", r))
		}
	}()
	outcome, err := a.Register(ctx)
	if err != nil {
		level.Warn(a.logger).Log("msg", "Failed to register application at the registry", "err", err)
		return
	}
	switch outcome.Status {
	case domain.OutcomeAlreadyRegistered:
		level.Debug(a.logger).Log("msg", "Application already registered", "id", outcome.Entry.ID)
	case domain.OutcomeRegistered:
		level.Info(a.logger).Log("msg", "Application registered itself at the registry", "id", outcome.Entry.ID, "url", outcome.Entry.URL)
	}
}

// Register performs one check-then-register cycle and reports what it did.
//
// Steps: read identity; list registered applications; if an entry with our id exists return
// OutcomeAlreadyRegistered without writing; otherwise resolve the canonical hostname, build
// http://<host>:<port> and register it.
//
// Returns: (outcome, nil) on success; (zero outcome, error) on any failure. No step is retried.
func (a *RegistrationAgent) Register(ctx context.Context) (domain.RegistrationOutcome, error) {
	identity, err := LoadIdentity(a.properties)
	if err != nil {
		return domain.RegistrationOutcome{}, err
	}

	listing, err := a.registry.ListApplications(ctx, identity.RegistryURL)
	if err != nil {
		return domain.RegistrationOutcome{}, fmt.Errorf("list applications: %w", err)
	}
	if listing.Contains(identity.ID) {
		return domain.RegistrationOutcome{
			Status: domain.OutcomeAlreadyRegistered,
			Entry:  domain.RegistrationEntry{ID: identity.ID},
		}, nil
	}

	host, err := a.resolver.CanonicalHostname(ctx)
	if err != nil {
		return domain.RegistrationOutcome{}, fmt.Errorf("resolve canonical hostname: %w", err)
	}
	entry := domain.RegistrationEntry{
		ID:  identity.ID,
		URL: InstanceURL(host, identity.Port),
	}
	if err := a.registry.RegisterApplication(ctx, identity.RegistryURL, entry); err != nil {
		return domain.RegistrationOutcome{}, fmt.Errorf("register application: %w", err)
	}

	return domain.RegistrationOutcome{Status: domain.OutcomeRegistered, Entry: entry}, nil
}

// LoadIdentity reads the three required properties. Blank values count as absent.
func LoadIdentity(properties interfaces.PropertySource) (domain.Identity, error) {
	registryURL, err := requiredProperty(properties, domain.PropertyRegistryURL)
	if err != nil {
		return domain.Identity{}, err
	}
	portStr, err := requiredProperty(properties, domain.PropertyServerPort)
	if err != nil {
		return domain.Identity{}, err
	}
	id, err := requiredProperty(properties, domain.PropertyID)
	if err != nil {
		return domain.Identity{}, err
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return domain.Identity{}, NewInvalidPropertyError(domain.PropertyServerPort, err)
	}
	if port <= 0 || port > 65535 {
		return domain.Identity{}, NewInvalidPropertyError(domain.PropertyServerPort, fmt.Errorf("port must be 1-65535, got %d", port))
	}

	return domain.Identity{
		ID:          id,
		Port:        port,
		RegistryURL: registryURL,
	}, nil
}

// InstanceURL builds the reachable address of this instance: scheme http, the given host, the port and no path.
// IPv6 literals are bracketed.
func InstanceURL(host string, port int) string {
	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
	}
	return u.String()
}

func requiredProperty(properties interfaces.PropertySource, key string) (string, error) {
	value, ok := properties.Get(key)
	value = strings.TrimSpace(value)
	if !ok || value == "" {
		return "", NewMissingPropertyError(key)
	}
	return value, nil
}
