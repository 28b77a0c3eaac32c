package domain

// Property keys read from the process configuration. Names are kept compatible with Spring Boot Admin clients.
const (
	PropertyRegistryURL = "spring.boot.admin.url"
	PropertyServerPort  = "server.port"
	PropertyID          = "info.id"

	PropertyPeriod       = "spring.boot.admin.period"
	PropertyTimeout      = "spring.boot.admin.timeout"
	PropertyLoggingLevel = "logging.level"
)

// ApplicationsPath is the registry resource used for both listing and registering applications.
const ApplicationsPath = "/api/applications"

// Identity is what this process announces about itself. Built once from configuration.
type Identity struct {
	ID          string // unique application identifier (info.id)
	Port        int    // listening port (server.port)
	RegistryURL string // registry base URL (spring.boot.admin.url)
}

// RegistrationEntry is one {id, url} record exchanged with the registry.
type RegistrationEntry struct {
	ID  string
	URL string
}

// RegistryListing is the snapshot returned by one registry read. Never cached between invocations.
type RegistryListing []RegistrationEntry

// Contains reports whether an entry with the given id is present.
func (l RegistryListing) Contains(id string) bool {
	for _, entry := range l {
		if entry.ID == id {
			return true
		}
	}
	return false
}

// OutcomeStatus describes what one invocation did.
type OutcomeStatus string

const (
	OutcomeAlreadyRegistered OutcomeStatus = "already_registered"
	OutcomeRegistered        OutcomeStatus = "registered"
)

// RegistrationOutcome is the result of a successful invocation. Entry is the one that was found or written.
type RegistrationOutcome struct {
	Status OutcomeStatus
	Entry  RegistrationEntry
}
