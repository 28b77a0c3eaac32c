package interfaces

// PropertySource exposes named configuration properties (e.g. "server.port").
//
//go:generate moq -stub -out mock/property_source.go -pkg mock . PropertySource
type PropertySource interface {
	// Get returns the raw value of key and whether it is set.
	Get(key string) (string, bool)
}
