// Package api holds the OpenAPI descriptions used by myregistrar: the registry endpoints it calls and the
// host endpoints it serves.
package api

import _ "embed"

// RegistryOpenAPI is the raw registry.openapi.yaml document.
//
//go:embed registry.openapi.yaml
var RegistryOpenAPI []byte

// HostOpenAPI is the raw host.openapi.yaml document.
//
//go:embed host.openapi.yaml
var HostOpenAPI []byte
