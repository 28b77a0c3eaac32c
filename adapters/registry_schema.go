package adapters

import (
	"context"
	"fmt"

	"myregistrar/api"

	"github.com/getkin/kin-openapi/openapi3"
)

// registrySchemas are the payload schemas of the registry application API.
type registrySchemas struct {
	application     *openapi3.Schema
	applicationList *openapi3.Schema
}

// loadRegistrySchemas parses and validates an OpenAPI document and picks the Application and ApplicationList
// component schemas.
func loadRegistrySchemas(data []byte) (*registrySchemas, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("load registry openapi: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate registry openapi: %w", err)
	}
	app, err := componentSchema(doc, "Application")
	if err != nil {
		return nil, err
	}
	list, err := componentSchema(doc, "ApplicationList")
	if err != nil {
		return nil, err
	}
	return &registrySchemas{application: app, applicationList: list}, nil
}

func componentSchema(doc *openapi3.T, name string) (*openapi3.Schema, error) {
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("registry openapi: schema %s is not defined", name)
	}
	return ref.Value, nil
}

// mustLoadRegistrySchemas loads the embedded api/registry.openapi.yaml. The document is compiled in, so a failure
// is a build defect and panics.
func mustLoadRegistrySchemas() *registrySchemas {
	schemas, err := loadRegistrySchemas(api.RegistryOpenAPI)
	if err != nil {
		panic("adapters.registry_schema.go: " + err.Error())
	}
	return schemas
}
