// Package openapi derives form declarations from OpenAPI 3 schema components.
// Documents are parsed with kin-openapi; the resulting uischema.Form builds a
// model like any form loaded from YAML or JSON.
package openapi
