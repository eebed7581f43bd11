// Package orchestrator wires form sources (the built-in profile form, form
// documents, OpenAPI schemas) to models, applies caller values and renders the
// resulting view-model through a named renderer.
package orchestrator
