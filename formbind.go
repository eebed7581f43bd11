// Package formbind is the top-level entry point: it re-exports the core types
// and offers shortcuts for the common bind and render flows.
package formbind

import (
	"context"

	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/orchestrator"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/validation"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Key identifies a field.
type Key = model.Key

// Model is the keyed, ordered collection of field values.
type Model = model.Model

// Result is a validation outcome.
type Result = validation.Result

// ViewModel is an ordered snapshot of presentation rows.
type ViewModel = viewmodel.ViewModel

// Source selects a form declaration for the orchestrator.
type Source = orchestrator.Source

// Assignment is one loose key=value input.
type Assignment = orchestrator.Assignment

// FieldSubset restricts rendered rows.
type FieldSubset = render.FieldSubset

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Bind wires m to display through a validating presenter and returns the
// interactor owning m.
func Bind(m *model.Model, display binding.Display, options ...viewmodel.Option) (*binding.Interactor, error) {
	presenter := binding.NewPresenter(viewmodel.NewGenerator(options...), display)
	return binding.NewInteractor(m, binding.WithObserver(presenter))
}

// Generate builds the form described by src, applies values and renders it
// with the named renderer ("" selects the default text renderer).
func Generate(ctx context.Context, src Source, values []Assignment, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	return orchestrator.New(options...).Generate(ctx, orchestrator.Request{
		Source:   src,
		Values:   values,
		Renderer: rendererName,
	})
}
