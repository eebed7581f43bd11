package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/openapi"
	"github.com/goliatone/go-formbind/pkg/profile"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/renderers/jsonview"
	"github.com/goliatone/go-formbind/pkg/renderers/text"
	"github.com/goliatone/go-formbind/pkg/renderers/tui"
	"github.com/goliatone/go-formbind/pkg/uischema"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

const defaultRendererName = "text"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithUISchemaFS supplies an fs.FS holding form documents. Requests that name
// a FormID without their own documents are resolved against it.
func WithUISchemaFS(fsys fs.FS) Option {
	return func(o *Orchestrator) {
		o.uiSchemaFS = fsys
	}
}

// WithDecorators registers decorators applied to document-built forms.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(o *Orchestrator) {
		o.decorators = append(o.decorators, decorators...)
	}
}

// WithProfileOptions customises the built-in profile form.
func WithProfileOptions(options ...profile.Option) Option {
	return func(o *Orchestrator) {
		o.profileOptions = append(o.profileOptions, options...)
	}
}

// WithLogger routes pipeline diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the pipeline from form source to rendered output.
// It applies defaults (text, json and tui renderers, embedded form documents)
// while remaining open to dependency injection.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	uiSchemaFS      fs.FS
	decorators      []model.Decorator
	profileOptions  []profile.Option
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Source selects where the form declaration comes from. OpenAPI wins over
// Document, which wins over Documents; with none of them FormID is looked up
// in the orchestrator's form documents. An empty FormID, or
// uischema.DefaultFormID, selects the built-in profile form.
type Source struct {
	// Document is a single raw form document (JSON or YAML).
	Document []byte
	// Documents holds form documents (JSON or YAML).
	Documents fs.FS
	// FormID selects a form inside Documents or the configured form documents.
	FormID string
	// OpenAPI is a raw OpenAPI 3 document; Schema names the component.
	OpenAPI []byte
	Schema  string
}

// Assignment is one caller-provided value in loose text form.
type Assignment struct {
	Key   model.Key
	Value string
}

// Request describes a render run.
type Request struct {
	Source Source
	// Values are applied in order before rendering.
	Values []Assignment
	// Renderer names the renderer to use; empty selects the default.
	Renderer string
	// NoValidate suppresses validation in the rendered rows.
	NoValidate bool
	// Subset restricts rendered rows.
	Subset render.FieldSubset
}

// Model builds a fresh model from src.
func (o *Orchestrator) Model(ctx context.Context, src Source) (*model.Model, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case len(src.OpenAPI) > 0:
		if src.Schema == "" {
			return nil, errors.New("orchestrator: openapi source requires a schema name")
		}
		form, err := openapi.FormFromSchema(ctx, src.OpenAPI, src.Schema)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		o.logger.Debug("form loaded", slog.String("source", "openapi"), slog.String("schema", src.Schema))
		return form.Build(uischema.WithDecorators(o.decorators...))

	case src.IsProfile():
		return profile.New(o.profileOptions...), nil

	default:
		store, err := o.loadStore(src)
		if err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
		id := strings.TrimSpace(src.FormID)
		if id == "" {
			ids := store.IDs()
			if len(ids) != 1 {
				return nil, fmt.Errorf("orchestrator: form id is required, documents define %v", ids)
			}
			id = ids[0]
		}
		o.logger.Debug("form loaded", slog.String("source", "uischema"), slog.String("form", id))
		return store.BuildForm(id, uischema.WithDecorators(o.decorators...))
	}
}

// IsProfile reports whether src resolves to the built-in profile form. The
// bundled "person" document describes the same form, so naming it without
// documents of its own also selects the profile.
func (src Source) IsProfile() bool {
	if len(src.OpenAPI) > 0 || len(src.Document) > 0 || src.Documents != nil {
		return false
	}
	id := strings.TrimSpace(src.FormID)
	return id == "" || id == uischema.DefaultFormID
}

func (o *Orchestrator) loadStore(src Source) (*uischema.Store, error) {
	if len(src.Document) > 0 {
		return uischema.Parse(src.Document, "document")
	}
	fsys := src.Documents
	if fsys == nil {
		fsys = o.uiSchemaFS
	}
	return uischema.LoadFS(fsys)
}

// Apply sets every assignment on m in order. Values are parsed according to
// the target field's kind.
func Apply(m *model.Model, values []Assignment) error {
	for _, assignment := range values {
		field, ok := m.Field(assignment.Key)
		if !ok {
			return fmt.Errorf("orchestrator: %w: %q", model.ErrUnknownKey, assignment.Key)
		}
		in, err := model.ParseInput(field, assignment.Value)
		if err != nil {
			return fmt.Errorf("orchestrator: set %q: %w", assignment.Key, err)
		}
		if err := m.SetValue(assignment.Key, in); err != nil {
			return fmt.Errorf("orchestrator: set %q: %w", assignment.Key, err)
		}
	}
	return nil
}

// Bind wires m to a presenter that renders every change into out using the
// named renderer.
func (o *Orchestrator) Bind(m *model.Model, req Request, out io.Writer) (*binding.Interactor, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	generator := viewmodel.NewGenerator(
		viewmodel.WithValidation(!req.NoValidate),
		viewmodel.WithLogger(o.logger),
	)
	writer := render.NewWriter(renderer, out, render.WithSubset(req.Subset))
	presenter := binding.NewPresenter(generator, writer)

	return binding.NewInteractor(m,
		binding.WithLogger(o.logger),
		binding.WithObserver(presenter),
	)
}

// Generate builds the model, applies the request values and returns a single
// rendering of the result.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	m, err := o.Model(ctx, req.Source)
	if err != nil {
		return nil, err
	}
	if err := Apply(m, req.Values); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	interactor, err := o.Bind(m, req, &buf)
	if err != nil {
		return nil, err
	}
	if err := interactor.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return buf.Bytes(), nil
}

// Renderers lists the registered renderer names.
func (o *Orchestrator) Renderers() []string {
	if o.registry == nil {
		return nil
	}
	return o.registry.List()
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}
	renderer, err := o.registry.Resolve(name, o.defaultRenderer)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.uiSchemaFS == nil {
		o.uiSchemaFS = uischema.EmbeddedFS()
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
	if o.registry != nil {
		return
	}

	textRenderer, err := text.New()
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		return
	}
	o.registry, err = render.NewRegistry(textRenderer, jsonview.New(jsonview.WithIndent("  ")), tui.New())
	if err != nil {
		o.initialiseErr = fmt.Errorf("orchestrator: default renderers: %w", err)
	}
}
