// Package jsonview renders view-models as JSON documents.
package jsonview

import (
	"context"
	"io"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Option configures the renderer.
type Option func(*Renderer)

// WithIndent pretty-prints output using indent per level.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

// Renderer writes render.Document values, one JSON document per line when
// not indented.
type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a JSON renderer.
func New(options ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "json"
}

// ContentType reports the format written by Render.
func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render encodes a snapshot of vm.
func (r *Renderer) Render(ctx context.Context, vm viewmodel.ViewModel, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.indent != "" {
		enc.SetIndent("", r.indent)
	}
	return enc.EncodeContext(ctx, render.Snapshot(vm))
}
