package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Writer adapts a Renderer into a binding.Display writing every view-model it
// receives to out.
type Writer struct {
	renderer Renderer
	out      io.Writer
	subset   FieldSubset
}

var _ binding.Display = (*Writer)(nil)

// WriterOption customises a Writer.
type WriterOption func(*Writer)

// WithSubset restricts the rows handed to the renderer.
func WithSubset(subset FieldSubset) WriterOption {
	return func(w *Writer) {
		w.subset = subset
	}
}

// NewWriter returns a display that renders into out.
func NewWriter(renderer Renderer, out io.Writer, options ...WriterOption) *Writer {
	w := &Writer{renderer: renderer, out: out}
	for _, opt := range options {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Display implements binding.Display.
func (w *Writer) Display(ctx context.Context, vm viewmodel.ViewModel) error {
	if w == nil || w.renderer == nil || w.out == nil {
		return errors.New("render: writer is not configured")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.renderer.Render(ctx, ApplySubset(vm, w.subset), w.out); err != nil {
		return fmt.Errorf("render: %s: %w", w.renderer.Name(), err)
	}
	return nil
}
