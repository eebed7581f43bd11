package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Presenter turns model changes into view-models for a Display.
type Presenter struct {
	generator *viewmodel.Generator
	display   Display
}

// NewPresenter returns a presenter feeding display. A nil generator falls back
// to a validating one.
func NewPresenter(generator *viewmodel.Generator, display Display) *Presenter {
	if generator == nil {
		generator = viewmodel.NewGenerator()
	}
	return &Presenter{generator: generator, display: display}
}

// Present regenerates the view-model for m and hands it to the display.
func (p *Presenter) Present(ctx context.Context, m *model.Model) error {
	if p == nil || p.display == nil {
		return errors.New("binding: presenter has no display")
	}
	vm := p.generator.Generate(m)
	if err := p.display.Display(ctx, vm); err != nil {
		return fmt.Errorf("binding: display: %w", err)
	}
	return nil
}

// ModelChanged implements Observer.
func (p *Presenter) ModelChanged(ctx context.Context, change Change) error {
	return p.Present(ctx, change.Model)
}
