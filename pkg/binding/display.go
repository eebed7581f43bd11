package binding

import (
	"context"

	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Display receives freshly generated view-models.
type Display interface {
	Display(ctx context.Context, vm viewmodel.ViewModel) error
}

// DisplayFunc adapts a function into a Display.
type DisplayFunc func(ctx context.Context, vm viewmodel.ViewModel) error

// Display calls the underlying function.
func (fn DisplayFunc) Display(ctx context.Context, vm viewmodel.ViewModel) error {
	return fn(ctx, vm)
}
