package render

import (
	"context"
	"io"

	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Renderer writes a view-model to w in its own format (text, JSON, terminal).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, vm viewmodel.ViewModel, w io.Writer) error
}
