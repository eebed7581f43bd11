package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Renderer prints a compact status listing suited to an interactive terminal:
// one line per row with a validity mark, followed by the row's reasons.
type Renderer struct {
	theme Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a terminal renderer.
func New(options ...Option) *Renderer {
	cfg := newConfig(options)
	return &Renderer{theme: cfg.theme}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the format written by Render.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render writes vm to w.
func (r *Renderer) Render(ctx context.Context, vm viewmodel.ViewModel, w io.Writer) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, row := range vm.Rows() {
		result := row.Validation()
		mark := r.theme.ValidMark
		if !result.IsValid() {
			mark = r.theme.InvalidMark
		}
		if _, err := fmt.Fprintf(w, "%s%s %s: %s\n", r.theme.InfoPrefix, mark, row.Label(), display(row.Content)); err != nil {
			return err
		}
		for _, reason := range result.Reasons() {
			if _, err := fmt.Fprintf(w, "    %s%s\n", r.theme.ErrorPrefix, reason); err != nil {
				return err
			}
		}
	}
	return nil
}

func display(content viewmodel.Content) string {
	switch c := content.(type) {
	case viewmodel.TextRow:
		if c.Text == "" {
			return "<" + c.Placeholder + ">"
		}
		return c.Text
	case viewmodel.SelectionRow:
		if choice, ok := c.Choice(); ok {
			return choice
		}
		return "<" + c.Placeholder + ">"
	default:
		return ""
	}
}
