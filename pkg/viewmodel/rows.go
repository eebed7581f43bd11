package viewmodel

import (
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/validation"
)

// Keyboard hints which on-screen keyboard or input mode suits a text row.
type Keyboard string

const (
	KeyboardDefault Keyboard = "default"
	KeyboardNumber  Keyboard = "number"
	KeyboardDecimal Keyboard = "decimal"
)

// KeyboardFor maps an input kind to its keyboard hint.
func KeyboardFor(kind model.InputKind) Keyboard {
	switch kind {
	case model.InputKindInteger:
		return KeyboardNumber
	case model.InputKindFloating:
		return KeyboardDecimal
	default:
		return KeyboardDefault
	}
}

// Content is the closed set of row payloads. Only TextRow and SelectionRow
// implement it.
type Content interface {
	Kind() model.FieldKind
	isContent()
}

// TextRow presents a free-text field.
type TextRow struct {
	Label       string
	Text        string
	Placeholder string
	Input       model.InputKind
	Keyboard    Keyboard
	Validation  validation.Result
}

// Kind implements Content.
func (TextRow) Kind() model.FieldKind { return model.FieldKindText }

func (TextRow) isContent() {}

// SelectionRow presents a single-choice field.
type SelectionRow struct {
	Label       string
	Options     []string
	Placeholder string
	// Selected is the chosen index or model.NoSelection.
	Selected   int
	Validation validation.Result
}

// Kind implements Content.
func (SelectionRow) Kind() model.FieldKind { return model.FieldKindSelection }

func (SelectionRow) isContent() {}

// Choice returns the selected option label.
func (r SelectionRow) Choice() (string, bool) {
	if r.Selected < 0 || r.Selected >= len(r.Options) {
		return "", false
	}
	return r.Options[r.Selected], true
}

// Row is one unit of presentation output derived from one field.
type Row struct {
	ID      model.Key
	Content Content
	// Metadata mirrors model.Field.Metadata for renderers that honour hints.
	Metadata map[string]string
}

func (r Row) clone() Row {
	if sel, ok := r.Content.(SelectionRow); ok {
		sel.Options = append([]string(nil), sel.Options...)
		r.Content = sel
	}
	if r.Metadata != nil {
		meta := make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			meta[k] = v
		}
		r.Metadata = meta
	}
	return r
}

// Validation returns the result embedded in the row's content.
func (r Row) Validation() validation.Result {
	switch content := r.Content.(type) {
	case TextRow:
		return content.Validation
	case SelectionRow:
		return content.Validation
	default:
		return validation.Valid()
	}
}

// Label returns the row's display label.
func (r Row) Label() string {
	switch content := r.Content.(type) {
	case TextRow:
		return content.Label
	case SelectionRow:
		return content.Label
	default:
		return string(r.ID)
	}
}
