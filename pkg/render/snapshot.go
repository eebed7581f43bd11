package render

import (
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// Document is a flat, serialisable copy of a view-model shared by the text
// and JSON renderers.
type Document struct {
	Valid   bool          `json:"valid"`
	Rows    []RowDocument `json:"rows"`
	Reasons []string      `json:"reasons,omitempty"`
}

// RowDocument flattens one row. Fields that do not apply to the row kind are
// left empty.
type RowDocument struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Label       string            `json:"label"`
	Placeholder string            `json:"placeholder,omitempty"`
	Text        string            `json:"text,omitempty"`
	Input       string            `json:"input,omitempty"`
	Keyboard    string            `json:"keyboard,omitempty"`
	Options     []string          `json:"options,omitempty"`
	Selected    *int              `json:"selected,omitempty"`
	Choice      string            `json:"choice,omitempty"`
	Valid       bool              `json:"valid"`
	Reasons     []string          `json:"reasons,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Snapshot flattens vm into a Document. The document shares no storage with
// vm.
func Snapshot(vm viewmodel.ViewModel) Document {
	doc := Document{
		Valid:   vm.Valid(),
		Rows:    make([]RowDocument, 0, vm.Len()),
		Reasons: vm.Reasons(),
	}
	for _, row := range vm.Rows() {
		result := row.Validation()
		out := RowDocument{
			ID:       string(row.ID),
			Label:    row.Label(),
			Valid:    result.IsValid(),
			Reasons:  result.Reasons(),
			Metadata: row.Metadata,
		}
		switch content := row.Content.(type) {
		case viewmodel.TextRow:
			out.Kind = string(model.FieldKindText)
			out.Placeholder = content.Placeholder
			out.Text = content.Text
			out.Input = string(content.Input)
			out.Keyboard = string(content.Keyboard)
		case viewmodel.SelectionRow:
			out.Kind = string(model.FieldKindSelection)
			out.Placeholder = content.Placeholder
			out.Options = append([]string(nil), content.Options...)
			if choice, ok := content.Choice(); ok {
				selected := content.Selected
				out.Selected = &selected
				out.Choice = choice
			}
		}
		doc.Rows = append(doc.Rows, out)
	}
	return doc
}
