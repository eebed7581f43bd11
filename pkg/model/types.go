package model

// Key identifies a field inside a Model.
type Key string

// FieldKind distinguishes the value shapes a field can hold.
type FieldKind string

const (
	FieldKindText      FieldKind = "text"
	FieldKindSelection FieldKind = "selection"
)

// InputKind tags free text with the kind of content it is expected to hold.
type InputKind string

const (
	InputKindString   InputKind = "string"
	InputKindInteger  InputKind = "integer"
	InputKindFloating InputKind = "floating"
)

// Valid reports whether k is one of the known input kinds.
func (k InputKind) Valid() bool {
	switch k {
	case InputKindString, InputKindInteger, InputKindFloating:
		return true
	default:
		return false
	}
}

// NoSelection marks a selection field without a chosen option.
const NoSelection = -1
