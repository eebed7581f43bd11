package model

import (
	"strings"

	"github.com/goliatone/go-formbind/pkg/validation"
)

// Field is one named slot of a Model.
type Field struct {
	Key       Key
	Label     string
	Value     Value
	Validator FieldValidator
	// Metadata carries free-form presentation hints (help text, widget names)
	// that the model itself never interprets.
	Metadata map[string]string
}

// DisplayLabel returns Label, or a label derived from the key when empty.
func (f Field) DisplayLabel() string {
	if label := strings.TrimSpace(f.Label); label != "" {
		return label
	}
	return DefaultLabeler(string(f.Key))
}

// Kind reports the kind of the field's value.
func (f Field) Kind() FieldKind {
	if f.Value == nil {
		return ""
	}
	return f.Value.Kind()
}

func (f Field) clone() Field {
	if sel, ok := f.Value.(Selection); ok {
		f.Value = sel.clone()
	}
	if f.Metadata != nil {
		meta := make(map[string]string, len(f.Metadata))
		for k, v := range f.Metadata {
			meta[k] = v
		}
		f.Metadata = meta
	}
	return f
}

// FieldValidator validates the value of one field kind.
type FieldValidator interface {
	Kind() FieldKind
	Validate(Value) validation.Result
}

// TextRule validates text fields. Unset text goes through the validator's
// absent policy.
func TextRule(v validation.Validator[string]) FieldValidator {
	return textRule{v: v}
}

type textRule struct {
	v validation.Validator[string]
}

func (textRule) Kind() FieldKind { return FieldKindText }

func (r textRule) Validate(value Value) validation.Result {
	text, ok := value.(Text)
	if !ok {
		return validation.NotValid(ErrWrongType.Error())
	}
	raw, set := text.Text()
	return validation.Check(r.v, raw, set)
}

// SelectionRule validates selection fields by index. A missing choice goes
// through the validator's absent policy.
func SelectionRule(v validation.Validator[int]) FieldValidator {
	return selectionRule{v: v}
}

type selectionRule struct {
	v validation.Validator[int]
}

func (selectionRule) Kind() FieldKind { return FieldKindSelection }

func (r selectionRule) Validate(value Value) validation.Result {
	sel, ok := value.(Selection)
	if !ok {
		return validation.NotValid(ErrWrongType.Error())
	}
	idx, set := sel.Selected()
	return validation.Check(r.v, idx, set)
}
