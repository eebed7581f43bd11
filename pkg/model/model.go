package model

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-formbind/pkg/validation"
)

// Model is an ordered, keyed collection of fields. Every key in the ordering
// has exactly one field. Models are not safe for concurrent mutation.
type Model struct {
	order  []Key
	fields map[Key]*Field
}

// New builds a model from field declarations, preserving their order. Keys
// must be unique and non-empty, every field needs a value, and a validator's
// kind must match the value's kind.
func New(fields ...Field) (*Model, error) {
	m := &Model{
		order:  make([]Key, 0, len(fields)),
		fields: make(map[Key]*Field, len(fields)),
	}
	for idx, field := range fields {
		key := Key(strings.TrimSpace(string(field.Key)))
		if key == "" {
			return nil, fmt.Errorf("%w: field %d has an empty key", ErrInvalidField, idx)
		}
		if _, exists := m.fields[key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidField, key)
		}
		if field.Value == nil {
			return nil, fmt.Errorf("%w: field %q has no value", ErrInvalidField, key)
		}
		if field.Validator != nil && field.Validator.Kind() != field.Value.Kind() {
			return nil, fmt.Errorf("%w: field %q holds %s but its validator expects %s", ErrWrongType, key, field.Value.Kind(), field.Validator.Kind())
		}
		copied := field.clone()
		copied.Key = key
		m.order = append(m.order, key)
		m.fields[key] = &copied
	}
	return m, nil
}

// MustNew is New that panics on error. Useful for package-level form
// declarations.
func MustNew(fields ...Field) *Model {
	m, err := New(fields...)
	if err != nil {
		panic(err)
	}
	return m
}

// Keys returns the keys in declaration order.
func (m *Model) Keys() []Key {
	if m == nil {
		return nil
	}
	return append([]Key(nil), m.order...)
}

// Len reports the number of fields.
func (m *Model) Len() int {
	if m == nil {
		return 0
	}
	return len(m.order)
}

// Field returns a copy of the field stored under key.
func (m *Model) Field(key Key) (Field, bool) {
	if m == nil {
		return Field{}, false
	}
	field, ok := m.fields[key]
	if !ok {
		return Field{}, false
	}
	return field.clone(), true
}

// Fields returns copies of every field in declaration order.
func (m *Model) Fields() []Field {
	if m == nil {
		return nil
	}
	out := make([]Field, 0, len(m.order))
	for _, key := range m.order {
		out = append(out, m.fields[key].clone())
	}
	return out
}

// Value returns the stored input for key. It reports false for unknown keys,
// unset text and selections without a choice.
func (m *Model) Value(key Key) (Input, bool) {
	if m == nil {
		return nil, false
	}
	field, ok := m.fields[key]
	if !ok {
		return nil, false
	}
	switch value := field.Value.(type) {
	case Text:
		if text, set := value.Text(); set {
			return TextInput(text), true
		}
	case Selection:
		if idx, set := value.Selected(); set {
			return IndexInput(idx), true
		}
	}
	return nil, false
}

// SetValue stores in under key. The input's shape must match the field kind
// and selection indices must address an option (or be NoSelection). On error
// the field is left untouched.
func (m *Model) SetValue(key Key, in Input) error {
	field, err := m.lookup(key)
	if err != nil {
		return err
	}
	value, err := candidate(field, in)
	if err != nil {
		return err
	}
	field.Value = value
	return nil
}

// Check validates in as if it were stored under key, without storing it.
// Shape errors are returned like SetValue returns them.
func (m *Model) Check(key Key, in Input) (validation.Result, error) {
	field, err := m.lookup(key)
	if err != nil {
		return validation.Result{}, err
	}
	value, err := candidate(field, in)
	if err != nil {
		return validation.Result{}, err
	}
	if field.Validator == nil {
		return validation.Valid(), nil
	}
	return field.Validator.Validate(value), nil
}

func (m *Model) lookup(key Key) (*Field, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	field, ok := m.fields[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return field, nil
}

func candidate(field *Field, in Input) (Value, error) {
	key := field.Key
	switch value := field.Value.(type) {
	case Text:
		text, ok := in.(TextInput)
		if !ok {
			return nil, wrongType(key, FieldKindText, in)
		}
		return value.with(string(text)), nil
	case Selection:
		idx, ok := in.(IndexInput)
		if !ok {
			return nil, wrongType(key, FieldKindSelection, in)
		}
		if int(idx) != NoSelection && (idx < 0 || int(idx) >= len(value.Options)) {
			return nil, fmt.Errorf("%w: %q has %d options, got index %d", ErrWrongType, key, len(value.Options), idx)
		}
		return value.with(int(idx)), nil
	default:
		return nil, fmt.Errorf("%w: field %q has no value", ErrWrongType, key)
	}
}

// Validate runs the validator of a single field. Fields without a validator
// are valid.
func (m *Model) Validate(key Key) validation.Result {
	if m == nil {
		return validation.NotValid(fmt.Sprintf("unknown field %q", key))
	}
	field, ok := m.fields[key]
	if !ok {
		return validation.NotValid(fmt.Sprintf("unknown field %q", key))
	}
	if field.Validator == nil {
		return validation.Valid()
	}
	return field.Validator.Validate(field.Value)
}

// ValidateAll folds every field's result in declaration order. Reasons are
// suffixed with the field's display label.
func (m *Model) ValidateAll() validation.Result {
	out := validation.Valid()
	if m == nil {
		return out
	}
	for _, key := range m.order {
		out = out.Combine(m.Validate(key).Suffixed(m.fields[key].DisplayLabel()))
	}
	return out
}

// Reset returns a new model with the same declarations and every value
// cleared.
func (m *Model) Reset() *Model {
	if m == nil {
		return nil
	}
	fresh := &Model{
		order:  append([]Key(nil), m.order...),
		fields: make(map[Key]*Field, len(m.fields)),
	}
	for _, key := range m.order {
		field := m.fields[key].clone()
		switch value := field.Value.(type) {
		case Text:
			field.Value = NewText(value.Input, value.Placeholder)
		case Selection:
			field.Value = NewSelection(value.Placeholder, value.Options...)
		}
		fresh.fields[key] = &field
	}
	return fresh
}

func wrongType(key Key, want FieldKind, in Input) error {
	got := "nil"
	if in != nil {
		got = string(in.Kind())
	}
	return fmt.Errorf("%w: %q expects %s input, got %s", ErrWrongType, key, want, got)
}
