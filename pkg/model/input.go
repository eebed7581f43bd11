package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Input is the closed set of values callers may store in a field.
type Input interface {
	Kind() FieldKind
	isInput()
}

// TextInput sets the text of a text field.
type TextInput string

// Kind implements Input.
func (TextInput) Kind() FieldKind { return FieldKindText }

func (TextInput) isInput() {}

// IndexInput selects an option of a selection field. NoSelection clears the
// choice.
type IndexInput int

// Kind implements Input.
func (IndexInput) Kind() FieldKind { return FieldKindSelection }

func (IndexInput) isInput() {}

// ParseInput converts raw text (flags, config files, prompts) into the Input
// shape the field expects. Selection fields accept an option label (case
// insensitive) or a numeric index; an empty string clears the selection.
func ParseInput(field Field, raw string) (Input, error) {
	switch value := field.Value.(type) {
	case Text:
		return TextInput(raw), nil
	case Selection:
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			return IndexInput(NoSelection), nil
		}
		for idx, option := range value.Options {
			if strings.EqualFold(option, trimmed) {
				return IndexInput(idx), nil
			}
		}
		idx, err := strconv.Atoi(trimmed)
		if err != nil || idx < 0 || idx >= len(value.Options) {
			return nil, fmt.Errorf("%w: %q is not an option of %q", ErrWrongType, raw, field.Key)
		}
		return IndexInput(idx), nil
	default:
		return nil, fmt.Errorf("%w: field %q has no value", ErrWrongType, field.Key)
	}
}
