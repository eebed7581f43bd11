package model

import "errors"

var (
	// ErrWrongType is returned when an Input's shape does not match the field
	// it targets.
	ErrWrongType = errors.New("model: wrong value type for field")
	// ErrUnknownKey is returned for keys the model does not declare.
	ErrUnknownKey = errors.New("model: unknown field key")
	// ErrInvalidField is returned by New for malformed field declarations.
	ErrInvalidField = errors.New("model: invalid field declaration")
)
