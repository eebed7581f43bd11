// Package model defines the form data model: an ordered set of keyed fields,
// each holding a typed value drawn from a closed set of kinds. Text fields
// store free text tagged with an input kind (string/integer/floating) so
// presenters can pick an appropriate keyboard and validators can parse the
// text; selection fields store an optional index into a fixed option list.
//
// Callers mutate a Model through SetValue using the Input union (TextInput or
// IndexInput). The shape is checked once at that boundary: a mismatch returns
// ErrWrongType and leaves the field untouched. Validation never raises errors;
// Validate and ValidateAll return validation.Result values that callers
// inspect or convert into an aggregate error when a fully valid model is
// required.
package model
