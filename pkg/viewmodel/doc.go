// Package viewmodel projects a model.Model into an ordered, immutable list of
// presentation rows. Each row carries the field key as identifier and a
// content variant matching the field kind: TextRow for free text (with a
// keyboard hint and the latest validation result) and SelectionRow for option
// lists. Validation is recomputed on every Generate call unless the generator
// was built WithoutValidation.
package viewmodel
