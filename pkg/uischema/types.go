package uischema

import "strings"

// Rule identifiers accepted in field rule blocks.
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMin       = "min"
	RuleMax       = "max"
	RulePattern   = "pattern"
)

// Field kinds accepted in documents.
const (
	KindText      = "text"
	KindSelection = "selection"
)

// Store keeps the parsed forms of one or more documents. It is safe for
// concurrent readers when treated as immutable after construction.
type Store struct {
	forms map[string]Form
}

// Form describes one form declaration.
type Form struct {
	ID       string            `json:"-" yaml:"-"`
	Source   string            `json:"-" yaml:"-"`
	Title    string            `json:"title" yaml:"title"`
	Fields   []FieldConfig     `json:"fields" yaml:"fields"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// FieldConfig declares a single field.
type FieldConfig struct {
	Key         string            `json:"key" yaml:"key"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Kind        string            `json:"kind,omitempty" yaml:"kind,omitempty"`
	Input       string            `json:"input,omitempty" yaml:"input,omitempty"`
	Placeholder string            `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Options     []string          `json:"options,omitempty" yaml:"options,omitempty"`
	Default     *string           `json:"default,omitempty" yaml:"default,omitempty"`
	Rules       RuleConfig        `json:"rules,omitempty" yaml:"rules,omitempty"`
	HelpText    string            `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// RuleConfig lists the constraints compiled into a field validator. Bounds
// are pointers so an explicit zero differs from an omitted bound.
type RuleConfig struct {
	Required  bool     `json:"required,omitempty" yaml:"required,omitempty"`
	MinLength *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Min       *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern   string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
}

// Empty reports whether no constraint is configured.
func (r RuleConfig) Empty() bool {
	return !r.Required && r.MinLength == nil && r.MaxLength == nil &&
		r.Min == nil && r.Max == nil && strings.TrimSpace(r.Pattern) == ""
}

// Form returns the form registered under id.
func (s *Store) Form(id string) (Form, bool) {
	if s == nil {
		return Form{}, false
	}
	form, ok := s.forms[id]
	return form, ok
}

// IDs lists the stored form ids in lexical order.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sortStrings(ids)
	return ids
}

// Empty reports whether the store holds any forms.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}
