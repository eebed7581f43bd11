package uischema

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/validation"
)

// ErrInvalidRule reports a rule block that cannot be compiled for its field.
var ErrInvalidRule = errors.New("uischema: invalid rule")

// BuildOption customises Form.Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	decorators []model.Decorator
	labeler    func(string) string
}

// WithDecorators applies extra decorators to every field declaration before
// the model is assembled.
func WithDecorators(decorators ...model.Decorator) BuildOption {
	return func(cfg *buildConfig) {
		cfg.decorators = append(cfg.decorators, decorators...)
	}
}

// WithLabeler overrides how missing labels are derived from keys.
func WithLabeler(labeler func(string) string) BuildOption {
	return func(cfg *buildConfig) {
		if labeler != nil {
			cfg.labeler = labeler
		}
	}
}

// Build compiles the form into a model. Field defaults are applied through
// the model so they go through the same shape checks as caller input.
func (f Form) Build(options ...BuildOption) (*model.Model, error) {
	cfg := buildConfig{labeler: model.DefaultLabeler}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	fields := make([]model.Field, 0, len(f.Fields))
	for _, fc := range f.Fields {
		field, err := compileField(fc)
		if err != nil {
			return nil, fmt.Errorf("uischema: form %q: %w", f.ID, err)
		}
		fields = append(fields, field)
	}

	decorators := append([]model.Decorator{model.LabelDecorator(cfg.labeler)}, cfg.decorators...)
	if err := model.Decorate(fields, decorators...); err != nil {
		return nil, fmt.Errorf("uischema: form %q: %w", f.ID, err)
	}

	m, err := model.New(fields...)
	if err != nil {
		return nil, fmt.Errorf("uischema: form %q: %w", f.ID, err)
	}

	for _, fc := range f.Fields {
		if fc.Default == nil {
			continue
		}
		field, _ := m.Field(model.Key(fc.Key))
		in, err := model.ParseInput(field, *fc.Default)
		if err != nil {
			return nil, fmt.Errorf("uischema: form %q default for %q: %w", f.ID, fc.Key, err)
		}
		if err := m.SetValue(field.Key, in); err != nil {
			return nil, fmt.Errorf("uischema: form %q default for %q: %w", f.ID, fc.Key, err)
		}
	}
	return m, nil
}

// BuildForm looks up id in the store and builds it.
func (s *Store) BuildForm(id string, options ...BuildOption) (*model.Model, error) {
	form, ok := s.Form(id)
	if !ok {
		return nil, fmt.Errorf("uischema: form %q not found", id)
	}
	return form.Build(options...)
}

func compileField(fc FieldConfig) (model.Field, error) {
	field := model.Field{
		Key:      model.Key(fc.Key),
		Label:    fc.Label,
		Metadata: cloneStrings(fc.Metadata),
	}
	if fc.HelpText != "" {
		if field.Metadata == nil {
			field.Metadata = make(map[string]string, 1)
		}
		field.Metadata["helpText"] = fc.HelpText
	}

	switch fc.Kind {
	case KindSelection:
		field.Value = model.NewSelection(fc.Placeholder, fc.Options...)
		validator, err := selectionValidator(fc)
		if err != nil {
			return model.Field{}, err
		}
		if validator != nil {
			field.Validator = model.SelectionRule(validator)
		}
	default:
		input := model.InputKind(fc.Input)
		if !input.Valid() {
			return model.Field{}, fmt.Errorf("%w: field %q has unknown input %q", ErrInvalidRule, fc.Key, fc.Input)
		}
		field.Value = model.NewText(input, fc.Placeholder)
		validator, err := textValidator(fc, input)
		if err != nil {
			return model.Field{}, err
		}
		if validator != nil {
			field.Validator = model.TextRule(validator)
		}
	}
	return field, nil
}

func selectionValidator(fc FieldConfig) (validation.Validator[int], error) {
	rules := fc.Rules
	if rules.MinLength != nil || rules.MaxLength != nil || rules.Min != nil || rules.Max != nil || strings.TrimSpace(rules.Pattern) != "" {
		return nil, fmt.Errorf("%w: field %q: selection fields only accept required", ErrInvalidRule, fc.Key)
	}
	if !rules.Required {
		return nil, nil
	}
	return validation.Required[int](nil), nil
}

func textValidator(fc FieldConfig, input model.InputKind) (validation.Validator[string], error) {
	rules := fc.Rules
	if rules.Empty() && input == model.InputKindString {
		return nil, nil
	}

	var members []validation.Validator[string]
	if rules.Required {
		members = append(members, validation.NotBlank())
	}
	if rules.MinLength != nil || rules.MaxLength != nil {
		lo, hi := 0, math.MaxInt
		if rules.MinLength != nil {
			lo = *rules.MinLength
		}
		if rules.MaxLength != nil {
			hi = *rules.MaxLength
		}
		if lo < 0 || hi < lo {
			return nil, fmt.Errorf("%w: field %q: length bounds [%d, %d]", ErrInvalidRule, fc.Key, lo, hi)
		}
		members = append(members, validation.LengthRange(lo, hi))
	}
	if pattern := strings.TrimSpace(rules.Pattern); pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %v", ErrInvalidRule, fc.Key, err)
		}
		members = append(members, validation.Pattern(re))
	}

	switch input {
	case model.InputKindInteger:
		lo, hi := math.MinInt, math.MaxInt
		if rules.Min != nil {
			lo = int(math.Ceil(*rules.Min))
		}
		if rules.Max != nil {
			hi = int(math.Floor(*rules.Max))
		}
		if hi < lo {
			return nil, fmt.Errorf("%w: field %q: range [%d, %d]", ErrInvalidRule, fc.Key, lo, hi)
		}
		members = append(members, numeric(validation.ParseInt(validation.IntRange(lo, hi)), rules.Required))
	case model.InputKindFloating:
		lo, hi := math.Inf(-1), math.Inf(1)
		if rules.Min != nil {
			lo = *rules.Min
		}
		if rules.Max != nil {
			hi = *rules.Max
		}
		if hi < lo {
			return nil, fmt.Errorf("%w: field %q: range [%g, %g]", ErrInvalidRule, fc.Key, lo, hi)
		}
		members = append(members, numeric(validation.ParseFloat(validation.FloatRange(lo, hi)), rules.Required))
	default:
		if rules.Min != nil || rules.Max != nil {
			return nil, fmt.Errorf("%w: field %q: min/max require a numeric input", ErrInvalidRule, fc.Key)
		}
	}

	if len(members) == 1 {
		return members[0], nil
	}
	return validation.All(members...), nil
}

// numeric lets optional number fields be cleared: blank text counts as no
// value. Required fields keep rejecting it through NotBlank.
func numeric(v validation.Validator[string], required bool) validation.Validator[string] {
	if required {
		return v
	}
	return validation.SkipBlank(v)
}
