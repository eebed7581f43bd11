// Package profile declares the reference person form (name, age, gender) and
// decodes a validated model into a plain Profile value.
package profile

import (
	"fmt"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/validation"
)

const (
	KeyName   model.Key = "name"
	KeyAge    model.Key = "age"
	KeyGender model.Key = "gender"
)

const (
	// DefaultNameMaxLength is the documented upper bound for names.
	DefaultNameMaxLength = 30
	MinAge               = 0
	MaxAge               = 99
)

// GenderOptions lists the selectable genders in index order.
var GenderOptions = []string{"Male", "Female", "Other"}

// Profile is the plain value produced from a fully valid form.
type Profile struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
	// Gender is an index into GenderOptions or model.NoSelection.
	Gender int `json:"gender"`
}

// GenderLabel returns the option label for p.Gender.
func (p Profile) GenderLabel() string {
	if p.Gender < 0 || p.Gender >= len(GenderOptions) {
		return ""
	}
	return GenderOptions[p.Gender]
}

// Option customises the form declaration.
type Option func(*config)

type config struct {
	nameMaxLength int
}

// WithNameMaxLength overrides the maximum name length.
func WithNameMaxLength(n int) Option {
	return func(cfg *config) {
		if n >= 0 {
			cfg.nameMaxLength = n
		}
	}
}

// Fields returns the form declaration in display order.
func Fields(options ...Option) []model.Field {
	cfg := config{nameMaxLength: DefaultNameMaxLength}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	return []model.Field{
		{
			Key:       KeyName,
			Label:     "Name",
			Value:     model.NewText(model.InputKindString, "Name"),
			Validator: model.TextRule(validation.LengthRange(0, cfg.nameMaxLength)),
		},
		{
			Key:   KeyAge,
			Label: "Age",
			Value: model.NewText(model.InputKindInteger, "Age"),
			Validator: model.TextRule(validation.ParseInt(
				validation.Required(validation.IntRange(MinAge, MaxAge)),
			)),
		},
		{
			Key:   KeyGender,
			Label: "Gender",
			Value: model.NewSelection("Select gender", GenderOptions...),
		},
	}
}

// New returns an empty person model.
func New(options ...Option) *model.Model {
	return model.MustNew(Fields(options...)...)
}

// Decode validates m as a whole and converts it into a Profile. When any field
// is not valid it returns a *validation.Error listing every reason.
func Decode(m *model.Model) (Profile, error) {
	if err := m.ValidateAll().Err(); err != nil {
		return Profile{}, err
	}

	out := Profile{Gender: model.NoSelection}
	if in, ok := m.Value(KeyName); ok {
		out.Name = string(in.(model.TextInput))
	}
	in, ok := m.Value(KeyAge)
	if !ok {
		return Profile{}, fmt.Errorf("profile: %q is missing", KeyAge)
	}
	age, err := validation.ToInt(string(in.(model.TextInput)))
	if err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}
	out.Age = age
	if in, ok := m.Value(KeyGender); ok {
		out.Gender = int(in.(model.IndexInput))
	}
	return out, nil
}
