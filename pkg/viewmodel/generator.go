package viewmodel

import (
	"log/slog"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/validation"
)

// Option configures a Generator.
type Option func(*Generator)

// WithoutValidation suppresses validation; text rows then carry a valid
// result regardless of their content.
func WithoutValidation() Option {
	return func(g *Generator) {
		g.validate = false
	}
}

// WithValidation toggles validation explicitly.
func WithValidation(enabled bool) Option {
	return func(g *Generator) {
		g.validate = enabled
	}
}

// WithLogger routes generation diagnostics to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// Generator builds view-models from models.
type Generator struct {
	validate bool
	logger   *slog.Logger
}

// NewGenerator returns a generator that validates by default.
func NewGenerator(options ...Option) *Generator {
	g := &Generator{
		validate: true,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	return g
}

// Validates reports whether generated rows carry live validation results.
func (g *Generator) Validates() bool {
	return g != nil && g.validate
}

// Generate walks the model's keys in order and emits one row per field.
func (g *Generator) Generate(m *model.Model) ViewModel {
	if g == nil {
		g = NewGenerator()
	}
	fields := m.Fields()
	rows := make([]Row, 0, len(fields))
	invalid := 0

	for _, field := range fields {
		result := validation.Valid()
		if g.validate {
			result = m.Validate(field.Key)
		}
		if !result.IsValid() {
			invalid++
		}

		row := Row{ID: field.Key, Metadata: field.Metadata}
		switch value := field.Value.(type) {
		case model.Text:
			row.Content = TextRow{
				Label:       field.DisplayLabel(),
				Text:        value.String(),
				Placeholder: value.Placeholder,
				Input:       value.Input,
				Keyboard:    KeyboardFor(value.Input),
				Validation:  result,
			}
		case model.Selection:
			idx, _ := value.Selected()
			row.Content = SelectionRow{
				Label:       field.DisplayLabel(),
				Options:     value.Options,
				Placeholder: value.Placeholder,
				Selected:    idx,
				Validation:  result,
			}
		default:
			continue
		}
		rows = append(rows, row)
	}

	g.logger.Debug("view-model generated",
		slog.Int("rows", len(rows)),
		slog.Int("invalid", invalid),
		slog.Bool("validated", g.validate),
	)
	return ViewModel{rows: rows}
}
