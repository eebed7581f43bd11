package openapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbind/pkg/uischema"
)

// Vendor extensions recognised on schema components and properties.
const (
	OrderExtension       = "x-formbind-order"
	PlaceholderExtension = "x-formbind-placeholder"
	LabelExtension       = "x-formbind-label"
)

var (
	// ErrSchemaNotFound is returned when components.schemas lacks the name.
	ErrSchemaNotFound = errors.New("openapi: schema not found")
	// ErrUnsupportedType is returned for properties that have no field kind.
	ErrUnsupportedType = errors.New("openapi: unsupported property type")
)

// FormFromSchema loads raw and converts components.schemas[name] into a form.
func FormFromSchema(ctx context.Context, raw []byte, name string) (uischema.Form, error) {
	doc, err := Load(ctx, raw)
	if err != nil {
		return uischema.Form{}, err
	}
	return FormFromDocument(doc, name)
}

// FormFromDocument converts components.schemas[name] of an already loaded
// document. Property order follows the x-formbind-order extension when
// present; remaining properties follow in lexical order.
func FormFromDocument(doc *openapi3.T, name string) (uischema.Form, error) {
	if doc == nil || doc.Components == nil {
		return uischema.Form{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	ref := doc.Components.Schemas[name]
	if ref == nil || ref.Value == nil {
		return uischema.Form{}, fmt.Errorf("%w: %q", ErrSchemaNotFound, name)
	}
	schema := ref.Value

	title := strings.TrimSpace(schema.Title)
	if title == "" {
		title = name
	}
	raw := uischema.Form{Title: title}

	required := make(map[string]bool, len(schema.Required))
	for _, key := range schema.Required {
		required[key] = true
	}

	for _, key := range propertyOrder(schema) {
		prop := schema.Properties[key]
		if prop == nil || prop.Value == nil {
			continue
		}
		field, err := fieldFromProperty(key, prop.Value, required[key])
		if err != nil {
			return uischema.Form{}, fmt.Errorf("openapi: schema %q: %w", name, err)
		}
		raw.Fields = append(raw.Fields, field)
	}

	wrapped, err := json.Marshal(map[string]any{"forms": map[string]uischema.Form{name: raw}})
	if err != nil {
		return uischema.Form{}, fmt.Errorf("openapi: schema %q: %w", name, err)
	}
	store, err := uischema.Parse(wrapped, "openapi:"+name)
	if err != nil {
		return uischema.Form{}, err
	}
	form, _ := store.Form(name)
	return form, nil
}

func fieldFromProperty(key string, schema *openapi3.Schema, required bool) (uischema.FieldConfig, error) {
	field := uischema.FieldConfig{
		Key:         key,
		Label:       firstNonEmpty(extensionString(schema.Extensions, LabelExtension), schema.Title),
		Placeholder: extensionString(schema.Extensions, PlaceholderExtension),
		HelpText:    schema.Description,
		Rules:       uischema.RuleConfig{Required: required},
	}
	if schema.Default != nil {
		value := fmt.Sprint(schema.Default)
		field.Default = &value
	}

	if len(schema.Enum) > 0 {
		field.Kind = uischema.KindSelection
		for _, option := range schema.Enum {
			field.Options = append(field.Options, fmt.Sprint(option))
		}
		return field, nil
	}

	field.Kind = uischema.KindText
	switch typ := schemaType(schema); typ {
	case openapi3.TypeString, "":
		field.Input = "string"
		if schema.MinLength > 0 {
			n := int(schema.MinLength)
			field.Rules.MinLength = &n
		}
		if schema.MaxLength != nil {
			n := int(*schema.MaxLength)
			field.Rules.MaxLength = &n
		}
		field.Rules.Pattern = schema.Pattern
	case openapi3.TypeInteger, openapi3.TypeNumber:
		field.Input = "integer"
		if typ == openapi3.TypeNumber {
			field.Input = "floating"
		}
		field.Rules.Min = cloneFloat(schema.Min)
		field.Rules.Max = cloneFloat(schema.Max)
	case openapi3.TypeBoolean:
		field.Kind = uischema.KindSelection
		field.Options = []string{"false", "true"}
	default:
		return uischema.FieldConfig{}, fmt.Errorf("%w: property %q has type %q", ErrUnsupportedType, key, typ)
	}
	return field, nil
}

func propertyOrder(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	preferred := extensionStrings(schema.Extensions, OrderExtension)
	if len(preferred) == 0 {
		return names
	}

	ordered := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range preferred {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		ordered = append(ordered, name)
	}
	for _, name := range names {
		if _, ok := seen[name]; !ok {
			ordered = append(ordered, name)
		}
	}
	return ordered
}

func schemaType(schema *openapi3.Schema) string {
	if schema.Type == nil {
		return ""
	}
	values := schema.Type.Slice()
	for _, value := range values {
		if value != openapi3.TypeNull {
			return value
		}
	}
	return ""
}

func extensionString(ext map[string]any, key string) string {
	switch value := ext[key].(type) {
	case string:
		return strings.TrimSpace(value)
	case json.RawMessage:
		var s string
		if err := json.Unmarshal(value, &s); err == nil {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func extensionStrings(ext map[string]any, key string) []string {
	switch value := ext[key].(type) {
	case []string:
		return value
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case json.RawMessage:
		var out []string
		if err := json.Unmarshal(value, &out); err == nil {
			return out
		}
	}
	return nil
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	out := *value
	return &out
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
