package uischema

import (
	"html"
	"strings"
	"sync"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips every tag from document-provided text. Entities produced
// by the policy are decoded again since the result is plain text, not HTML.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// SanitizeDecorator strips markup from labels, placeholders and selection
// options of fields declared in code from untrusted text.
func SanitizeDecorator() model.Decorator {
	return model.DecoratorFunc(func(field *model.Field) error {
		field.Label = sanitizeText(field.Label)
		switch value := field.Value.(type) {
		case model.Text:
			value.Placeholder = sanitizeText(value.Placeholder)
			field.Value = value
		case model.Selection:
			value.Placeholder = sanitizeText(value.Placeholder)
			options := make([]string, len(value.Options))
			for i, option := range value.Options {
				options[i] = sanitizeText(option)
			}
			value.Options = options
			field.Value = value
		}
		return nil
	})
}
