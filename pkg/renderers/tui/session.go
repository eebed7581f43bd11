package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/model"
)

// Metadata keys that change how a text field is prompted.
const (
	SecretMetadataKey   = "secret"
	WidgetMetadataKey   = "widget"
	HelpTextMetadataKey = "helpText"
)

// Session walks the fields of an interactor's model in order, prompting for
// each and feeding answers back through the interactor so observers (for
// example a presenter) see every change. A field is re-prompted while it is
// not valid.
type Session struct {
	interactor *binding.Interactor
	cfg        config
}

// NewSession prepares a session for interactor.
func NewSession(interactor *binding.Interactor, options ...Option) (*Session, error) {
	if interactor == nil {
		return nil, errors.New("tui: interactor is required")
	}
	return &Session{interactor: interactor, cfg: newConfig(options)}, nil
}

// Run prompts for every field. It stops at the first driver error, including
// ErrAborted.
func (s *Session) Run(ctx context.Context) error {
	m := s.interactor.Model()
	for _, key := range m.Keys() {
		if err := s.promptField(ctx, key); err != nil {
			return err
		}
	}

	if !s.cfg.confirm {
		return nil
	}
	ok, err := s.cfg.driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
	if err != nil {
		return err
	}
	if !ok {
		return ErrAborted
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, key model.Key) error {
	m := s.interactor.Model()
	for attempt := 1; ; attempt++ {
		field, ok := m.Field(key)
		if !ok {
			return fmt.Errorf("%w: %q", model.ErrUnknownKey, key)
		}

		err := s.ask(ctx, field)
		switch {
		case errors.Is(err, model.ErrWrongType):
			s.report(ctx, field, []string{err.Error()})
		case err != nil:
			return err
		default:
			result := m.Validate(key)
			if result.IsValid() {
				return nil
			}
			s.report(ctx, field, result.Reasons())
		}

		s.cfg.logger.Debug("field still invalid", slog.String("key", string(key)), slog.Int("attempt", attempt))
		if s.cfg.maxAttempts > 0 && attempt >= s.cfg.maxAttempts {
			return fmt.Errorf("%w: %q", ErrTooManyAttempts, key)
		}
	}
}

func (s *Session) ask(ctx context.Context, field model.Field) error {
	label := field.DisplayLabel()
	help := field.Metadata[HelpTextMetadataKey]

	switch value := field.Value.(type) {
	case model.Text:
		current, set := value.Text()
		var (
			response string
			err      error
		)
		check := s.answerCheck(field.Key, set)
		switch {
		case strings.EqualFold(field.Metadata[SecretMetadataKey], "true"):
			response, err = s.cfg.driver.Password(ctx, InputConfig{Message: label, Help: help, Validator: check})
		case field.Metadata[WidgetMetadataKey] == "textarea":
			response, err = s.cfg.driver.TextArea(ctx, TextAreaConfig{Message: label, Default: current, Help: help})
		default:
			response, err = s.cfg.driver.Input(ctx, InputConfig{
				Message:   label,
				Default:   current,
				Help:      withPlaceholder(help, value.Placeholder),
				Validator: check,
			})
		}
		if err != nil {
			return err
		}
		if response == "" && !set {
			// Leave the field absent so its absent policy decides.
			return nil
		}
		return s.interactor.Set(ctx, field.Key, model.TextInput(response))

	case model.Selection:
		current, ok := value.Selected()
		if !ok {
			current = model.NoSelection
		}
		idx, err := s.cfg.driver.Select(ctx, SelectConfig{
			Message:      label,
			Options:      value.Options,
			DefaultIndex: current,
			Help:         withPlaceholder(help, value.Placeholder),
		})
		if err != nil {
			return err
		}
		return s.interactor.Set(ctx, field.Key, model.IndexInput(idx))

	default:
		return fmt.Errorf("%w: %q", model.ErrWrongType, field.Key)
	}
}

// answerCheck validates a typed answer against the field's rules so the
// driver can re-ask in place. An empty answer for an unset field passes; the
// field then stays absent.
func (s *Session) answerCheck(key model.Key, set bool) func(string) error {
	m := s.interactor.Model()
	return func(answer string) error {
		if answer == "" && !set {
			return nil
		}
		result, err := m.Check(key, model.TextInput(answer))
		if err != nil {
			return err
		}
		if result.IsValid() {
			return nil
		}
		return errors.New(strings.Join(result.Reasons(), "; "))
	}
}

func (s *Session) report(ctx context.Context, field model.Field, reasons []string) {
	for _, reason := range reasons {
		_ = s.cfg.driver.Info(ctx, fmt.Sprintf("%sInvalid %s: %s", s.cfg.theme.ErrorPrefix, field.DisplayLabel(), reason))
	}
}

func withPlaceholder(help, placeholder string) string {
	if help != "" || placeholder == "" {
		return help
	}
	return placeholder
}
