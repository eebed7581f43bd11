package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/binding"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/profile"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

type stubDriver struct {
	inputs       []string
	selectIdx    []int
	confirm      []bool
	passwords    []string
	infoMessages []string
	checks       []func(string) error
	inputPos     int
	selectPos    int
	confirmPos   int
	passPos      int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.checks = append(s.checks, cfg.Validator)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	return "", errors.New("no textarea scripted")
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestSession_InputValidatorChecksWithoutStoring(t *testing.T) {
	ctx := context.Background()
	interactor, err := binding.NewInteractor(profile.New())
	if err != nil {
		t.Fatalf("NewInteractor: %v", err)
	}
	driver := &stubDriver{inputs: []string{"Ann", "42"}, selectIdx: []int{0}}
	session, err := NewSession(interactor, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := session.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(driver.checks) != 2 || driver.checks[1] == nil {
		t.Fatalf("expected a validator for every text prompt, got %d", len(driver.checks))
	}

	ageCheck := driver.checks[1]
	if err := ageCheck("121"); err == nil || !strings.Contains(err.Error(), "out of range [0, 99]") {
		t.Fatalf("expected range error, got %v", err)
	}
	if err := ageCheck("7"); err != nil {
		t.Fatalf("expected 7 to pass, got %v", err)
	}
	if err := ageCheck(""); err != nil {
		t.Fatalf("age was unset when prompted, an empty answer should pass, got %v", err)
	}
	if in, _ := interactor.Model().Value(profile.KeyAge); in != model.TextInput("42") {
		t.Fatalf("validator must not store answers, got %v", in)
	}
}

func TestSession_RepromptsUntilValid(t *testing.T) {
	ctx := context.Background()
	interactor, err := binding.NewInteractor(profile.New())
	if err != nil {
		t.Fatalf("NewInteractor: %v", err)
	}

	var displayed []viewmodel.ViewModel
	presenter := binding.NewPresenter(nil, binding.DisplayFunc(func(_ context.Context, vm viewmodel.ViewModel) error {
		displayed = append(displayed, vm)
		return nil
	}))
	interactor.Observe(presenter)

	driver := &stubDriver{
		inputs:    []string{"Ann", "15a", "121", "42"},
		selectIdx: []int{1},
		confirm:   []bool{true},
	}
	session, err := NewSession(interactor, WithPromptDriver(driver), WithConfirm(true))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := session.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		`! Invalid Age: "15a" is not a whole number`,
		"! Invalid Age: 121 is out of range [0, 99]",
	}
	if diff := cmp.Diff(want, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	if len(displayed) != 5 {
		t.Fatalf("expected one display per accepted answer, got %d", len(displayed))
	}

	got, err := profile.Decode(interactor.Model())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(profile.Profile{Name: "Ann", Age: 42, Gender: 1}, got); diff != "" {
		t.Fatalf("profile mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_MaxAttempts(t *testing.T) {
	interactor, _ := binding.NewInteractor(profile.New())
	driver := &stubDriver{inputs: []string{"", "", ""}}
	session, _ := NewSession(interactor, WithPromptDriver(driver), WithMaxAttempts(2))

	err := session.Run(context.Background())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if !strings.Contains(err.Error(), `"age"`) {
		t.Fatalf("expected age in error, got %v", err)
	}
}

func TestSession_DeclinedConfirm(t *testing.T) {
	interactor, _ := binding.NewInteractor(profile.New())
	driver := &stubDriver{
		inputs:    []string{"", "30"},
		selectIdx: []int{model.NoSelection},
		confirm:   []bool{false},
	}
	session, _ := NewSession(interactor, WithPromptDriver(driver), WithConfirm(true))
	if err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_SecretFieldsUsePassword(t *testing.T) {
	m := model.MustNew(model.Field{
		Key:      "pin",
		Value:    model.NewText(model.InputKindInteger, ""),
		Metadata: map[string]string{SecretMetadataKey: "true"},
	})
	interactor, _ := binding.NewInteractor(m)
	driver := &stubDriver{passwords: []string{"1234"}}
	session, _ := NewSession(interactor, WithPromptDriver(driver))
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, _ := m.Value("pin"); got != model.TextInput("1234") {
		t.Fatalf("expected pin to be stored, got %v", got)
	}
}

func TestRenderer_Render(t *testing.T) {
	m := profile.New()
	_ = m.SetValue(profile.KeyName, model.TextInput("Ann"))
	_ = m.SetValue(profile.KeyGender, model.IndexInput(2))
	vm := viewmodel.NewGenerator().Generate(m)

	var buf bytes.Buffer
	if err := New().Render(context.Background(), vm, &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := strings.Join([]string{
		"[ok] Name: Ann",
		"[!!] Age: <Age>",
		"    ! value is required",
		"[ok] Gender: Other",
		"",
	}, "\n")
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}
