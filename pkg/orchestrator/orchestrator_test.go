package orchestrator_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/orchestrator"
	"github.com/goliatone/go-formbind/pkg/profile"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/testsupport"
)

func TestGenerate_ProfileText(t *testing.T) {
	ctx := testsupport.Context()
	orch := orchestrator.New()

	output, err := orch.Generate(ctx, orchestrator.Request{
		Values: []orchestrator.Assignment{
			{Key: profile.KeyName, Value: "Ann"},
			{Key: profile.KeyAge, Value: "15a"},
			{Key: profile.KeyGender, Value: "female"},
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	golden := filepath.Join("testdata", "profile_text.golden")
	if testsupport.WriteMaybeGolden(t, golden, output) {
		return
	}
	want := testsupport.MustReadGolden(t, golden)
	if diff := testsupport.CompareGolden(string(want), string(output)); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_OpenAPIJSON(t *testing.T) {
	ctx := testsupport.Context()
	orch := orchestrator.New()

	output, err := orch.Generate(ctx, orchestrator.Request{
		Source: orchestrator.Source{
			OpenAPI: testsupport.MustReadFile(t, filepath.Join("testdata", "pets.yaml")),
			Schema:  "Pet",
		},
		Values:   []orchestrator.Assignment{{Key: "species", Value: "dog"}},
		Renderer: "json",
		Subset:   render.FieldSubset{Keys: []string{"name", "species"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := string(output)
	for _, want := range []string{`"id": "name"`, `"label": "Pet name"`, `"choice": "dog"`, `"value is required (Pet name)"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"id": "weight"`) {
		t.Fatalf("expected weight row to be filtered:\n%s", out)
	}
}

func TestModel_FormDocuments(t *testing.T) {
	ctx := testsupport.Context()
	orch := orchestrator.New()

	m, err := orch.Model(ctx, orchestrator.Source{FormID: "person"})
	if err != nil {
		t.Fatalf("Model(embedded): %v", err)
	}
	if diff := cmp.Diff([]model.Key{"name", "age", "gender"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	docs := fstest.MapFS{"one.yaml": {Data: []byte("forms:\n  only:\n    fields:\n      - key: city\n")}}
	m, err = orch.Model(ctx, orchestrator.Source{Documents: docs})
	if err != nil {
		t.Fatalf("Model(documents): %v", err)
	}
	if m.Len() != 1 {
		t.Fatalf("expected single field, got %d", m.Len())
	}

	if _, err := orch.Model(ctx, orchestrator.Source{FormID: "missing"}); err == nil {
		t.Fatalf("expected error for unknown form")
	}
}

func TestModel_DefaultFormIDIsProfile(t *testing.T) {
	ctx := testsupport.Context()
	orch := orchestrator.New(orchestrator.WithProfileOptions(profile.WithNameMaxLength(2)))

	src := orchestrator.Source{FormID: "person"}
	if !src.IsProfile() {
		t.Fatalf("expected %q to select the profile form", src.FormID)
	}
	m, err := orch.Model(ctx, src)
	if err != nil {
		t.Fatalf("Model: %v", err)
	}
	if err := m.SetValue(profile.KeyName, model.TextInput("Ann")); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if m.Validate(profile.KeyName).IsValid() {
		t.Fatalf("expected profile options to apply to the person form")
	}

	docs := fstest.MapFS{"p.yaml": {Data: []byte("forms:\n  person:\n    fields:\n      - key: city\n")}}
	withDocs := orchestrator.Source{FormID: "person", Documents: docs}
	if withDocs.IsProfile() {
		t.Fatalf("explicit documents must not resolve to the profile form")
	}
	m, err = orch.Model(ctx, withDocs)
	if err != nil {
		t.Fatalf("Model(documents): %v", err)
	}
	if diff := cmp.Diff([]model.Key{"city"}, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_Errors(t *testing.T) {
	ctx := testsupport.Context()
	orch := orchestrator.New()

	_, err := orch.Generate(ctx, orchestrator.Request{Renderer: "html"})
	if !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}

	_, err = orch.Generate(ctx, orchestrator.Request{Values: []orchestrator.Assignment{{Key: "email", Value: "x"}}})
	if !errors.Is(err, model.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}

	_, err = orch.Generate(ctx, orchestrator.Request{Values: []orchestrator.Assignment{{Key: profile.KeyGender, Value: "robot"}}})
	if !errors.Is(err, model.ErrWrongType) {
		t.Fatalf("expected ErrWrongType, got %v", err)
	}

	_, err = orch.Generate(ctx, orchestrator.Request{Source: orchestrator.Source{OpenAPI: []byte("{}")}})
	if err == nil {
		t.Fatalf("expected error for openapi source without schema")
	}
}

func TestBind_RendersEveryChange(t *testing.T) {
	ctx := testsupport.Context()
	orch := orchestrator.New(orchestrator.WithProfileOptions(profile.WithNameMaxLength(3)))
	m, err := orch.Model(ctx, orchestrator.Source{})
	if err != nil {
		t.Fatalf("Model: %v", err)
	}

	var buf bytes.Buffer
	interactor, err := orch.Bind(m, orchestrator.Request{Renderer: "tui"}, &buf)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := interactor.SetText(ctx, profile.KeyName, "Annabel"); err != nil {
		t.Fatalf("SetText: %v", err)
	}
	if !strings.Contains(buf.String(), "length must be between 0 and 3 characters, got 7") {
		t.Fatalf("expected configured name limit in output:\n%s", buf.String())
	}
	if diff := cmp.Diff([]string{"json", "text", "tui"}, orch.Renderers()); diff != "" {
		t.Fatalf("renderers mismatch (-want +got):\n%s", diff)
	}
}
