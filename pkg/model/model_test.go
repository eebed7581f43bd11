package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbind/pkg/validation"
)

func personModel(t *testing.T) *Model {
	t.Helper()

	m, err := New(
		Field{
			Key:       "name",
			Label:     "Name",
			Value:     NewText(InputKindString, "Your name"),
			Validator: TextRule(validation.LengthRange(0, 10)),
		},
		Field{
			Key:       "age",
			Label:     "Age",
			Value:     NewText(InputKindInteger, "Age"),
			Validator: TextRule(validation.ParseInt(validation.Required(validation.IntRange(0, 99)))),
		},
		Field{
			Key:   "gender",
			Label: "Gender",
			Value: NewSelection("Select gender", "Male", "Female", "Other"),
		},
	)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	return m
}

func TestNew_PreservesOrder(t *testing.T) {
	m := personModel(t)
	want := []Key{"name", "age", "gender"}
	if diff := cmp.Diff(want, m.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", m.Len())
	}
	for _, key := range m.Keys() {
		if _, ok := m.Field(key); !ok {
			t.Fatalf("key %q has no field", key)
		}
	}
}

func TestNew_RejectsBadDeclarations(t *testing.T) {
	cases := []struct {
		name   string
		fields []Field
		want   error
	}{
		{
			name:   "empty key",
			fields: []Field{{Key: " ", Value: NewText(InputKindString, "")}},
			want:   ErrInvalidField,
		},
		{
			name: "duplicate key",
			fields: []Field{
				{Key: "a", Value: NewText(InputKindString, "")},
				{Key: "a", Value: NewSelection("")},
			},
			want: ErrInvalidField,
		},
		{
			name:   "missing value",
			fields: []Field{{Key: "a"}},
			want:   ErrInvalidField,
		},
		{
			name: "validator kind mismatch",
			fields: []Field{{
				Key:       "a",
				Value:     NewSelection("", "x"),
				Validator: TextRule(validation.LengthRange(0, 1)),
			}},
			want: ErrWrongType,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(tc.fields...); !errors.Is(err, tc.want) {
				t.Fatalf("New() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestSetValue_StoresAndReturns(t *testing.T) {
	m := personModel(t)

	if _, ok := m.Value("name"); ok {
		t.Fatalf("expected unset name to be absent")
	}
	if err := m.SetValue("name", TextInput("Ada")); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := m.SetValue("gender", IndexInput(1)); err != nil {
		t.Fatalf("set gender: %v", err)
	}

	if got, ok := m.Value("name"); !ok || got != TextInput("Ada") {
		t.Fatalf("Value(name) = %v, %v", got, ok)
	}
	if got, ok := m.Value("gender"); !ok || got != IndexInput(1) {
		t.Fatalf("Value(gender) = %v, %v", got, ok)
	}

	field, _ := m.Field("gender")
	sel := field.Value.(Selection)
	if diff := cmp.Diff([]string{"Male", "Female", "Other"}, sel.Options); diff != "" {
		t.Fatalf("options not preserved (-want +got):\n%s", diff)
	}
	if sel.Placeholder != "Select gender" {
		t.Fatalf("placeholder not preserved: %q", sel.Placeholder)
	}
	if choice, _ := sel.Choice(); choice != "Female" {
		t.Fatalf("Choice() = %q, want Female", choice)
	}

	if err := m.SetValue("gender", IndexInput(NoSelection)); err != nil {
		t.Fatalf("clear gender: %v", err)
	}
	if _, ok := m.Value("gender"); ok {
		t.Fatalf("expected cleared selection to be absent")
	}
}

func TestSetValue_WrongShapeNeverMutates(t *testing.T) {
	m := personModel(t)
	if err := m.SetValue("name", TextInput("Ada")); err != nil {
		t.Fatalf("set name: %v", err)
	}
	if err := m.SetValue("gender", IndexInput(2)); err != nil {
		t.Fatalf("set gender: %v", err)
	}
	before := snapshot(m)

	cases := []struct {
		key Key
		in  Input
	}{
		{key: "name", in: IndexInput(0)},
		{key: "age", in: IndexInput(3)},
		{key: "gender", in: TextInput("Male")},
		{key: "gender", in: IndexInput(3)},
		{key: "gender", in: IndexInput(-2)},
		{key: "name", in: nil},
	}
	for _, tc := range cases {
		err := m.SetValue(tc.key, tc.in)
		if !errors.Is(err, ErrWrongType) {
			t.Fatalf("SetValue(%q, %#v) error = %v, want ErrWrongType", tc.key, tc.in, err)
		}
	}

	if diff := cmp.Diff(before, snapshot(m)); diff != "" {
		t.Fatalf("model mutated by failed sets (-want +got):\n%s", diff)
	}
}

func TestSetValue_UnknownKey(t *testing.T) {
	m := personModel(t)
	if err := m.SetValue("email", TextInput("x")); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestCheck_DoesNotStore(t *testing.T) {
	m := personModel(t)

	result, err := m.Check("age", TextInput("121"))
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if diff := cmp.Diff([]string{"121 is out of range [0, 99]"}, result.Reasons()); diff != "" {
		t.Fatalf("reasons mismatch (-want +got):\n%s", diff)
	}
	if result, _ := m.Check("age", TextInput("15")); !result.IsValid() {
		t.Fatalf("expected 15 to be valid, got %s", result)
	}
	if _, ok := m.Value("age"); ok {
		t.Fatalf("Check must not store the value")
	}
	if result, _ := m.Check("gender", IndexInput(2)); !result.IsValid() {
		t.Fatalf("fields without validator are valid, got %s", result)
	}

	if _, err := m.Check("age", IndexInput(0)); !errors.Is(err, ErrWrongType) {
		t.Fatalf("expected ErrWrongType, got %v", err)
	}
	if _, err := m.Check("email", TextInput("x")); !errors.Is(err, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestField_ReturnsCopy(t *testing.T) {
	m := personModel(t)
	field, _ := m.Field("gender")
	field.Value.(Selection).Options[0] = "changed"

	again, _ := m.Field("gender")
	if again.Value.(Selection).Options[0] != "Male" {
		t.Fatalf("mutating a returned field leaked into the model")
	}
}

func TestValidateAll_FoldsInOrderWithLabels(t *testing.T) {
	m := personModel(t)
	_ = m.SetValue("name", TextInput("A very long name"))
	_ = m.SetValue("age", TextInput("121"))

	got := m.ValidateAll()
	if got.IsValid() {
		t.Fatalf("expected invalid model")
	}
	reasons := got.Reasons()
	if len(reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %v", reasons)
	}
	if !strings.HasSuffix(reasons[0], "(Name)") || !strings.HasSuffix(reasons[1], "(Age)") {
		t.Fatalf("reasons not suffixed in declaration order: %v", reasons)
	}

	_ = m.SetValue("name", TextInput("Ada"))
	_ = m.SetValue("age", TextInput("36"))
	if res := m.ValidateAll(); !res.IsValid() {
		t.Fatalf("expected valid model, got %s", res)
	}
}

func TestValidate_AbsentAge(t *testing.T) {
	m := personModel(t)
	res := m.Validate("age")
	if res.IsValid() {
		t.Fatalf("absent age should be invalid")
	}
	if diff := cmp.Diff([]string{validation.ReasonRequired}, res.Reasons()); diff != "" {
		t.Fatalf("reasons mismatch (-want +got):\n%s", diff)
	}
	if !m.Validate("name").IsValid() {
		t.Fatalf("absent name should be valid")
	}
	if m.Validate("missing").IsValid() {
		t.Fatalf("unknown keys are not valid")
	}
}

func TestReset(t *testing.T) {
	m := personModel(t)
	_ = m.SetValue("name", TextInput("Ada"))
	_ = m.SetValue("gender", IndexInput(0))

	fresh := m.Reset()
	if _, ok := fresh.Value("name"); ok {
		t.Fatalf("reset model kept name")
	}
	if _, ok := fresh.Value("gender"); ok {
		t.Fatalf("reset model kept gender")
	}
	if _, ok := m.Value("name"); !ok {
		t.Fatalf("reset must not touch the original model")
	}
	if diff := cmp.Diff(m.Keys(), fresh.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseInput(t *testing.T) {
	m := personModel(t)
	gender, _ := m.Field("gender")
	name, _ := m.Field("name")

	cases := []struct {
		name    string
		field   Field
		raw     string
		want    Input
		wantErr bool
	}{
		{name: "text", field: name, raw: "Ada", want: TextInput("Ada")},
		{name: "option label", field: gender, raw: "female", want: IndexInput(1)},
		{name: "option index", field: gender, raw: "2", want: IndexInput(2)},
		{name: "clear", field: gender, raw: " ", want: IndexInput(NoSelection)},
		{name: "unknown option", field: gender, raw: "robot", wantErr: true},
		{name: "index out of range", field: gender, raw: "7", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseInput(tc.field, tc.raw)
			if tc.wantErr {
				if !errors.Is(err, ErrWrongType) {
					t.Fatalf("expected ErrWrongType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseInput: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ParseInput() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func snapshot(m *Model) map[Key]any {
	out := make(map[Key]any, m.Len())
	for _, key := range m.Keys() {
		value, ok := m.Value(key)
		if !ok {
			out[key] = nil
			continue
		}
		out[key] = value
	}
	return out
}
