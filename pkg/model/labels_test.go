package model

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":           "",
		"name":       "Name",
		"birth_date": "Birth date",
		"firstName":  "First name",
		"address2":   "Address 2",
		"zip-code":   "Zip code",
	}
	for in, want := range cases {
		if got := DefaultLabeler(in); got != want {
			t.Fatalf("DefaultLabeler(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecorate_FillsLabels(t *testing.T) {
	fields := []Field{
		{Key: "first_name", Value: NewText(InputKindString, "")},
		{Key: "age", Label: "Years", Value: NewText(InputKindInteger, "")},
	}
	if err := Decorate(fields, LabelDecorator(nil)); err != nil {
		t.Fatalf("decorate: %v", err)
	}
	if fields[0].Label != "First name" || fields[1].Label != "Years" {
		t.Fatalf("unexpected labels: %q, %q", fields[0].Label, fields[1].Label)
	}
}
