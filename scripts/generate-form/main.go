// Command generate-form converts an OpenAPI schema component into a form
// document that uischema.LoadFS (and the CLI -form flag) accept.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formbind/pkg/openapi"
	"github.com/goliatone/go-formbind/pkg/uischema"
)

func main() {
	var (
		schemaPath = flag.String("openapi", "openapi.yaml", "OpenAPI document path")
		schemaName = flag.String("schema", "", "components.schemas entry to convert")
		formID     = flag.String("form-id", "", "form id in the output (defaults to the schema name)")
		outputPath = flag.String("output", "", "output path (stdout if empty)")
	)
	flag.Parse()

	if *schemaName == "" {
		fmt.Fprintln(os.Stderr, "generate-form: -schema is required")
		os.Exit(2)
	}
	id := *formID
	if id == "" {
		id = *schemaName
	}

	raw, err := os.ReadFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-form: %v\n", err)
		os.Exit(1)
	}

	form, err := openapi.FormFromSchema(context.Background(), raw, *schemaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-form: %v\n", err)
		os.Exit(1)
	}

	payload, err := yaml.Marshal(map[string]any{
		"forms": map[string]uischema.Form{id: form},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate-form: encode: %v\n", err)
		os.Exit(1)
	}

	if *outputPath == "" {
		os.Stdout.Write(payload)
		return
	}
	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "generate-form: write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Form written to %s\n", *outputPath)
}
