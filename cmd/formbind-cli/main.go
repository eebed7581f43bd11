package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formbind/internal/config"
	"github.com/goliatone/go-formbind/internal/logging"
	"github.com/goliatone/go-formbind/pkg/model"
	"github.com/goliatone/go-formbind/pkg/orchestrator"
	"github.com/goliatone/go-formbind/pkg/profile"
	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/renderers/tui"
	"github.com/goliatone/go-formbind/pkg/validation"
)

const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, nil)
	stop()
	os.Exit(code)
}

type assignments []orchestrator.Assignment

func (a *assignments) String() string {
	parts := make([]string, 0, len(*a))
	for _, item := range *a {
		parts = append(parts, string(item.Key)+"="+item.Value)
	}
	return strings.Join(parts, ",")
}

func (a *assignments) Set(raw string) error {
	key, value, ok := strings.Cut(raw, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("expected key=value, got %q", raw)
	}
	*a = append(*a, orchestrator.Assignment{Key: model.Key(strings.TrimSpace(key)), Value: value})
	return nil
}

// run executes the CLI. driver overrides the interactive prompt driver.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, driver tui.PromptDriver) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var values assignments
	flags := flag.NewFlagSet("formbind", flag.ContinueOnError)
	flags.SetOutput(stderr)
	formPath := flags.String("form", "", "form document (JSON or YAML)")
	formID := flags.String("form-id", "", "form id inside the document, or inside the bundled forms")
	openapiPath := flags.String("openapi", "", "OpenAPI 3 document")
	schemaName := flags.String("schema", "", "components.schemas entry used with -openapi")
	rendererName := flags.String("renderer", cfg.Renderer, "renderer name (text, json, tui)")
	fields := flags.String("fields", "", "comma separated keys to render (all when empty)")
	interactive := flags.Bool("interactive", false, "prompt for every field")
	submit := flags.Bool("submit", false, "validate the whole form and print the result")
	noValidate := flags.Bool("no-validate", false, "render rows without validation results")
	flags.Var(&values, "set", "key=value assignment, repeatable")
	if err := flags.Parse(args); err != nil {
		return exitUsage
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.Level(), Stderr: stderr, File: cfg.LogFile})
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	defer closeLog()

	src, err := resolveSource(*formPath, *formID, *openapiPath, *schemaName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	orch := orchestrator.New(
		orchestrator.WithLogger(logger),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
		orchestrator.WithProfileOptions(profile.WithNameMaxLength(cfg.NameMaxLength)),
	)

	m, err := orch.Model(ctx, src)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err := orchestrator.Apply(m, values); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	req := orchestrator.Request{
		Renderer:   *rendererName,
		NoValidate: *noValidate,
		Subset:     render.ParseFieldSubset(*fields),
	}
	interactor, err := orch.Bind(m, req, stdout)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if *interactive {
		session, err := tui.NewSession(interactor,
			tui.WithPromptDriver(driver),
			tui.WithLogger(logger),
			tui.WithConfirm(*submit),
		)
		if err == nil {
			err = session.Run(ctx)
		}
		if err != nil {
			fmt.Fprintln(stderr, err)
			if errors.Is(err, tui.ErrAborted) {
				return exitInvalid
			}
			return exitUsage
		}
	} else if err := interactor.Refresh(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if !*submit {
		return exitOK
	}
	return printSubmission(interactor.Model(), src, interactor.Submit(ctx), stdout, stderr, logger)
}

func resolveSource(formPath, formID, openapiPath, schema string) (orchestrator.Source, error) {
	src := orchestrator.Source{FormID: strings.TrimSpace(formID)}
	switch {
	case openapiPath != "":
		if formPath != "" {
			return src, errors.New("-form and -openapi are mutually exclusive")
		}
		if schema == "" {
			return src, errors.New("-openapi requires -schema")
		}
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return src, err
		}
		src.OpenAPI = raw
		src.Schema = schema
	case formPath != "":
		raw, err := os.ReadFile(formPath)
		if err != nil {
			return src, err
		}
		src.Document = raw
	}
	return src, nil
}

func printSubmission(m *model.Model, src orchestrator.Source, err error, stdout, stderr io.Writer, logger *slog.Logger) int {
	if err != nil {
		reasons, ok := validation.ReasonsOf(err)
		if !ok {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		for _, reason := range reasons {
			fmt.Fprintln(stderr, reason)
		}
		return exitInvalid
	}

	var payload any
	if src.IsProfile() {
		decoded, err := profile.Decode(m)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitInvalid
		}
		payload = decoded
	} else {
		payload = collect(m)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		logger.Error("encode submission", slog.Any("error", err))
		return exitUsage
	}
	return exitOK
}

// collect maps every set field to its text or chosen option label.
func collect(m *model.Model) map[string]string {
	out := make(map[string]string, m.Len())
	for _, field := range m.Fields() {
		switch value := field.Value.(type) {
		case model.Text:
			if text, ok := value.Text(); ok {
				out[string(field.Key)] = text
			}
		case model.Selection:
			if choice, ok := value.Choice(); ok {
				out[string(field.Key)] = choice
			}
		}
	}
	return out
}
