// Package text renders view-models as plain text through pongo2 templates.
package text

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formbind/pkg/render"
	"github.com/goliatone/go-formbind/pkg/viewmodel"
)

// DefaultTemplate names the bundled template.
const DefaultTemplate = "form.tpl"

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templates  fs.FS
	name       string
	source     string
	globalData map[string]any
}

// WithFS loads templates from files instead of the bundled set.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// WithTemplateName selects the template rendered from the configured fs.
func WithTemplateName(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// WithTemplateString renders src instead of a file.
func WithTemplateString(src string) Option {
	return func(cfg *config) {
		cfg.source = src
	}
}

// WithTitle prints title above the rows.
func WithTitle(title string) Option {
	return WithGlobalData(map[string]any{"title": title})
}

// WithGlobalData seeds values available to every render.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if len(data) == 0 {
			return
		}
		if cfg.globalData == nil {
			cfg.globalData = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globalData[strings.TrimSpace(key)] = value
		}
	}
}

// Renderer implements render.Renderer with a single compiled template.
type Renderer struct {
	mu   sync.RWMutex
	tmpl *pongo2.Template
}

var _ render.Renderer = (*Renderer)(nil)

// New compiles the configured template.
func New(options ...Option) (*Renderer, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("text: embedded templates: %w", err)
	}
	cfg := &config{templates: sub, name: DefaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	set := pongo2.NewSet("formbind", pongo2.NewFSLoader(cfg.templates))
	if len(cfg.globalData) > 0 {
		set.Globals = make(pongo2.Context, len(cfg.globalData))
		set.Globals.Update(pongo2.Context(cfg.globalData))
	}

	var tmpl *pongo2.Template
	if cfg.source != "" {
		tmpl, err = set.FromString(cfg.source)
	} else {
		tmpl, err = set.FromFile(cfg.name)
	}
	if err != nil {
		return nil, fmt.Errorf("text: load template: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "text"
}

// ContentType reports the format written by Render.
func (r *Renderer) ContentType() string {
	return "text/plain"
}

// Render executes the template with the flattened view-model. Template keys
// follow the JSON names of render.Document.
func (r *Renderer) Render(ctx context.Context, vm viewmodel.ViewModel, w io.Writer) error {
	if r == nil || r.tmpl == nil {
		return errors.New("text: renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	viewContext, err := toContext(render.Snapshot(vm))
	if err != nil {
		return fmt.Errorf("text: convert data: %w", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.tmpl.ExecuteWriter(viewContext, w); err != nil {
		return fmt.Errorf("text: execute template: %w", err)
	}
	return nil
}

func toContext(v any) (pongo2.Context, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return pongo2.Context(out), nil
}
