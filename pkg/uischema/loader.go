package uischema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

type documentFile struct {
	Forms map[string]Form `json:"forms" yaml:"forms"`
}

// LoadFS walks fsys and parses every JSON/YAML form document. When fsys is nil
// or holds no documents the returned store is empty. Form ids must be unique
// across files.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isSchemaFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("uischema: read %s: %w", path, err)
		}
		return store.add(data, path)
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Parse reads a single document held in memory. source names the document in
// error messages.
func Parse(data []byte, source string) (*Store, error) {
	store := &Store{forms: make(map[string]Form)}
	if err := store.add(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) add(data []byte, source string) error {
	doc, err := parseDocument(data, source)
	if err != nil {
		return err
	}
	for rawID, raw := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("uischema: file %s defines an empty form id", source)
		}
		if _, exists := s.forms[id]; exists {
			return fmt.Errorf("uischema: duplicate form %q (file %s)", id, source)
		}
		form, err := normaliseForm(raw, id, source)
		if err != nil {
			return err
		}
		s.forms[id] = form
	}
	return nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("uischema: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = documentFile{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return documentFile{}, fmt.Errorf("uischema: parse %s: invalid JSON or YAML", source)
}

func normaliseForm(raw Form, id, source string) (Form, error) {
	form := Form{
		ID:       id,
		Source:   source,
		Title:    sanitizeText(raw.Title),
		Fields:   make([]FieldConfig, 0, len(raw.Fields)),
		Metadata: cloneStrings(raw.Metadata),
	}

	seen := make(map[string]struct{}, len(raw.Fields))
	for idx, cfg := range raw.Fields {
		key := strings.TrimSpace(cfg.Key)
		if key == "" {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) field %d has an empty key", id, source, idx)
		}
		if _, exists := seen[key]; exists {
			return Form{}, fmt.Errorf("uischema: form %q (file %s) defines duplicate field %q", id, source, key)
		}
		seen[key] = struct{}{}

		normalised, err := normaliseField(cfg, key)
		if err != nil {
			return Form{}, fmt.Errorf("uischema: form %q (file %s): %w", id, source, err)
		}
		form.Fields = append(form.Fields, normalised)
	}
	return form, nil
}

func normaliseField(cfg FieldConfig, key string) (FieldConfig, error) {
	out := cfg
	out.Key = key
	out.Label = sanitizeText(cfg.Label)
	out.Placeholder = sanitizeText(cfg.Placeholder)
	out.HelpText = sanitizeText(cfg.HelpText)
	out.Metadata = cloneStrings(cfg.Metadata)

	out.Kind = strings.ToLower(strings.TrimSpace(cfg.Kind))
	if out.Kind == "" {
		out.Kind = KindText
		if len(cfg.Options) > 0 {
			out.Kind = KindSelection
		}
	}

	switch out.Kind {
	case KindText:
		out.Input = strings.ToLower(strings.TrimSpace(cfg.Input))
		if out.Input == "" {
			out.Input = "string"
		}
		if len(cfg.Options) > 0 {
			return FieldConfig{}, fmt.Errorf("field %q: options are only valid on selection fields", key)
		}
	case KindSelection:
		if len(cfg.Options) == 0 {
			return FieldConfig{}, fmt.Errorf("field %q: selection requires options", key)
		}
		out.Input = ""
		out.Options = make([]string, 0, len(cfg.Options))
		for _, option := range cfg.Options {
			cleaned := sanitizeText(option)
			if cleaned == "" {
				return FieldConfig{}, fmt.Errorf("field %q: empty option", key)
			}
			out.Options = append(out.Options, cleaned)
		}
	default:
		return FieldConfig{}, fmt.Errorf("field %q: unknown kind %q", key, cfg.Kind)
	}
	return out, nil
}

func isSchemaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func cloneStrings(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func sortStrings(values []string) {
	sort.Strings(values)
}
