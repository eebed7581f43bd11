package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrRendererNotFound is returned by Get and Resolve for unknown names.
	ErrRendererNotFound = errors.New("render: renderer not found")
	// ErrDuplicateRenderer is returned when a name is registered twice.
	ErrDuplicateRenderer = errors.New("render: renderer already registered")
	// ErrInvalidRenderer is returned for renderers without a name or content
	// type.
	ErrInvalidRenderer = errors.New("render: invalid renderer")
)

// Registry maps renderer names (case insensitive) to renderers.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string]Renderer
}

// NewRegistry registers renderers in order and fails on the first invalid or
// duplicate one.
func NewRegistry(renderers ...Renderer) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Renderer, len(renderers))}
	for _, renderer := range renderers {
		if err := r.Register(renderer); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds renderer under its Name().
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("%w: nil", ErrInvalidRenderer)
	}
	key := registryKey(renderer.Name())
	if key == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidRenderer)
	}
	if strings.TrimSpace(renderer.ContentType()) == "" {
		return fmt.Errorf("%w: %q has no content type", ErrInvalidRenderer, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byKey[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateRenderer, key)
	}
	r.byKey[key] = renderer
	return nil
}

// MustRegister is Register that panics.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get returns the renderer registered under name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.byKey[registryKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRendererNotFound, name)
	}
	return renderer, nil
}

// Resolve picks the renderer for a request. An explicit name must exist. An
// empty name selects fallback, or the first name in lexical order when
// fallback is not registered either.
func (r *Registry) Resolve(name, fallback string) (Renderer, error) {
	if strings.TrimSpace(name) != "" {
		return r.Get(name)
	}
	if renderer, err := r.Get(fallback); err == nil {
		return renderer, nil
	}
	names := r.List()
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: registry is empty", ErrRendererNotFound)
	}
	return r.Get(names[0])
}

// List returns the registered names sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byKey))
	for name := range r.byKey {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byKey[registryKey(name)]
	return ok
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
