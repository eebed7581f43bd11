package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/goliatone/go-formbind/pkg/model"
)

// Change describes one applied update.
type Change struct {
	Key   model.Key
	Input model.Input
	Model *model.Model
}

// Observer is notified after the interactor applied a change.
type Observer interface {
	ModelChanged(ctx context.Context, change Change) error
}

// ObserverFunc adapts a function into an Observer.
type ObserverFunc func(ctx context.Context, change Change) error

// ModelChanged calls the underlying function.
func (fn ObserverFunc) ModelChanged(ctx context.Context, change Change) error {
	return fn(ctx, change)
}

// InteractorOption configures an Interactor.
type InteractorOption func(*Interactor)

// WithLogger routes interactor diagnostics to logger.
func WithLogger(logger *slog.Logger) InteractorOption {
	return func(i *Interactor) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithObserver registers an observer at construction time.
func WithObserver(observer Observer) InteractorOption {
	return func(i *Interactor) {
		i.Observe(observer)
	}
}

// Interactor owns a model and applies caller updates to it.
type Interactor struct {
	model     *model.Model
	observers map[int]Observer
	nextID    int
	logger    *slog.Logger
}

// NewInteractor wraps m.
func NewInteractor(m *model.Model, options ...InteractorOption) (*Interactor, error) {
	if m == nil {
		return nil, errors.New("binding: model is required")
	}
	i := &Interactor{
		model:     m,
		observers: make(map[int]Observer),
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(i)
	}
	return i, nil
}

// Model exposes the owned model for read access.
func (i *Interactor) Model() *model.Model {
	return i.model
}

// Observe registers observer and returns a function that removes it.
// Observers run in registration order.
func (i *Interactor) Observe(observer Observer) (unsubscribe func()) {
	if observer == nil {
		return func() {}
	}
	id := i.nextID
	i.nextID++
	i.observers[id] = observer
	return func() {
		delete(i.observers, id)
	}
}

// Set stores in under key and notifies observers. Model errors (wrong shape,
// unknown key) are returned before any observer runs.
func (i *Interactor) Set(ctx context.Context, key model.Key, in model.Input) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := i.model.SetValue(key, in); err != nil {
		i.logger.Debug("value rejected", slog.String("key", string(key)), slog.Any("error", err))
		return err
	}
	i.logger.Debug("value stored", slog.String("key", string(key)))
	return i.notify(ctx, Change{Key: key, Input: in, Model: i.model})
}

// SetText parses raw into the input shape the field expects and applies it.
func (i *Interactor) SetText(ctx context.Context, key model.Key, raw string) error {
	field, ok := i.model.Field(key)
	if !ok {
		return fmt.Errorf("%w: %q", model.ErrUnknownKey, key)
	}
	in, err := model.ParseInput(field, raw)
	if err != nil {
		return err
	}
	return i.Set(ctx, key, in)
}

// Refresh notifies observers without changing the model, e.g. to draw the
// initial state.
func (i *Interactor) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return i.notify(ctx, Change{Model: i.model})
}

// Submit validates the whole model and returns an aggregate
// *validation.Error listing every reason when any field is not valid.
func (i *Interactor) Submit(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	result := i.model.ValidateAll()
	if !result.IsValid() {
		i.logger.Info("submit rejected", slog.Int("reasons", len(result.Reasons())))
	}
	return result.Err()
}

func (i *Interactor) notify(ctx context.Context, change Change) error {
	ids := make([]int, 0, len(i.observers))
	for id := range i.observers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var errs []error
	for _, id := range ids {
		observer, ok := i.observers[id]
		if !ok {
			continue
		}
		if err := observer.ModelChanged(ctx, change); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
