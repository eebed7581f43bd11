// Package binding wires the model to a display: an Interactor owns the model
// and applies caller updates, observers registered on it are notified after
// each successful change, and a Presenter (one such observer) regenerates the
// view-model and hands it to a Display sink. Registration is explicit and
// returns an unsubscribe function; no component holds a back-reference to
// another.
package binding
