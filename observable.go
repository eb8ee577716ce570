// Package observable provides a value holder that notifies registered callbacks
// each time its value is replaced.
package observable

import "github.com/AnatoleLucet/observable/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// ID identifies an observer registration. Pass it to RemoveObserver to stop receiving changes.
type ID = internal.ID

type observeConfig struct {
	initial bool
}

// ObserveOption configures a call to Observe.
type ObserveOption func(*observeConfig)

// Initial runs the observer once with the current value before Observe returns.
func Initial() ObserveOption {
	return func(c *observeConfig) { c.initial = true }
}

func newObserveConfig(opts []ObserveOption) observeConfig {
	var cfg observeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func wrap[T any](fn func(T)) func(any) {
	return func(v any) { fn(as[T](v)) }
}

// Value holds a value of type T and notifies its observers whenever Set is called.
// Observers run synchronously on the calling goroutine, in registration order.
//
// A Value is not safe for concurrent use. See Shared for a synchronized variant.
// The zero Value holds the zero T and has no observers.
type Value[T any] struct {
	value     T
	observers internal.Registry
}

// New creates a Value holding initial.
func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	return v.value
}

// Set replaces the current value and calls every observer with it.
// Observers are called even if the new value equals the old one.
func (v *Value[T]) Set(value T) {
	v.value = value
	v.observers.Notify(value)
}

// Update sets the value to fn applied to the current value.
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.value))
}

// Observe registers fn to be called with the new value on every Set.
func (v *Value[T]) Observe(fn func(T), opts ...ObserveOption) ID {
	cfg := newObserveConfig(opts)

	id := v.observers.Add(wrap(fn))
	if cfg.initial {
		fn(v.value)
	}

	return id
}

// RemoveObserver unregisters the observer identified by id.
// Removing an unknown or already removed observer does nothing.
func (v *Value[T]) RemoveObserver(id ID) {
	v.observers.Remove(id)
}

// Len returns the number of registered observers.
func (v *Value[T]) Len() int {
	return v.observers.Len()
}

// Accessors returns the getter and setter of the value as plain functions.
func (v *Value[T]) Accessors() (func() T, func(T)) {
	return v.Get, v.Set
}
