package observable

import "github.com/AnatoleLucet/observable/internal"

// Shared is a Value safe for concurrent use.
//
// Notifications are serialized: while observers handle one Set, Sets from other
// goroutines wait, so every observer sees the changes in the same order.
// An observer may call any method of the Shared it observes, a nested Set
// notifies inline before the outer notification resumes.
type Shared[T any] struct {
	mu internal.ReentrantMutex

	value     T
	observers internal.Registry
}

// NewShared creates a Shared holding initial.
func NewShared[T any](initial T) *Shared[T] {
	return &Shared[T]{value: initial}
}

// Get returns the current value.
func (s *Shared[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Set replaces the current value and calls every observer with it.
func (s *Shared[T]) Set(value T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(value)
}

// Update sets the value to fn applied to the current value, atomically.
func (s *Shared[T]) Update(fn func(T) T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set(fn(s.value))
}

func (s *Shared[T]) set(value T) {
	s.value = value
	s.observers.Notify(value)
}

// Observe registers fn to be called with the new value on every Set.
// With Initial, fn runs with the current value before any concurrent Set can land.
func (s *Shared[T]) Observe(fn func(T), opts ...ObserveOption) ID {
	cfg := newObserveConfig(opts)

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.observers.Add(wrap(fn))
	if cfg.initial {
		fn(s.value)
	}

	return id
}

// RemoveObserver unregisters the observer identified by id.
// Removing an unknown or already removed observer does nothing.
func (s *Shared[T]) RemoveObserver(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers.Remove(id)
}

// Len returns the number of registered observers.
func (s *Shared[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.observers.Len()
}

// Accessors returns the getter and setter of the value as plain functions.
func (s *Shared[T]) Accessors() (func() T, func(T)) {
	return s.Get, s.Set
}
