package multierror

import (
	"fmt"
	"strings"
	"sync"
)

// Error combines errors keyed by an identifier (a node address, an RPC name)
// into a single error value.
type Error[T comparable] struct {
	mu     sync.Mutex
	errors map[T]error
}

// New creates an empty Error.
func New[T comparable]() *Error[T] {
	return &Error[T]{
		errors: make(map[T]error),
	}
}

// Add records an error under the given key, replacing any previous one.
func (m *Error[T]) Add(key T, err error) {
	m.mu.Lock()
	m.errors[key] = err
	m.mu.Unlock()
}

// Len returns the number of recorded errors.
func (m *Error[T]) Len() int {
	return len(m.errors)
}

// Error formats all recorded errors as a single string.
func (m *Error[T]) Error() string {
	parts := make([]string, 0, len(m.errors))
	for k, v := range m.errors {
		parts = append(parts, fmt.Sprintf("%v: %s", k, v))
	}

	return strings.Join(parts, "; ")
}

// Unwrap returns the recorded errors as a slice.
func (m *Error[T]) Unwrap() []error {
	errs := make([]error, 0, len(m.errors))
	for _, v := range m.errors {
		errs = append(errs, v)
	}

	return errs
}

// Combined returns the Error itself when it holds anything, nil otherwise.
func (m *Error[T]) Combined() error {
	if len(m.errors) == 0 {
		return nil
	}

	return m
}
