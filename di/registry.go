package di

import (
	"reflect"
	"sync"
)

// Registry is a heterogeneous, type-keyed store. Each stored value is keyed
// by its static type; inserting a second value of the same type replaces the
// first.
//
// The zero value is not usable; create registries with [NewRegistry].
//
// A Registry is safe for concurrent use. The internal map is guarded by a
// read/write lock, but the intended shape is still a single-owner setup
// phase (Insert calls) followed by shared read-only use (Get/Build). Values
// handed out are the stored values themselves: if they are to be shared
// across goroutines, they must be safe for that sharing.
type Registry struct {
	mu     sync.RWMutex
	values map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{values: make(map[reflect.Type]any)}
}

// Len returns the number of distinct types currently stored.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.values)
}

// Insert stores value under the type identity of T, taking ownership of it.
// If a value of type T is already present it is replaced; the last write
// wins. Insert never fails.
//
// T is usually inferred:
//
//	di.Insert(reg, Config{Key: "value"})   // stored as Config
//	di.Insert(reg, &pool)                   // stored as *Pool
//
// Note that a T and a *T are distinct entries.
func Insert[T any](r *Registry, value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[typeOf[T]()] = value
}

// Get returns the stored value of type T. It fails with a [LookupError]
// naming T when no value of that type is present.
//
// Get never mutates the registry; in particular it does not invoke any
// construction logic. Use [Build] for Constructible types.
func Get[T any](r *Registry) (T, error) {
	v, ok := GetOK[T](r)
	if !ok {
		return v, LookupError{Type: typeOf[T]()}
	}
	return v, nil
}

// GetOK returns the stored value of type T and whether it was present.
// It is the non-erroring variant of [Get] for callers that treat absence
// as a normal condition.
func GetOK[T any](r *Registry) (T, bool) {
	r.mu.RLock()
	raw, ok := r.values[typeOf[T]()]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, false
	}
	// The map is only ever written by Insert[T] under the matching key, so
	// this assertion cannot fail.
	return raw.(T), true
}

// MustGet returns the stored value of type T or panics with the underlying
// [LookupError]. Useful in examples and tests where a missing value should
// fail fast.
func MustGet[T any](r *Registry) T {
	v, err := Get[T](r)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a value of type T is stored.
func Has[T any](r *Registry) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.values[typeOf[T]()]
	return ok
}

// typeOf returns the reflect.Type of T without requiring a value of it.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
