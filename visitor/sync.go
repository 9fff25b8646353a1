package visitor

import (
	"reflect"
	"sync"
)

// TypeCache is a thread-safe map keyed by reflect.Type
type TypeCache[V any] struct {
	m   map[reflect.Type]V
	mux sync.RWMutex
}

// Get returns a value from the map
func (m *TypeCache[V]) Get(t reflect.Type) (V, bool) {
	m.mux.RLock()
	defer m.mux.RUnlock()
	v, ok := m.m[t]
	return v, ok
}

// GetOrCreate returns cached value or stores one built by create
func (m *TypeCache[V]) GetOrCreate(t reflect.Type, create func(t reflect.Type) V) V {
	if v, ok := m.Get(t); ok {
		return v
	}
	v := create(t)
	m.mux.Lock()
	defer m.mux.Unlock()
	if existing, ok := m.m[t]; ok {
		return existing
	}
	m.m[t] = v
	return v
}

// NewTypeCache creates a type cache
func NewTypeCache[V any]() *TypeCache[V] {
	return &TypeCache[V]{m: make(map[reflect.Type]V)}
}
