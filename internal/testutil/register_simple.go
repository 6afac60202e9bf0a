package testutil

import (
	"reflect"

	"github.com/specialistvlad/viewbind/internal/registry"
)

// TypeEntry is one type a SimpleModule registers.
type TypeEntry struct {
	Namespace string
	Type      reflect.Type
	New       func() any
}

// SimpleModule is a test helper for easily creating a module that registers
// a fixed list of types.
type SimpleModule struct {
	ModuleName string
	Types      []TypeEntry
}

// Entry builds a TypeEntry for T.
func Entry[T any](namespace string) TypeEntry {
	return TypeEntry{Namespace: namespace, Type: reflect.TypeFor[T]()}
}

// Name implements the registry.Module interface.
func (m *SimpleModule) Name() string {
	if m.ModuleName == "" {
		return "test"
	}
	return m.ModuleName
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, e := range m.Types {
		if e.New != nil {
			r.RegisterConstructor(e.Namespace, e.Type, e.New)
			continue
		}
		r.RegisterType(e.Namespace, e.Type)
	}
}

// NewRegistry loads the given modules into a fresh registry.
func NewRegistry(modules ...registry.Module) *registry.Registry {
	reg := registry.New()
	reg.Load(Context(nil), modules...)
	return reg
}
