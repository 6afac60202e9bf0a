// Package factory turns located view types into instances.
//
// The binding engine only depends on the InstanceFactory interface; what an
// application plugs in (a container, hand-written constructors) is its own
// business. Default covers the common case: module-registered constructors
// first, reflect.New otherwise.
package factory

import (
	"reflect"

	"github.com/specialistvlad/viewbind/internal/registry"
)

// InstanceFactory produces an instance of t. It may return nil or a value of
// another type; callers pass the result on unchanged.
type InstanceFactory interface {
	GetInstance(t reflect.Type) any
}

// Func adapts a plain function to InstanceFactory.
type Func func(t reflect.Type) any

// GetInstance implements InstanceFactory.
func (f Func) GetInstance(t reflect.Type) any {
	return f(t)
}

// Default creates instances from registry constructors, falling back to
// New for types registered without one.
func Default(reg *registry.Registry) InstanceFactory {
	return &defaultFactory{registry: reg}
}

type defaultFactory struct {
	registry *registry.Registry
}

func (f *defaultFactory) GetInstance(t reflect.Type) any {
	if d, ok := f.registry.Describe(t); ok && d.New != nil {
		return d.New()
	}
	return New(t)
}

// New returns a pointer to a new zero value of t, or nil for nil types and
// for kinds that cannot be meaningfully constructed (interfaces, funcs,
// channels, unsafe pointers). Pointer types yield a pointer to a new element.
func New(t reflect.Type) any {
	if t == nil {
		return nil
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Interface, reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return nil
	}
	return reflect.New(t).Interface()
}
