// Package ui defines the contract between views, view-models and the
// binding engine.
//
// A view is any Bubble Tea model that also carries an action-target slot.
// Everything else a view or view-model can take part in (a data context, a
// parameterless initialize hook, receiving its bound view, remembering its
// current view) is an optional capability expressed as a small interface and
// probed with a type assertion.
package ui

import (
	"reflect"

	tea "github.com/charmbracelet/bubbletea"
)

// View is the base type every located view must be assignable to.
type View interface {
	tea.Model
	ActionTargetHolder
}

// ActionTargetHolder exposes the slot read by the declarative action
// subsystem to resolve handlers.
type ActionTargetHolder interface {
	ActionTarget() any
	SetActionTarget(target any)
}

// DataContextSetter is implemented by views with a writable data context.
type DataContextSetter interface {
	SetDataContext(dataContext any)
}

// DataContextGetter is implemented by views with a readable data context.
type DataContextGetter interface {
	DataContext() any
}

// Initializer is the conventional parameterless initialize hook invoked
// once after a view is instantiated.
type Initializer interface {
	InitializeComponent()
}

// ViewAware view-models receive a reference to their bound view.
type ViewAware interface {
	AttachView(view any)
}

// HasView view-models remember the view they were last bound to.
type HasView interface {
	CurrentView() any
}

// ViewType is the reflect.Type of the View interface.
var ViewType = reflect.TypeFor[View]()

// IsNil reports whether v is nil or a nil pointer, map, slice, func, chan
// or interface wrapped in a non-nil interface value.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// Same reports whether a and b refer to the same object. Pointer-like values
// compare by address, comparable values with ==, and anything else is never
// the same.
//
// Pointers to distinct zero-size values may share an address in Go, so two
// instances of an empty struct type can report as the same. View-models
// that are swapped for fresh instances need at least one field.
func Same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if ta.Comparable() {
		return safeEqual(a, b)
	}
	return false
}

// safeEqual guards against structs whose dynamic fields are not comparable.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
