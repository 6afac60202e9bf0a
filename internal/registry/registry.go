package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
)

// Module is the interface that every assembly of views and view-models must
// implement to be loaded into the catalog.
type Module interface {
	// Name identifies the module in configuration ("assemblies" list).
	Name() string
	// Register adds the module's types to the registry.
	Register(r *Registry)
}

// Registry holds the registered types of a single application instance.
type Registry struct {
	byName  map[string][]*TypeDescriptor
	byType  map[reflect.Type]*TypeDescriptor
	ordered []*TypeDescriptor
	modules []string

	// current is the module whose Register call is in progress.
	current string
	sealed  bool
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string][]*TypeDescriptor),
		byType: make(map[reflect.Type]*TypeDescriptor),
	}
}

// Load registers each module in order. Loading a module name twice panics.
func (r *Registry) Load(ctx context.Context, modules ...Module) {
	logger := ctxlog.FromContext(ctx)
	for _, mod := range modules {
		name := mod.Name()
		for _, loaded := range r.modules {
			if loaded == name {
				panic(fmt.Sprintf("module '%s' already loaded", name))
			}
		}

		before := len(r.ordered)
		r.current = name
		mod.Register(r)
		r.current = ""
		r.modules = append(r.modules, name)

		logger.Debug("Module registered.", "module", name, "types", len(r.ordered)-before)
	}
}

// Seal freezes the registry. Any later registration panics.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Lookup returns every type registered under fullName, in registration
// order. The returned slice is a copy.
func (r *Registry) Lookup(fullName string) []*TypeDescriptor {
	found := r.byName[fullName]
	if len(found) == 0 {
		return nil
	}
	out := make([]*TypeDescriptor, len(found))
	copy(out, found)
	return out
}

// Describe returns the descriptor of t. Pointer types are resolved to the
// registered element type.
func (r *Registry) Describe(t reflect.Type) (*TypeDescriptor, bool) {
	if t == nil {
		return nil, false
	}
	if d, ok := r.byType[t]; ok {
		return d, true
	}
	if t.Kind() == reflect.Pointer {
		d, ok := r.byType[t.Elem()]
		return d, ok
	}
	return nil, false
}

// FullName returns the registered fully-qualified name of t, falling back to
// the Go package path qualified name for unregistered types.
func (r *Registry) FullName(t reflect.Type) string {
	if d, ok := r.Describe(t); ok {
		return d.FullName
	}
	return GoName(t)
}

// Types returns all descriptors in registration order.
func (r *Registry) Types() []*TypeDescriptor {
	out := make([]*TypeDescriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Names returns the sorted, distinct fully-qualified names in the registry.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Modules returns the loaded module names in load order.
func (r *Registry) Modules() []string {
	out := make([]string, len(r.modules))
	copy(out, r.modules)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.ordered)
}

// GoName returns "<pkgpath>.<Name>" for named types and t.String() for
// anything else. Pointer types are dereferenced once.
func GoName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	if t.Kind() == reflect.Pointer && t.Name() == "" {
		t = t.Elem()
	}
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}
