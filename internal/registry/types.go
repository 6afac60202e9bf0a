package registry

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/specialistvlad/viewbind/internal/naming"
)

// TypeDescriptor is the catalog entry of a registered type.
type TypeDescriptor struct {
	FullName  string
	Namespace string
	Module    string
	Type      reflect.Type
	// New optionally constructs an instance. When nil, factories fall back
	// to reflect.New.
	New func() any
}

// String implements fmt.Stringer.
func (d *TypeDescriptor) String() string {
	if d.Module == "" {
		return d.FullName
	}
	return fmt.Sprintf("%s (module %s)", d.FullName, d.Module)
}

// RegisterType registers t under namespace. Registering a type twice,
// registering an unnamed or generic type, or registering after Seal panics.
func (r *Registry) RegisterType(namespace string, t reflect.Type) *TypeDescriptor {
	return r.register(namespace, t, nil)
}

// RegisterConstructor registers t under namespace together with a
// constructor used by the default instance factory.
func (r *Registry) RegisterConstructor(namespace string, t reflect.Type, newFn func() any) *TypeDescriptor {
	if newFn == nil {
		panic(fmt.Sprintf("nil constructor for type '%s'", naming.Join(namespace, typeName(t))))
	}
	return r.register(namespace, t, newFn)
}

// Register registers T under namespace.
func Register[T any](r *Registry, namespace string) *TypeDescriptor {
	return r.RegisterType(namespace, reflect.TypeFor[T]())
}

// RegisterWith registers T under namespace with a constructor.
func RegisterWith[T any](r *Registry, namespace string, newFn func() any) *TypeDescriptor {
	return r.RegisterConstructor(namespace, reflect.TypeFor[T](), newFn)
}

func (r *Registry) register(namespace string, t reflect.Type, newFn func() any) *TypeDescriptor {
	if r.sealed {
		panic(fmt.Sprintf("registry is sealed, cannot register '%s'", naming.Join(namespace, typeName(t))))
	}
	if t == nil {
		panic("cannot register a nil type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		panic(fmt.Sprintf("cannot register unnamed type '%s'", t.String()))
	}
	// Type arguments carry dotted package paths, which would break the
	// namespace split of the full name.
	if strings.ContainsRune(t.Name(), '[') {
		panic(fmt.Sprintf("cannot register generic type '%s'", t.String()))
	}
	if existing, exists := r.byType[t]; exists {
		panic(fmt.Sprintf("type '%s' already registered as '%s'", t.String(), existing.FullName))
	}

	d := &TypeDescriptor{
		FullName:  naming.Join(namespace, t.Name()),
		Namespace: namespace,
		Module:    r.current,
		Type:      t,
		New:       newFn,
	}
	r.byType[t] = d
	r.byName[d.FullName] = append(r.byName[d.FullName], d)
	r.ordered = append(r.ordered, d)
	return d
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name()
}
