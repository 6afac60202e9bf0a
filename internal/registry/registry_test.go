package registry

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcModule struct {
	name string
	fn   func(r *Registry)
}

func (m funcModule) Name() string         { return m.name }
func (m funcModule) Register(r *Registry) { m.fn(r) }

type WidgetViewModel struct{}
type WidgetView struct{}
type OtherWidgetView struct{}
type Abstract interface{ Render() string }
type Box[T any] struct{ Item T }

func TestLoad_RegistersModulesInOrder(t *testing.T) {
	reg := New()
	reg.Load(context.Background(),
		funcModule{name: "views", fn: func(r *Registry) {
			Register[WidgetView](r, "Sample.Views")
		}},
		funcModule{name: "viewmodels", fn: func(r *Registry) {
			Register[WidgetViewModel](r, "Sample.ViewModels")
			Register[Abstract](r, "Sample.Views")
		}},
	)

	assert.Equal(t, []string{"views", "viewmodels"}, reg.Modules())
	assert.Equal(t, 3, reg.Len())

	types := reg.Types()
	require.Len(t, types, 3)
	assert.Equal(t, "Sample.Views.WidgetView", types[0].FullName)
	assert.Equal(t, "views", types[0].Module)
	assert.Equal(t, "Sample.ViewModels.WidgetViewModel", types[1].FullName)
	assert.Equal(t, "viewmodels", types[1].Module)
	assert.Equal(t, reflect.Interface, types[2].Type.Kind())

	assert.Equal(t, []string{"Sample.ViewModels.WidgetViewModel", "Sample.Views.Abstract", "Sample.Views.WidgetView"}, reg.Names())
}

func TestLoad_DuplicateModulePanics(t *testing.T) {
	reg := New()
	mod := funcModule{name: "dup", fn: func(*Registry) {}}
	reg.Load(context.Background(), mod)

	assert.PanicsWithValue(t, "module 'dup' already loaded", func() {
		reg.Load(context.Background(), mod)
	})
}

func TestRegisterType_DuplicateTypePanics(t *testing.T) {
	reg := New()
	Register[WidgetView](reg, "Sample.Views")

	assert.Panics(t, func() { Register[WidgetView](reg, "Other.Views") })
	assert.Panics(t, func() { Register[*WidgetView](reg, "Sample.Views") }, "pointer registers its element type")
}

func TestRegisterType_UnnamedTypePanics(t *testing.T) {
	reg := New()
	assert.Panics(t, func() { reg.RegisterType("Sample", reflect.TypeOf(struct{}{})) })
	assert.Panics(t, func() { reg.RegisterType("Sample", nil) })
}

func TestRegisterType_GenericTypePanics(t *testing.T) {
	reg := New()
	assert.Panics(t, func() { Register[Box[WidgetView]](reg, "Sample.Views") })
	assert.Zero(t, reg.Len())
}

func TestRegisterConstructor(t *testing.T) {
	reg := New()
	d := RegisterWith[WidgetView](reg, "Sample.Views", func() any { return &WidgetView{} })

	require.NotNil(t, d.New)
	assert.IsType(t, &WidgetView{}, d.New())
	assert.Panics(t, func() { reg.RegisterConstructor("Sample.Views", reflect.TypeFor[OtherWidgetView](), nil) })
}

func TestSeal_RejectsRegistration(t *testing.T) {
	reg := New()
	reg.Seal()
	require.True(t, reg.Sealed())

	assert.Panics(t, func() { Register[WidgetView](reg, "Sample.Views") })
}

func TestLookup_SameNameDifferentTypes(t *testing.T) {
	type WidgetView struct{}

	reg := New()
	reg.RegisterType("Sample.Views", reflect.TypeFor[registryWidgetView]())
	Register[WidgetView](reg, "Sample.Views")

	got := reg.Lookup("Sample.Views.WidgetView")
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].Type, got[1].Type)

	got[0] = nil
	assert.NotNil(t, reg.Lookup("Sample.Views.WidgetView")[0], "Lookup returns a copy")

	assert.Nil(t, reg.Lookup("Sample.Views.Missing"))
}

// registryWidgetView reaches the package-level WidgetView where a local type shadows it.
type registryWidgetView = WidgetView

func TestDescribeAndFullName(t *testing.T) {
	reg := New()
	Register[WidgetViewModel](reg, "Sample.ViewModels")

	d, ok := reg.Describe(reflect.TypeFor[*WidgetViewModel]())
	require.True(t, ok)
	assert.Equal(t, "Sample.ViewModels.WidgetViewModel", d.FullName)
	assert.Equal(t, "Sample.ViewModels.WidgetViewModel", reg.FullName(reflect.TypeFor[WidgetViewModel]()))

	_, ok = reg.Describe(nil)
	assert.False(t, ok)

	assert.Equal(t,
		"github.com/specialistvlad/viewbind/internal/registry.WidgetView",
		reg.FullName(reflect.TypeFor[*WidgetView]()),
	)
}

func TestGoName(t *testing.T) {
	assert.Equal(t, "<nil>", GoName(nil))
	assert.Equal(t, "int", GoName(reflect.TypeFor[int]()))
	assert.Equal(t, "[]string", GoName(reflect.TypeFor[[]string]()))
	assert.Equal(t, "github.com/specialistvlad/viewbind/internal/registry.WidgetView", GoName(reflect.TypeFor[WidgetView]()))
}

func TestTypeDescriptor_String(t *testing.T) {
	d := &TypeDescriptor{FullName: "Sample.Views.WidgetView", Module: "sample"}
	assert.Equal(t, "Sample.Views.WidgetView (module sample)", d.String())

	d.Module = ""
	assert.Equal(t, "Sample.Views.WidgetView", d.String())
}
