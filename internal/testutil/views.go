package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/specialistvlad/viewbind/internal/ui"
)

// Namespaces used by the fixture types.
const (
	ViewModelsNamespace = "Tests.ViewModels"
	ViewsNamespace      = "Tests.Views"
	FlatNamespace       = "Tests"
)

// WidgetViewModel resolves to WidgetView through the namespace map.
type WidgetViewModel struct {
	Title string
}

// WidgetView has every optional capability.
type WidgetView struct {
	ui.Element
	ui.DataContextSlot

	Initialized int
}

func (v *WidgetView) InitializeComponent()                { v.Initialized++ }
func (v *WidgetView) Init() tea.Cmd                       { return nil }
func (v *WidgetView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

func (v *WidgetView) View() string {
	if vm, ok := v.DataContext().(*WidgetViewModel); ok {
		return "widget: " + vm.Title
	}
	return "widget"
}

// PlainViewModel resolves to PlainView, which has no data context.
type PlainViewModel struct {
	Name string
}

// PlainView carries only the action-target slot.
type PlainView struct {
	ui.Element
}

func (v *PlainView) Init() tea.Cmd                       { return nil }
func (v *PlainView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *PlainView) View() string                        { return "plain" }

// AwareViewModel records every view attached to it, along with the view's
// action target and data context at the time of the call.
type AwareViewModel struct {
	Attached        []any
	SeenTargets     []any
	SeenDataContext []any
}

// AttachView implements ui.ViewAware.
func (vm *AwareViewModel) AttachView(view any) {
	vm.Attached = append(vm.Attached, view)
	vm.SeenTargets = append(vm.SeenTargets, ui.ActionTarget(view))
	vm.SeenDataContext = append(vm.SeenDataContext, ui.DataContextOf(view))
}

// AwareView is the view of AwareViewModel.
type AwareView struct {
	ui.Element
	ui.DataContextSlot
}

func (v *AwareView) Init() tea.Cmd                       { return nil }
func (v *AwareView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *AwareView) View() string                        { return "aware" }

// RememberingViewModel exposes the view it was last bound to.
type RememberingViewModel struct {
	Existing any
}

// CurrentView implements ui.HasView.
func (vm *RememberingViewModel) CurrentView() any { return vm.Existing }

// RememberingView is the view of RememberingViewModel.
type RememberingView struct {
	ui.Element
	ui.DataContextSlot
}

func (v *RememberingView) Init() tea.Cmd                       { return nil }
func (v *RememberingView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *RememberingView) View() string                        { return "remembering" }

// InterfaceViewModel resolves to an interface.
type InterfaceViewModel struct{}

// InterfaceView cannot be instantiated.
type InterfaceView interface {
	ui.View
}

// AbstractViewModel resolves to a func type.
type AbstractViewModel struct{}

// AbstractView has no usable constructed value.
type AbstractView func() string

// UnassignableViewModel resolves to a struct that is not a ui.View.
type UnassignableViewModel struct{}

// UnassignableView renders but has no action-target slot.
type UnassignableView struct{}

func (v *UnassignableView) Init() tea.Cmd                       { return nil }
func (v *UnassignableView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }
func (v *UnassignableView) View() string                        { return "unassignable" }

// OrphanViewModel has no view.
type OrphanViewModel struct{}

// ValidModule registers view-models whose views all resolve.
func ValidModule() *SimpleModule {
	return &SimpleModule{
		ModuleName: "valid",
		Types: []TypeEntry{
			Entry[WidgetViewModel](ViewModelsNamespace),
			Entry[WidgetView](ViewsNamespace),
			Entry[PlainViewModel](FlatNamespace),
			Entry[PlainView](FlatNamespace),
			Entry[AwareViewModel](FlatNamespace),
			Entry[AwareView](FlatNamespace),
			Entry[RememberingViewModel](FlatNamespace),
			Entry[RememberingView](FlatNamespace),
		},
	}
}

// InvalidModule registers view-models whose views fail to resolve, one per
// failure mode.
func InvalidModule() *SimpleModule {
	return &SimpleModule{
		ModuleName: "invalid",
		Types: []TypeEntry{
			Entry[InterfaceViewModel](FlatNamespace),
			Entry[InterfaceView](FlatNamespace),
			Entry[AbstractViewModel](FlatNamespace),
			Entry[AbstractView](FlatNamespace),
			Entry[UnassignableViewModel](FlatNamespace),
			Entry[UnassignableView](FlatNamespace),
			Entry[OrphanViewModel](FlatNamespace),
		},
	}
}
