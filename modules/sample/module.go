// Package sample is a small assembly with one counter widget. Its
// view-model lives in Sample.ViewModels and its view in Sample.Views, so it
// resolves through the namespace map.
package sample

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/internal/ui"
)

const (
	viewModelsNamespace = "Sample.ViewModels"
	viewsNamespace      = "Sample.Views"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "sample" }

// Register registers the widget view-model and view.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterWith[WidgetViewModel](r, viewModelsNamespace, func() any {
		return NewWidgetViewModel("Widget")
	})
	registry.Register[WidgetView](r, viewsNamespace)
}

// WidgetViewModel is a counter. It remembers the view it was bound to so
// navigating back to it reuses the same view.
type WidgetViewModel struct {
	Title string
	Count int
	view  any
}

// NewWidgetViewModel creates a counter titled title.
func NewWidgetViewModel(title string) *WidgetViewModel {
	return &WidgetViewModel{Title: title}
}

// Increment is bound to the "+" key of the view.
func (vm *WidgetViewModel) Increment() { vm.Count++ }

// Decrement is bound to the "-" key of the view.
func (vm *WidgetViewModel) Decrement() { vm.Count-- }

// AttachView implements ui.ViewAware.
func (vm *WidgetViewModel) AttachView(view any) { vm.view = view }

// CurrentView implements ui.HasView.
func (vm *WidgetViewModel) CurrentView() any { return vm.view }

// counter is the action surface the widget view resolves key presses
// against.
type counter interface {
	Increment()
	Decrement()
}

type widgetKeys struct {
	Increment key.Binding
	Decrement key.Binding
}

// WidgetView renders a WidgetViewModel.
type WidgetView struct {
	ui.Element
	ui.DataContextSlot

	keys  widgetKeys
	title lipgloss.Style
	value lipgloss.Style
}

// InitializeComponent builds key bindings and styles.
func (v *WidgetView) InitializeComponent() {
	v.keys = widgetKeys{
		Increment: key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		Decrement: key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrement")),
	}
	v.title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	v.value = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder())
}

// Init implements tea.Model.
func (v *WidgetView) Init() tea.Cmd { return nil }

// Update dispatches key presses to the action target.
func (v *WidgetView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	target, ok := v.ActionTarget().(counter)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(keyMsg, v.keys.Increment):
		target.Increment()
	case key.Matches(keyMsg, v.keys.Decrement):
		target.Decrement()
	}
	return v, nil
}

// View implements tea.Model.
func (v *WidgetView) View() string {
	vm, ok := v.DataContext().(*WidgetViewModel)
	if !ok {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		v.title.Render(vm.Title),
		v.value.Render(fmt.Sprintf("%d", vm.Count)),
	)
}

// ShortHelp lists the widget's key bindings.
func (v *WidgetView) ShortHelp() []key.Binding {
	return []key.Binding{v.keys.Increment, v.keys.Decrement}
}
