// Package shell is the root assembly: a menu of pages next to a region
// that displays the selected page's view.
package shell

import (
	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/modules/docs"
	"github.com/specialistvlad/viewbind/modules/sample"
)

const (
	viewModelsNamespace = "Shell.ViewModels"
	viewsNamespace      = "Shell.Views"
)

// MainRegion is the name of the region pages are shown in.
const MainRegion = "main"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "shell" }

// Register registers the shell view-model and view.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterWith[ShellViewModel](r, viewModelsNamespace, func() any {
		return NewShellViewModel(
			Page{Title: "Counter", Model: sample.NewWidgetViewModel("Counter")},
			Page{Title: "About", Model: docs.NewAboutViewModel()},
		)
	})
	registry.Register[ShellView](r, viewsNamespace)
}
