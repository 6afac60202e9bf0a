// Package docs is an assembly holding the about page, rendered from
// markdown.
package docs

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/internal/ui"
)

const namespace = "Docs"

// wrapWidth is the word wrap width of rendered pages.
const wrapWidth = 72

const aboutMarkdown = `# viewbind

Views are found **by name**: a view-model called ` + "`WidgetViewModel`" + ` is
shown by the view called ` + "`WidgetView`" + `.

- the view's data context is its view-model
- key presses are dispatched to the view-model
- view-models that ask for it get a reference to their view
`

// noMarginStyle removes the document margin added by the default styles.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Module implements the registry.Module interface for this package.
type Module struct{}

// Name implements registry.Module.
func (m *Module) Name() string { return "docs" }

// Register registers the about page.
func (m *Module) Register(r *registry.Registry) {
	registry.RegisterWith[AboutViewModel](r, namespace, func() any {
		return NewAboutViewModel()
	})
	registry.Register[AboutView](r, namespace)
}

// AboutViewModel holds the markdown source of a page.
type AboutViewModel struct {
	Markdown string
}

// AboutView renders its data context's markdown with glamour.
type AboutView struct {
	ui.Element
	ui.DataContextSlot

	renderer *glamour.TermRenderer
	source   string
	rendered string
}

// InitializeComponent creates the markdown renderer. Without one the view
// falls back to the raw markdown.
func (v *AboutView) InitializeComponent() {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(wrapWidth),
	)
	if err == nil {
		v.renderer = r
	}
}

// Init implements tea.Model.
func (v *AboutView) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (v *AboutView) Update(tea.Msg) (tea.Model, tea.Cmd) { return v, nil }

// View implements tea.Model. The rendered page is cached until the
// markdown changes.
func (v *AboutView) View() string {
	vm, ok := v.DataContext().(*AboutViewModel)
	if !ok {
		return ""
	}
	if vm.Markdown == v.source && v.rendered != "" {
		return v.rendered
	}

	v.source = vm.Markdown
	v.rendered = vm.Markdown
	if v.renderer != nil {
		if out, err := v.renderer.Render(vm.Markdown); err == nil {
			v.rendered = strings.TrimRight(out, "\n")
		}
	}
	return v.rendered
}

// NewAboutViewModel returns the about page.
func NewAboutViewModel() *AboutViewModel {
	return &AboutViewModel{Markdown: aboutMarkdown}
}
