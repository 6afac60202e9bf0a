package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/specialistvlad/viewbind/internal/host"
	"github.com/specialistvlad/viewbind/internal/ui"
)

// navigator is the action surface the shell view resolves key presses
// against.
type navigator interface {
	Move(delta int)
	Current() *Page
	Fail(err error)
	Clear()
}

type shellKeys struct {
	Up    key.Binding
	Down  key.Binding
	Open  key.Binding
	Help  key.Binding
	Quit  key.Binding
	extra []key.Binding
}

// ShortHelp implements help.KeyMap.
func (k shellKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Up, k.Down, k.Open, k.Help, k.Quit}, k.extra...)
}

// FullHelp implements help.KeyMap.
func (k shellKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Open}, append([]key.Binding{k.Help, k.Quit}, k.extra...)}
}

// pageHelp is implemented by page views that publish key bindings.
type pageHelp interface {
	ShortHelp() []key.Binding
}

// ShellView renders the menu and the main region.
type ShellView struct {
	ui.Element
	ui.DataContextSlot

	region *host.Host
	keys   shellKeys
	help   help.Model

	menu     lipgloss.Style
	selected lipgloss.Style
	status   lipgloss.Style
}

// InitializeComponent builds key bindings and styles.
func (v *ShellView) InitializeComponent() {
	v.keys = shellKeys{
		Up:   key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down: key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Open: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
	v.help = help.New()
	v.menu = lipgloss.NewStyle().Padding(0, 2, 0, 0).Border(lipgloss.NormalBorder(), false, true, false, false)
	v.selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	v.status = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
}

// AttachRegions implements host.RegionOwner.
func (v *ShellView) AttachRegions(parent *host.Host) {
	if v.region == nil {
		v.region = parent.NewRegion(MainRegion)
	}
}

// Region returns the main region, or nil before the view is hosted.
func (v *ShellView) Region() *host.Host { return v.region }

// Init opens the selected page.
func (v *ShellView) Init() tea.Cmd {
	return v.open()
}

func (v *ShellView) open() tea.Cmd {
	nav, ok := v.ActionTarget().(navigator)
	if !ok {
		return nil
	}
	page := nav.Current()
	if page == nil {
		return nil
	}
	nav.Clear()
	return host.Navigate(MainRegion, page.Model)
}

// Update handles menu keys and forwards everything else to the region.
func (v *ShellView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	nav, _ := v.ActionTarget().(navigator)

	switch msg := msg.(type) {
	case host.ErrorMsg:
		if nav != nil && msg.Region == MainRegion {
			nav.Fail(msg.Err)
		}
		return v, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Help):
			v.help.ShowAll = !v.help.ShowAll
			return v, nil
		case nav != nil && key.Matches(msg, v.keys.Up):
			nav.Move(-1)
			return v, nil
		case nav != nil && key.Matches(msg, v.keys.Down):
			nav.Move(1)
			return v, nil
		case key.Matches(msg, v.keys.Open):
			return v, v.open()
		}
	}

	if v.region == nil {
		return v, nil
	}
	_, cmd := v.region.Update(msg)
	return v, cmd
}

// View implements tea.Model.
func (v *ShellView) View() string {
	vm, ok := v.DataContext().(*ShellViewModel)
	if !ok {
		return ""
	}

	items := make([]string, len(vm.Pages))
	for i, p := range vm.Pages {
		if i == vm.Selected {
			items[i] = v.selected.Render("> " + p.Title)
			continue
		}
		items[i] = "  " + p.Title
	}

	var content string
	keys := v.keys
	if v.region != nil {
		content = v.region.View()
		if ph, ok := v.region.Content().(pageHelp); ok {
			keys.extra = ph.ShortHelp()
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, v.menu.Render(strings.Join(items, "\n")), " ", content))
	b.WriteString("\n")
	if vm.Status != "" {
		b.WriteString(v.status.Render(vm.Status))
		b.WriteString("\n")
	}
	b.WriteString(v.help.View(keys))
	return b.String()
}
