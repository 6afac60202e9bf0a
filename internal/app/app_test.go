package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/viewbind/internal/config"
	"github.com/specialistvlad/viewbind/internal/locator"
	"github.com/specialistvlad/viewbind/internal/naming"
	"github.com/specialistvlad/viewbind/internal/testutil"
	"github.com/specialistvlad/viewbind/modules/docs"
	"github.com/specialistvlad/viewbind/modules/sample"
	"github.com/specialistvlad/viewbind/modules/shell"
)

// staticLoader returns a fixed model.
type staticLoader struct {
	model *config.Model
	err   error
}

func (l *staticLoader) Load(context.Context, ...string) (*config.Model, error) {
	return l.model, l.err
}

func TestNewApp_CoreModules(t *testing.T) {
	a, logs := SetupAppTest(t, nil, nil)

	names := make([]string, len(a.Assemblies()))
	for i, m := range a.Assemblies() {
		names[i] = m.Name()
	}
	assert.Equal(t, []string{"shell", "sample", "docs"}, names)
	assert.True(t, a.Registry().Sealed())
	assert.Equal(t, defaultStartup, a.Config().Startup)
	assert.NoError(t, a.ValidationError())

	assert.Equal(t, map[string]string{
		"Shell.ViewModels.ShellViewModel":   "Shell.Views.ShellView",
		"Sample.ViewModels.WidgetViewModel": "Sample.Views.WidgetView",
		"Docs.AboutViewModel":               "Docs.AboutView",
	}, a.Locator().Bindings())

	testutil.AssertLogged(t, logs.String(), "All assemblies registered.", "count=3")
}

func TestNewApp_SelectsAssembliesInConfiguredOrder(t *testing.T) {
	loader := &staticLoader{model: &config.Model{
		Assemblies: []string{"docs", "sample"},
		Startup:    "Docs.AboutViewModel",
	}}
	a, _ := SetupAppTest(t, nil, loader)

	require.Len(t, a.Assemblies(), 2)
	assert.Equal(t, "docs", a.Assemblies()[0].Name())
	assert.Equal(t, "sample", a.Assemblies()[1].Name())
	assert.Empty(t, a.Registry().Lookup("Shell.ViewModels.ShellViewModel"))

	vm, err := a.StartupModel()
	require.NoError(t, err)
	assert.IsType(t, &docs.AboutViewModel{}, vm)
}

func TestNewApp_Errors(t *testing.T) {
	boom := errors.New("boom")

	testCases := []struct {
		name    string
		loader  config.Loader
		cfg     Config
		modules bool
		wantErr string
		wantIs  error
	}{
		{
			name:    "loader failure",
			loader:  &staticLoader{err: boom},
			wantErr: "failed to load configuration",
			wantIs:  boom,
		},
		{
			name:    "unknown assembly",
			loader:  &staticLoader{model: &config.Model{Assemblies: []string{"shell", "nope"}}},
			wantErr: "unknown assembly 'nope'",
		},
		{
			name:    "invalid bindings",
			modules: true,
			wantErr: "view binding validation failed",
			wantIs:  locator.ErrViewNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			var err error
			if tc.modules {
				_, err = NewApp(&out, &tc.cfg, tc.loader, testutil.ValidModule(), testutil.InvalidModule())
			} else {
				_, err = NewApp(&out, &tc.cfg, tc.loader)
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			if tc.wantIs != nil {
				assert.ErrorIs(t, err, tc.wantIs)
			}
		})
	}
}

func TestNewApp_StrictNamingOverride(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{StrictNaming: true}, &staticLoader{model: &config.Model{}})
	assert.True(t, a.Config().Naming.IsStrict())

	var out bytes.Buffer
	err := a.Resolve(&out, "Sample.Views.WidgetView")
	assert.ErrorIs(t, err, naming.ErrNotViewModel)
}

func TestList(t *testing.T) {
	a, _ := SetupAppTest(t, nil, nil)

	var out bytes.Buffer
	require.NoError(t, a.List(&out))

	for _, want := range []string{"VIEW-MODEL", "Shell.ViewModels.ShellViewModel", "Sample.Views.WidgetView", "Docs.AboutView", "ok"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestList_LenientReportsFailures(t *testing.T) {
	cfg := &Config{Lenient: true, Startup: "Tests.PlainViewModel"}
	a, logs := SetupAppTest(t, cfg, nil, testutil.ValidModule(), testutil.InvalidModule())
	require.Error(t, a.ValidationError())
	testutil.AssertLogged(t, logs.String(), "View binding validation failed.")

	var out bytes.Buffer
	err := a.List(&out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "4 of 8 view-models have no usable view")

	assert.Contains(t, out.String(), "not found")
	assert.Contains(t, out.String(), "view is an interface")
	assert.Contains(t, out.String(), "view does not implement ui.View")
	assert.Contains(t, out.String(), "Tests.PlainView")
}

func TestResolve(t *testing.T) {
	a, _ := SetupAppTest(t, nil, nil)

	var out bytes.Buffer
	require.NoError(t, a.Resolve(&out, "Sample.ViewModels.WidgetViewModel"))

	assert.Equal(t, "view-model: Sample.ViewModels.WidgetViewModel\n"+
		"candidate 1: Sample.ViewModels.WidgetView\n"+
		"candidate 2: Sample.Views.WidgetView\n"+
		"view: Sample.Views.WidgetView (module sample)\n", out.String())

	out.Reset()
	err := a.Resolve(&out, "Sample.ViewModels.GadgetViewModel")
	require.ErrorIs(t, err, locator.ErrViewNotFound)
	assert.NotContains(t, out.String(), "view: ")
}

func TestStartupModel_Unregistered(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{Startup: "Missing.ViewModels.MissingViewModel"}, nil)

	_, err := a.StartupModel()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not registered")

	_, err = a.NewRootHost(a.Context())
	assert.Error(t, err)
}

func TestEndToEnd_ShellNavigation(t *testing.T) {
	a, _ := SetupAppTest(t, nil, nil)
	ctx := a.Context()

	root, err := a.NewRootHost(ctx)
	require.NoError(t, err)

	shellView, ok := root.Content().(*shell.ShellView)
	require.True(t, ok, "root content is %T", root.Content())
	shellVM, ok := shellView.DataContext().(*shell.ShellViewModel)
	require.True(t, ok)
	assert.Same(t, shellVM, shellView.ActionTarget())
	require.NotNil(t, shellView.Region())

	// Init opens the first page in the main region.
	drain(t, root, root.Init())
	widget, ok := shellView.Region().Content().(*sample.WidgetView)
	require.True(t, ok, "region content is %T", shellView.Region().Content())

	drain(t, root, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}} })
	counter := widget.DataContext().(*sample.WidgetViewModel)
	assert.Equal(t, 1, counter.Count)
	assert.Contains(t, root.View(), "Counter")

	// Open the about page, then come back to the counter.
	drain(t, root, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyDown} })
	drain(t, root, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} })
	_, ok = shellView.Region().Content().(*docs.AboutView)
	require.True(t, ok, "region content is %T", shellView.Region().Content())
	assert.Contains(t, root.View(), "viewbind")

	drain(t, root, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyUp} })
	drain(t, root, func() tea.Msg { return tea.KeyMsg{Type: tea.KeyEnter} })
	assert.Same(t, widget, shellView.Region().Content(), "the counter's view is reused")
	assert.Equal(t, 1, counter.Count)
}

func TestRun_QuitsOnKey(t *testing.T) {
	a, logs := SetupAppTest(t, nil, nil)

	var screen bytes.Buffer
	err := a.Run(context.Background(),
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(&screen),
		tea.WithoutSignalHandler(),
	)
	require.NoError(t, err)
	assert.Contains(t, screen.String(), "Counter")
	testutil.AssertLogged(t, logs.String(), "Starting UI.", "view=*shell.ShellView")
}

func TestRun_StartupFailure(t *testing.T) {
	a, _ := SetupAppTest(t, &Config{Startup: "Missing.ViewModels.MissingViewModel"}, nil)

	err := a.Run(context.Background(), tea.WithInput(strings.NewReader("")), tea.WithOutput(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not registered")
}

// drain runs cmd and feeds the resulting messages back into m until no
// command is left. Batches and quit are not expected here.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 10, "too many chained commands")
		msg := cmd()
		if msg == nil {
			return
		}
		_, cmd = m.Update(msg)
	}
}
