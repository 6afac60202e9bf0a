package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/host"
)

// RootRegion is the name of the host the startup view-model is shown in.
const RootRegion = "root"

// StartupModel instantiates the configured startup view-model.
func (a *App) StartupModel() (any, error) {
	name := a.config.Startup
	found := a.registry.Lookup(name)
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("startup view-model '%s' is not registered", name)
	case 1:
	default:
		return nil, fmt.Errorf("startup view-model '%s' is ambiguous: registered %d times", name, len(found))
	}

	vm := a.factory.GetInstance(found[0].Type)
	if vm == nil {
		return nil, fmt.Errorf("instance factory returned nil for startup view-model '%s'", name)
	}
	return vm, nil
}

// NewRootHost returns a host showing the startup view-model.
func (a *App) NewRootHost(ctx context.Context) (*host.Host, error) {
	vm, err := a.StartupModel()
	if err != nil {
		return nil, err
	}
	root := host.New(ctx, RootRegion, a.observer)
	if err := root.SetModel(ctx, vm); err != nil {
		return nil, fmt.Errorf("failed to show startup view-model '%s': %w", a.config.Startup, err)
	}
	return root, nil
}

// Run shows the startup view-model and runs the terminal program until it
// quits or ctx is cancelled.
func (a *App) Run(ctx context.Context, opts ...tea.ProgramOption) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	root, err := a.NewRootHost(ctx)
	if err != nil {
		return err
	}
	a.logger.Info("Starting UI.", "startup", a.config.Startup, "view", fmt.Sprintf("%T", root.Content()))

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(root, opts...).Run(); err != nil {
		return fmt.Errorf("ui failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
