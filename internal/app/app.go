package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/viewbind/internal/binder"
	"github.com/specialistvlad/viewbind/internal/config"
	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/factory"
	"github.com/specialistvlad/viewbind/internal/host"
	"github.com/specialistvlad/viewbind/internal/locator"
	"github.com/specialistvlad/viewbind/internal/naming"
	"github.com/specialistvlad/viewbind/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	ctx        context.Context
	logger     *slog.Logger
	config     *config.Model
	assemblies []registry.Module
	registry   *registry.Registry
	locator    *locator.Locator
	factory    factory.InstanceFactory
	binder     *binder.Binder
	observer   *host.Observer
	// validation holds the startup binding failures of a lenient app.
	validation error
}

// NewApp is the constructor for the main application. It loads the
// configuration, registers the configured assemblies, seals the catalog and
// validates every view binding. With no modules given, the compiled-in
// assemblies are used.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model := &config.Model{}
	if loader != nil {
		loaded, err := loader.Load(ctx, cfg.ConfigPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		model.Merge(loaded)
	}
	applyOverrides(model, cfg)
	logger.Debug("Configuration loaded and translated into unified model.", "startup", model.Startup, "strict_naming", model.Naming.IsStrict())

	if len(modules) == 0 {
		modules = coreModules
	}
	assemblies, err := selectAssemblies(modules, model.Assemblies)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	reg.Load(ctx, assemblies...)
	logger.Debug("All assemblies registered.", "count", len(assemblies), "types", reg.Len())

	resolver := naming.NewResolver(naming.Rules{
		Strict:       model.Naming.IsStrict(),
		NamespaceMap: model.Naming.NamespaceMap,
	})
	loc := locator.New(reg, resolver)

	a := &App{
		outW:       outW,
		ctx:        ctx,
		logger:     logger,
		config:     model,
		assemblies: assemblies,
		registry:   reg,
		locator:    loc,
		factory:    factory.Default(reg),
	}

	if err := loc.ValidateBindings(ctx); err != nil {
		if !cfg.Lenient {
			return nil, err
		}
		logger.Warn("View binding validation failed.", "error", err)
		a.validation = err
	}

	a.binder = binder.New(loc, a.factory)
	a.observer = host.NewObserver(a.binder)
	return a, nil
}

func applyOverrides(model *config.Model, cfg *Config) {
	if cfg.StrictNaming {
		strict := true
		model.Naming.Strict = &strict
	}
	if cfg.Startup != "" {
		model.Startup = cfg.Startup
	}
	if model.Startup == "" {
		model.Startup = defaultStartup
	}
}

// selectAssemblies orders modules by names. Nil names keep every module.
func selectAssemblies(modules []registry.Module, names []string) ([]registry.Module, error) {
	if names == nil {
		return modules, nil
	}

	byName := make(map[string]registry.Module, len(modules))
	for _, m := range modules {
		byName[m.Name()] = m
	}

	var errs []error
	selected := make([]registry.Module, 0, len(names))
	for _, name := range names {
		m, ok := byName[name]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown assembly '%s'", name))
			continue
		}
		selected = append(selected, m)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid assemblies: %w", errors.Join(errs...))
	}
	return selected, nil
}

// Context returns the app's root context, carrying its logger.
func (a *App) Context() context.Context { return a.ctx }

// Config returns the merged configuration model.
func (a *App) Config() *config.Model { return a.config }

// Assemblies returns the loaded assemblies in search order.
func (a *App) Assemblies() []registry.Module { return a.assemblies }

// Registry returns the application's sealed type catalog.
func (a *App) Registry() *registry.Registry { return a.registry }

// Locator returns the view locator.
func (a *App) Locator() *locator.Locator { return a.locator }

// Factory returns the instance factory.
func (a *App) Factory() factory.InstanceFactory { return a.factory }

// Binder returns the view binder.
func (a *App) Binder() *binder.Binder { return a.binder }

// Observer returns the model-change observer.
func (a *App) Observer() *host.Observer { return a.observer }

// ValidationError returns the binding failures a lenient app started with.
func (a *App) ValidationError() error { return a.validation }
