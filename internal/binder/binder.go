// Package binder creates views for view-models and wires the two together.
package binder

import (
	"context"
	"fmt"
	"reflect"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/factory"
	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/internal/ui"
)

// Locator finds the view type of a view-model type.
type Locator interface {
	LocateViewType(ctx context.Context, vmType reflect.Type) (*registry.TypeDescriptor, error)
}

// Binder composes locate, instantiate and bind.
type Binder struct {
	locator Locator
	factory factory.InstanceFactory
}

// New creates a Binder.
func New(locator Locator, f factory.InstanceFactory) *Binder {
	return &Binder{locator: locator, factory: f}
}

// CreateAndBindView locates the view type of vm, instantiates it through the
// instance factory, runs its initialize hook and binds it to vm. Locator
// failures are returned before anything is instantiated.
func (b *Binder) CreateAndBindView(ctx context.Context, vm any) (any, error) {
	logger := ctxlog.FromContext(ctx)

	desc, err := b.locator.LocateViewType(ctx, reflect.TypeOf(vm))
	if err != nil {
		return nil, err
	}

	view := b.factory.GetInstance(desc.Type)
	if view == nil {
		logger.Warn("Instance factory returned nil view.", "view", desc.FullName)
	}

	if init, ok := view.(ui.Initializer); ok && !ui.IsNil(view) {
		init.InitializeComponent()
	}

	if err := b.BindViewToModel(ctx, view, vm); err != nil {
		return nil, fmt.Errorf("binding view '%s': %w", desc.FullName, err)
	}
	return view, nil
}

// BindViewToModel makes vm the view's action target and, when the view has
// one, its data context, then hands the view to a view-aware vm.
func (b *Binder) BindViewToModel(ctx context.Context, view, vm any) error {
	logger := ctxlog.FromContext(ctx)

	if err := ui.SetActionTarget(view, vm); err != nil {
		return err
	}

	hasDataContext, err := ui.SetDataContext(view, vm)
	if err != nil {
		return err
	}

	aware, isAware := vm.(ui.ViewAware)
	if isAware && !ui.IsNil(vm) {
		aware.AttachView(view)
	}

	logger.Debug("View bound to model.",
		"view", fmt.Sprintf("%T", view),
		"view_id", ui.ElementID(view),
		"view_model", fmt.Sprintf("%T", vm),
		"data_context", hasDataContext,
		"view_aware", isAware,
	)
	return nil
}
