package locator

import (
	"context"
	"reflect"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/naming"
)

// ValidateBindings resolves the view of every registered view-model up
// front, so a missing, ambiguous or unusable view is reported at startup
// instead of at bind time. Successful resolutions are kept for O(1) lookup.
// It must run before the locator is shared.
func (l *Locator) ValidateBindings(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var errs []error
	checked := 0
	for _, d := range l.registry.Types() {
		if d.Type.Kind() == reflect.Interface || !naming.IsViewModelName(d.FullName) {
			continue
		}
		checked++

		view, err := l.locate(ctx, d.FullName, d.Type)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		l.bindings[d.Type] = view
	}

	if len(errs) > 0 {
		return &ValidationError{Errs: errs}
	}
	logger.Debug("View bindings validated.", "view_models", checked, "bound", len(l.bindings))
	return nil
}

// Bindings returns a copy of the validated view-model -> view table keyed
// by view-model full name.
func (l *Locator) Bindings() map[string]string {
	out := make(map[string]string, len(l.bindings))
	for vm, view := range l.bindings {
		out[l.registry.FullName(vm)] = view.FullName
	}
	return out
}
