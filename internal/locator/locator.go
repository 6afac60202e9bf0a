// Package locator finds the view type that belongs to a view-model type.
//
// Resolution asks the naming resolver for candidate names and searches the
// sealed type catalog for exactly one concrete type assignable to ui.View.
// Catalog lookups are cached per candidate name; because the registry is
// sealed before the locator is built, the cache never goes stale.
package locator

import (
	"context"
	"reflect"

	"github.com/agnivade/levenshtein"
	gocache "github.com/patrickmn/go-cache"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/naming"
	"github.com/specialistvlad/viewbind/internal/registry"
	"github.com/specialistvlad/viewbind/internal/ui"
)

// Locator resolves view-model types to view type descriptors.
type Locator struct {
	registry *registry.Registry
	resolver *naming.Resolver
	// cache maps candidate name -> []*registry.TypeDescriptor.
	cache *gocache.Cache
	// bindings is filled by ValidateBindings with every registered
	// view-model that resolved successfully.
	bindings map[reflect.Type]*registry.TypeDescriptor
}

// New creates a Locator over reg, sealing it.
func New(reg *registry.Registry, resolver *naming.Resolver) *Locator {
	reg.Seal()
	return &Locator{
		registry: reg,
		resolver: resolver,
		// No cleanup interval: entries never expire, so no janitor goroutine.
		cache:    gocache.New(gocache.NoExpiration, 0),
		bindings: make(map[reflect.Type]*registry.TypeDescriptor),
	}
}

// Registry returns the catalog the locator searches.
func (l *Locator) Registry() *registry.Registry {
	return l.registry
}

// LocateViewType returns the view type for vmType. It fails with a
// *ViewNotFoundError when no single type matches and with a
// *ViewNotInstantiableError when the match cannot be used as a view.
func (l *Locator) LocateViewType(ctx context.Context, vmType reflect.Type) (*registry.TypeDescriptor, error) {
	if vmType == nil {
		return nil, &ViewNotFoundError{ViewModel: "<nil>"}
	}
	if vmType.Kind() == reflect.Pointer {
		vmType = vmType.Elem()
	}
	if d, ok := l.bindings[vmType]; ok {
		return d, nil
	}
	return l.locate(ctx, l.registry.FullName(vmType), vmType)
}

// LocateByName resolves a view for a view-model given by its
// fully-qualified name. The name need not be registered.
func (l *Locator) LocateByName(ctx context.Context, vmName string) (*registry.TypeDescriptor, error) {
	var self reflect.Type
	if found := l.registry.Lookup(vmName); len(found) == 1 {
		self = found[0].Type
		if d, ok := l.bindings[self]; ok {
			return d, nil
		}
	}
	return l.locate(ctx, vmName, self)
}

// Candidates returns the candidate view names for a view-model name.
func (l *Locator) Candidates(vmName string) ([]string, error) {
	return l.resolver.ResolveCandidateNames(vmName)
}

func (l *Locator) locate(ctx context.Context, vmName string, self reflect.Type) (*registry.TypeDescriptor, error) {
	logger := ctxlog.FromContext(ctx)

	candidates, err := l.resolver.ResolveCandidateNames(vmName)
	if err != nil {
		logger.Debug("View-model name rejected by naming rules.", "view_model", vmName, "error", err)
		return nil, &ViewNotFoundError{ViewModel: vmName, Err: err}
	}

	for _, candidate := range candidates {
		matches := l.lookup(candidate, self)
		switch len(matches) {
		case 0:
			logger.Debug("No type matches candidate view name.", "view_model", vmName, "candidate", candidate)
			continue
		case 1:
			view := matches[0]
			if err := checkInstantiable(vmName, view); err != nil {
				return nil, err
			}
			logger.Debug("View located.", "view_model", vmName, "view", view.FullName, "module", view.Module)
			return view, nil
		default:
			ambiguous := make([]string, len(matches))
			for i, m := range matches {
				ambiguous[i] = m.String()
			}
			return nil, &ViewNotFoundError{ViewModel: vmName, Candidates: candidates, Ambiguous: ambiguous}
		}
	}

	return nil, &ViewNotFoundError{
		ViewModel:  vmName,
		Candidates: candidates,
		Suggestion: l.suggest(vmName, candidates),
	}
}

// lookup returns the catalog entries named candidate, excluding self: a
// view-model is never its own view.
func (l *Locator) lookup(candidate string, self reflect.Type) []*registry.TypeDescriptor {
	var all []*registry.TypeDescriptor
	if cached, found := l.cache.Get(candidate); found {
		all, _ = cached.([]*registry.TypeDescriptor)
	} else {
		all = l.registry.Lookup(candidate)
		if all == nil {
			all = []*registry.TypeDescriptor{}
		}
		l.cache.Set(candidate, all, gocache.NoExpiration)
	}

	out := make([]*registry.TypeDescriptor, 0, len(all))
	for _, d := range all {
		if self != nil && d.Type == self {
			continue
		}
		out = append(out, d)
	}
	return out
}

// suggest returns the registered name closest to any candidate, provided it
// is within half the candidate's length.
func (l *Locator) suggest(vmName string, candidates []string) string {
	best, bestDist := "", -1
	for _, name := range l.registry.Names() {
		if name == vmName {
			continue
		}
		for _, candidate := range candidates {
			dist := levenshtein.ComputeDistance(candidate, name)
			if dist > len(candidate)/2 {
				continue
			}
			if bestDist < 0 || dist < bestDist {
				best, bestDist = name, dist
			}
		}
	}
	return best
}

func checkInstantiable(vmName string, view *registry.TypeDescriptor) error {
	t := view.Type
	fail := func(reason Reason) error {
		return &ViewNotInstantiableError{ViewModel: vmName, View: view.FullName, Type: t, Reason: reason}
	}

	switch t.Kind() {
	case reflect.Interface:
		return fail(ReasonInterface)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer, reflect.Invalid:
		return fail(ReasonAbstract)
	}
	if !t.Implements(ui.ViewType) && !reflect.PointerTo(t).Implements(ui.ViewType) {
		return fail(ReasonNotAssignable)
	}
	return nil
}
