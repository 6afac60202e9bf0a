// Package host implements the content control that displays a view-model's
// view and the observer that reacts when its model changes.
//
// The observer is a small state machine over the host's content slot:
//
//	same model            -> no-op
//	nil model             -> content cleared (Idle)
//	model with a view     -> that view reused (Bound)
//	anything else         -> located, created and bound (Bound)
//
// It keeps no state of its own, so repeated identical inputs give identical
// results.
package host

import (
	"context"
	"fmt"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
	"github.com/specialistvlad/viewbind/internal/ui"
)

// ContentHost is the content slot the observer writes to.
type ContentHost interface {
	Content() any
	SetContent(content any)
}

// ViewCreator creates and binds the view of a view-model.
type ViewCreator interface {
	CreateAndBindView(ctx context.Context, vm any) (any, error)
}

// State of a content host.
type State int

const (
	// Idle hosts display nothing.
	Idle State = iota
	// Bound hosts display a view.
	Bound
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Bound:
		return "Bound"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StateOf derives the state of h from its content slot.
func StateOf(h ContentHost) State {
	if ui.IsNil(h.Content()) {
		return Idle
	}
	return Bound
}

// Observer reacts to model changes on content hosts.
type Observer struct {
	creator ViewCreator
}

// NewObserver creates an Observer that builds views with creator.
func NewObserver(creator ViewCreator) *Observer {
	return &Observer{creator: creator}
}

// OnModelChanged runs one transition for h. When view creation fails the
// error is returned and the content slot is left as it was.
func (o *Observer) OnModelChanged(ctx context.Context, h ContentHost, oldModel, newModel any) error {
	logger := ctxlog.FromContext(ctx)

	if ui.Same(oldModel, newModel) {
		logger.Debug("Model unchanged, nothing to do.")
		return nil
	}

	if ui.IsNil(newModel) {
		h.SetContent(nil)
		logger.Debug("Model cleared.", "state", Idle)
		return nil
	}

	if withView, ok := newModel.(ui.HasView); ok {
		if existing := withView.CurrentView(); !ui.IsNil(existing) {
			h.SetContent(existing)
			logger.Debug("Reusing view of model.", "view_model", fmt.Sprintf("%T", newModel), "view", fmt.Sprintf("%T", existing), "state", Bound)
			return nil
		}
	}

	view, err := o.creator.CreateAndBindView(ctx, newModel)
	if err != nil {
		logger.Error("Failed to create view for model.", "view_model", fmt.Sprintf("%T", newModel), "error", err)
		return err
	}

	h.SetContent(view)
	logger.Debug("Model bound.", "view_model", fmt.Sprintf("%T", newModel), "view", fmt.Sprintf("%T", view), "state", Bound)
	return nil
}
