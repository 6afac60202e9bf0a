package host

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/specialistvlad/viewbind/internal/ctxlog"
)

// NavigateMsg asks the host named Region to display Model.
type NavigateMsg struct {
	Region string
	Model  any
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(region string, model any) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Region: region, Model: model}
	}
}

// ErrorMsg reports a failed navigation back into the program.
type ErrorMsg struct {
	Region string
	Err    error
}

// RegionOwner is implemented by content that displays nested hosts. It is
// handed the host it is displayed in each time it becomes its content.
type RegionOwner interface {
	AttachRegions(parent *Host)
}

// Host is a content control: a model slot whose changes run the observer
// and a content slot holding the resulting view. It is a Bubble Tea model
// that renders its content.
type Host struct {
	// ctx carries the logger used for transitions started from Update.
	ctx      context.Context
	name     string
	observer *Observer
	model    any
	content  any
}

// New creates an empty root host.
func New(ctx context.Context, name string, observer *Observer) *Host {
	return &Host{ctx: ctx, name: name, observer: observer}
}

// NewRegion creates a nested host sharing h's observer.
func (h *Host) NewRegion(name string) *Host {
	return New(h.ctx, name, h.observer)
}

// Name returns the region name of the host.
func (h *Host) Name() string { return h.name }

// Model returns the model slot.
func (h *Host) Model() any { return h.model }

// Content returns the content slot.
func (h *Host) Content() any { return h.content }

// SetContent implements ContentHost.
func (h *Host) SetContent(content any) { h.content = content }

// State derives the host's state from its content.
func (h *Host) State() State { return StateOf(h) }

// SetModel writes the model slot and runs the observer. If the observer
// fails the previous model is restored so both slots stay consistent.
func (h *Host) SetModel(ctx context.Context, model any) error {
	old := h.model
	h.model = model
	if err := h.observer.OnModelChanged(ctx, h, old, model); err != nil {
		h.model = old
		return err
	}
	if owner, ok := h.content.(RegionOwner); ok {
		owner.AttachRegions(h)
	}
	return nil
}

// Init implements tea.Model.
func (h *Host) Init() tea.Cmd {
	if m, ok := h.content.(tea.Model); ok {
		return m.Init()
	}
	return nil
}

// Update implements tea.Model. Navigation addressed to this host changes
// its model; every other message goes to the content.
func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if nav, ok := msg.(NavigateMsg); ok && nav.Region == h.name {
		if err := h.SetModel(h.ctx, nav.Model); err != nil {
			ctxlog.FromContext(h.ctx).Warn("Navigation failed.", "region", h.name, "error", err)
			return h, func() tea.Msg { return ErrorMsg{Region: h.name, Err: err} }
		}
		return h, h.Init()
	}

	m, ok := h.content.(tea.Model)
	if !ok {
		return h, nil
	}
	next, cmd := m.Update(msg)
	h.content = next
	return h, cmd
}

// View implements tea.Model.
func (h *Host) View() string {
	if m, ok := h.content.(tea.Model); ok {
		return m.View()
	}
	return ""
}
