package app

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/specialistvlad/viewbind/internal/locator"
	"github.com/specialistvlad/viewbind/internal/naming"
)

// Binding is one row of the binding report.
type Binding struct {
	ViewModel string
	View      string
	Module    string
	Err       error
}

// Bindings resolves the view of every registered view-model, in
// registration order.
func (a *App) Bindings() []Binding {
	var out []Binding
	for _, d := range a.registry.Types() {
		if !naming.IsViewModelName(d.FullName) {
			continue
		}
		b := Binding{ViewModel: d.FullName, Module: d.Module}
		view, err := a.locator.LocateViewType(a.ctx, d.Type)
		if err != nil {
			b.Err = err
		} else {
			b.View = view.FullName
		}
		out = append(out, b)
	}
	return out
}

// List writes the binding report as a table to w. It fails when any
// view-model has no usable view.
func (a *App) List(w io.Writer) error {
	bindings := a.Bindings()

	header := lipgloss.NewStyle().Bold(true)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return lipgloss.NewStyle()
		}).
		Headers("VIEW-MODEL", "VIEW", "MODULE", "STATUS")

	failed := 0
	for _, b := range bindings {
		status := "ok"
		view := b.View
		if b.Err != nil {
			failed++
			status = statusOf(b.Err)
			view = "-"
		}
		t.Row(b.ViewModel, view, b.Module, status)
	}

	if _, err := fmt.Fprintln(w, t.Render()); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d view-models have no usable view", failed, len(bindings))
	}
	return nil
}

func statusOf(err error) string {
	var notInstantiable *locator.ViewNotInstantiableError
	switch {
	case errors.As(err, &notInstantiable):
		return "view " + notInstantiable.Reason.String()
	case errors.Is(err, locator.ErrViewNotFound):
		return "not found"
	default:
		return err.Error()
	}
}

// Resolve writes the candidate names of vmName and the view they resolve
// to. The locator's error is returned when there is none.
func (a *App) Resolve(w io.Writer, vmName string) error {
	candidates, err := a.locator.Candidates(vmName)
	if err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "view-model: %s\n", vmName)
	for i, c := range candidates {
		fmt.Fprintf(&b, "candidate %d: %s\n", i+1, c)
	}

	view, locErr := a.locator.LocateByName(a.ctx, vmName)
	if locErr == nil {
		fmt.Fprintf(&b, "view: %s\n", view)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	return locErr
}
