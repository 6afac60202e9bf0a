package ui

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNilElement is returned when a slot is written on a nil view.
	ErrNilElement = errors.New("ui: element is nil")
	// ErrNotElement is returned when a value has no action-target slot.
	ErrNotElement = errors.New("ui: value is not an element")
)

// Element is embedded by views to provide the action-target slot and a
// stable instance id used in logs.
type Element struct {
	id           string
	actionTarget any
}

// ID returns the element's instance id, allocating it on first use.
func (e *Element) ID() string {
	if e.id == "" {
		e.id = uuid.NewString()
	}
	return e.id
}

// ActionTarget implements ActionTargetHolder.
func (e *Element) ActionTarget() any { return e.actionTarget }

// SetActionTarget implements ActionTargetHolder.
func (e *Element) SetActionTarget(target any) { e.actionTarget = target }

// DataContextSlot is embedded by views that take part in data binding.
type DataContextSlot struct {
	dataContext any
}

// DataContext implements DataContextGetter.
func (d *DataContextSlot) DataContext() any { return d.dataContext }

// SetDataContext implements DataContextSetter.
func (d *DataContextSlot) SetDataContext(dataContext any) { d.dataContext = dataContext }

// SetActionTarget assigns target to the view's action-target slot.
func SetActionTarget(view, target any) error {
	if IsNil(view) {
		return ErrNilElement
	}
	holder, ok := view.(ActionTargetHolder)
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotElement, view)
	}
	holder.SetActionTarget(target)
	return nil
}

// ActionTarget reads the view's action-target slot. It returns nil for
// values without one.
func ActionTarget(view any) any {
	if IsNil(view) {
		return nil
	}
	if holder, ok := view.(ActionTargetHolder); ok {
		return holder.ActionTarget()
	}
	return nil
}

// SetDataContext assigns dataContext if the view has a writable data
// context. It reports whether the slot exists; a nil view is an error.
func SetDataContext(view, dataContext any) (bool, error) {
	if IsNil(view) {
		return false, ErrNilElement
	}
	setter, ok := view.(DataContextSetter)
	if !ok {
		return false, nil
	}
	setter.SetDataContext(dataContext)
	return true, nil
}

// DataContextOf reads the view's data context, or nil when it has none.
func DataContextOf(view any) any {
	if IsNil(view) {
		return nil
	}
	if getter, ok := view.(DataContextGetter); ok {
		return getter.DataContext()
	}
	return nil
}

// ElementID returns the instance id of views embedding Element, or "".
func ElementID(view any) string {
	if IsNil(view) {
		return ""
	}
	if e, ok := view.(interface{ ID() string }); ok {
		return e.ID()
	}
	return ""
}
