package locator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrViewNotFound matches every *ViewNotFoundError with errors.Is.
	ErrViewNotFound = errors.New("view not found")
	// ErrViewNotInstantiable matches every *ViewNotInstantiableError with errors.Is.
	ErrViewNotInstantiable = errors.New("view not instantiable")
)

// ViewNotFoundError reports that resolution did not yield exactly one
// matching type.
type ViewNotFoundError struct {
	// ViewModel is the fully-qualified name of the view-model type.
	ViewModel string
	// Candidates are the names searched, in order.
	Candidates []string
	// Ambiguous lists the matches when more than one type shares a name.
	Ambiguous []string
	// Suggestion is the closest registered name, if any is close enough.
	Suggestion string
	// Err is the underlying cause, e.g. a strict naming failure.
	Err error
}

func (e *ViewNotFoundError) Error() string {
	var b strings.Builder
	switch {
	case len(e.Ambiguous) > 0:
		fmt.Fprintf(&b, "ambiguous view for '%s': %d types match: %s",
			e.ViewModel, len(e.Ambiguous), strings.Join(e.Ambiguous, ", "))
	case e.Err != nil:
		fmt.Fprintf(&b, "no view for '%s': %v", e.ViewModel, e.Err)
	default:
		fmt.Fprintf(&b, "no view for '%s'", e.ViewModel)
	}
	if len(e.Candidates) > 0 && len(e.Ambiguous) == 0 {
		fmt.Fprintf(&b, " (searched %s)", strings.Join(e.Candidates, ", "))
	}
	if e.Suggestion != "" {
		fmt.Fprintf(&b, "; did you mean '%s'?", e.Suggestion)
	}
	return b.String()
}

// Is implements errors.Is support for ErrViewNotFound.
func (e *ViewNotFoundError) Is(target error) bool {
	return target == ErrViewNotFound
}

// Unwrap returns the underlying cause.
func (e *ViewNotFoundError) Unwrap() error {
	return e.Err
}

// Reason classifies why a matched type cannot be used as a view.
type Reason int

const (
	// ReasonInterface: the matched type is an interface.
	ReasonInterface Reason = iota + 1
	// ReasonAbstract: the matched type's kind has no usable constructed
	// value (func, chan, unsafe pointer).
	ReasonAbstract
	// ReasonNotAssignable: neither T nor *T implements ui.View.
	ReasonNotAssignable
)

func (r Reason) String() string {
	switch r {
	case ReasonInterface:
		return "is an interface"
	case ReasonAbstract:
		return "is abstract"
	case ReasonNotAssignable:
		return "does not implement ui.View"
	default:
		return "unknown reason"
	}
}

// ViewNotInstantiableError reports a matched type that cannot be
// instantiated as a view.
type ViewNotInstantiableError struct {
	ViewModel string
	View      string
	Type      reflect.Type
	Reason    Reason
}

func (e *ViewNotInstantiableError) Error() string {
	return fmt.Sprintf("view '%s' for '%s' cannot be instantiated: %s (%s)",
		e.View, e.ViewModel, e.Reason, e.Type)
}

// Is implements errors.Is support for ErrViewNotInstantiable.
func (e *ViewNotInstantiableError) Is(target error) bool {
	return target == ErrViewNotInstantiable
}

// ValidationError collects every failure found by ValidateBindings.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("view binding validation failed:\n- %s", strings.Join(msgs, "\n- "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errs
}
