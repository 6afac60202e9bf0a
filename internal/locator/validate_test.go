package locator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/viewbind/internal/naming"
	"github.com/specialistvlad/viewbind/internal/testutil"
)

func TestValidateBindings_Valid(t *testing.T) {
	ctx, logs := testutil.LoggedContext(t)
	l := newLocator(t, naming.Rules{}, testutil.ValidModule())

	require.NoError(t, l.ValidateBindings(ctx))
	assert.Equal(t, map[string]string{
		"Tests.ViewModels.WidgetViewModel": "Tests.Views.WidgetView",
		"Tests.PlainViewModel":             "Tests.PlainView",
		"Tests.AwareViewModel":             "Tests.AwareView",
		"Tests.RememberingViewModel":       "Tests.RememberingView",
	}, l.Bindings())
	testutil.AssertLogged(t, logs.String(), "View bindings validated.", "view_models=4", "bound=4")

	view, err := l.LocateViewType(ctx, reflect.TypeFor[*testutil.AwareViewModel]())
	require.NoError(t, err)
	assert.Equal(t, "Tests.AwareView", view.FullName)
}

func TestValidateBindings_ReportsEveryFailure(t *testing.T) {
	ctx, _ := testutil.LoggedContext(t)
	l := newLocator(t, naming.Rules{}, testutil.ValidModule(), testutil.InvalidModule())

	err := l.ValidateBindings(ctx)
	require.Error(t, err)

	var validation *ValidationError
	require.True(t, errors.As(err, &validation))
	require.Len(t, validation.Errs, 4)

	assert.True(t, errors.Is(err, ErrViewNotFound), "orphan view-model")
	assert.True(t, errors.Is(err, ErrViewNotInstantiable), "interface, abstract and unassignable views")
	assert.Contains(t, err.Error(), "view binding validation failed:\n- ")
	assert.Contains(t, err.Error(), "Tests.OrphanViewModel")

	// Valid view-models stay bound even when others fail.
	assert.Len(t, l.Bindings(), 4)
}

func TestValidateBindings_SkipsNonViewModels(t *testing.T) {
	type Helper struct{}

	ctx, _ := testutil.LoggedContext(t)
	l := newLocator(t, naming.Rules{}, &testutil.SimpleModule{Types: []testutil.TypeEntry{
		testutil.Entry[Helper]("Tests"),
		testutil.Entry[testutil.InterfaceView]("Tests"),
	}})

	require.NoError(t, l.ValidateBindings(ctx))
	assert.Empty(t, l.Bindings())
}
