package config

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestModel_Merge(t *testing.T) {
	base := &Model{
		Assemblies: []string{"shell"},
		Startup:    "Shell.ViewModels.ShellViewModel",
		Naming:     Naming{NamespaceMap: map[string]string{"ViewModels": "Views"}},
	}

	base.Merge(&Model{Naming: Naming{Strict: boolPtr(true)}})
	base.Merge(&Model{Assemblies: []string{"sample", "docs"}})
	base.Merge(nil)

	want := &Model{
		Assemblies: []string{"sample", "docs"},
		Startup:    "Shell.ViewModels.ShellViewModel",
		Naming: Naming{
			Strict:       boolPtr(true),
			NamespaceMap: map[string]string{"ViewModels": "Views"},
		},
	}
	if diff := cmp.Diff(want, base); diff != "" {
		t.Errorf("merged model mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, base.Naming.IsStrict())
}

func TestModel_MergeKeepsEmptyNamespaceMap(t *testing.T) {
	m := &Model{}
	m.Merge(&Model{Naming: Naming{NamespaceMap: map[string]string{}}})

	require.NotNil(t, m.Naming.NamespaceMap, "an empty map disables the rewrite and must survive")
	assert.Empty(t, m.Naming.NamespaceMap)
	assert.False(t, m.Naming.IsStrict())
}

func TestModel_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		model   Model
		wantErr []string
	}{
		{name: "empty", model: Model{}},
		{
			name: "valid",
			model: Model{
				Assemblies: []string{"shell", "sample"},
				Startup:    "Shell.ViewModels.ShellViewModel",
				Naming:     Naming{NamespaceMap: map[string]string{"ViewModels": "Views"}},
			},
		},
		{
			name:    "duplicate and empty assemblies",
			model:   Model{Assemblies: []string{"shell", "", "shell"}},
			wantErr: []string{"assemblies[1] is empty", "assembly 'shell' is listed more than once"},
		},
		{
			name:    "bad startup",
			model:   Model{Startup: "Shell..ShellViewModel"},
			wantErr: []string{"startup 'Shell..ShellViewModel' is not a full type name"},
		},
		{
			name:    "multi-segment namespace map",
			model:   Model{Naming: Naming{NamespaceMap: map[string]string{"A.B": "C"}}},
			wantErr: []string{"namespace_map entry 'A.B' = 'C'"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.model.Validate()
			if len(tc.wantErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), "configuration validation failed:\n- ")
			for _, want := range tc.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

type staticLoader struct {
	model *Model
	err   error
	paths []string
}

func (l *staticLoader) Load(_ context.Context, paths ...string) (*Model, error) {
	l.paths = paths
	return l.model, l.err
}

func TestChain(t *testing.T) {
	hcl := &staticLoader{model: &Model{Assemblies: []string{"shell"}, Startup: "Shell.ViewModels.ShellViewModel"}}
	yml := &staticLoader{model: &Model{Startup: "Sample.ViewModels.WidgetViewModel"}}

	model, err := Chain(hcl, yml).Load(context.Background(), "viewbind.hcl")
	require.NoError(t, err)

	assert.Equal(t, []string{"viewbind.hcl"}, hcl.paths)
	assert.Equal(t, []string{"viewbind.hcl"}, yml.paths)
	assert.Equal(t, []string{"shell"}, model.Assemblies)
	assert.Equal(t, "Sample.ViewModels.WidgetViewModel", model.Startup)
}

func TestChain_Errors(t *testing.T) {
	boom := errors.New("boom")
	_, err := Chain(&staticLoader{err: boom}).Load(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = Chain(&staticLoader{model: &Model{Assemblies: []string{""}}}).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
