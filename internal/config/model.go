package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	// Assemblies names the modules to load, in search order. Nil means every
	// compiled-in module.
	Assemblies []string
	// Startup is the full name of the view-model shown when the app runs.
	Startup string
	Naming  Naming
}

// Naming configures how candidate view names are derived.
type Naming struct {
	// Strict rejects view-model names without the ViewModel suffix. Nil
	// means not set.
	Strict *bool
	// NamespaceMap rewrites namespace segments of the candidate name. Nil
	// means the default map; an empty map disables the rewrite.
	NamespaceMap map[string]string
}

// IsStrict reports whether strict naming is enabled.
func (n Naming) IsStrict() bool {
	return n.Strict != nil && *n.Strict
}

// Merge overlays every value other sets on top of m. Later files win.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.Assemblies != nil {
		m.Assemblies = slices.Clone(other.Assemblies)
	}
	if other.Startup != "" {
		m.Startup = other.Startup
	}
	if other.Naming.Strict != nil {
		strict := *other.Naming.Strict
		m.Naming.Strict = &strict
	}
	if other.Naming.NamespaceMap != nil {
		m.Naming.NamespaceMap = maps.Clone(other.Naming.NamespaceMap)
	}
}

// Validate checks the model for values no loader can reject on its own.
func (m *Model) Validate() error {
	var errs []string

	seen := make(map[string]struct{}, len(m.Assemblies))
	for i, name := range m.Assemblies {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, fmt.Sprintf("assemblies[%d] is empty", i))
			continue
		}
		if _, dup := seen[name]; dup {
			errs = append(errs, fmt.Sprintf("assembly '%s' is listed more than once", name))
		}
		seen[name] = struct{}{}
	}

	if m.Startup != "" && !validFullName(m.Startup) {
		errs = append(errs, fmt.Sprintf("startup '%s' is not a full type name", m.Startup))
	}

	for _, from := range slices.Sorted(maps.Keys(m.Naming.NamespaceMap)) {
		to := m.Naming.NamespaceMap[from]
		if from == "" || to == "" || strings.Contains(from, ".") || strings.Contains(to, ".") {
			errs = append(errs, fmt.Sprintf("namespace_map entry '%s' = '%s' must map one segment to one segment", from, to))
		}
	}

	if len(errs) > 0 {
		return errors.New("configuration validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

func validFullName(name string) bool {
	for _, segment := range strings.Split(name, ".") {
		if segment == "" {
			return false
		}
	}
	return true
}
