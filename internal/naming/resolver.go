package naming

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// ViewModelSuffix marks a type name as a view-model.
	ViewModelSuffix = "ViewModel"
	// ModelSuffix is the component removed from a view-model name.
	ModelSuffix = "Model"
)

// ErrNotViewModel is returned in strict mode for names without the
// "ViewModel" suffix.
var ErrNotViewModel = errors.New("type name does not end in " + ViewModelSuffix)

// DefaultNamespaceMap is used when Rules.NamespaceMap is nil.
var DefaultNamespaceMap = map[string]string{"ViewModels": "Views"}

// Rules configures a Resolver.
type Rules struct {
	// Strict rejects names that do not end in "ViewModel" instead of
	// passing them through the suffix rule.
	Strict bool
	// NamespaceMap rewrites whole namespace segments for the secondary
	// candidate. A nil map means DefaultNamespaceMap; an empty map disables
	// the rewrite.
	NamespaceMap map[string]string
}

// Resolver turns view-model names into candidate view names. It holds only
// immutable rules and is safe to share.
type Resolver struct {
	strict bool
	nsMap  map[string]string
	// nsKeys is nsMap's keys, sorted, so rewrites are deterministic.
	nsKeys []string
}

// NewResolver creates a Resolver from the given rules.
func NewResolver(rules Rules) *Resolver {
	src := rules.NamespaceMap
	if src == nil {
		src = DefaultNamespaceMap
	}
	nsMap := make(map[string]string, len(src))
	keys := make([]string, 0, len(src))
	for from, to := range src {
		if from == "" {
			continue
		}
		nsMap[from] = to
		keys = append(keys, from)
	}
	sort.Strings(keys)
	return &Resolver{strict: rules.Strict, nsMap: nsMap, nsKeys: keys}
}

// Strict reports whether the resolver rejects non view-model names.
func (r *Resolver) Strict() bool { return r.strict }

// ResolveCandidateName returns the primary candidate: fullName with the
// trailing "Model" removed from its type segment. Names whose type segment
// does not end in "Model" are returned unchanged.
func ResolveCandidateName(fullName string) string {
	ns, typeName := Split(fullName)
	typeName = strings.TrimSuffix(typeName, ModelSuffix)
	return Join(ns, typeName)
}

// ResolveCandidateNames returns the ordered, de-duplicated candidate list
// for fullName: the primary candidate first, then the primary candidate with
// its namespace rewritten through the namespace map.
func (r *Resolver) ResolveCandidateNames(fullName string) ([]string, error) {
	if fullName == "" {
		return nil, errors.New("empty view-model name")
	}
	if r.strict && !IsViewModelName(fullName) {
		return nil, fmt.Errorf("%q: %w", fullName, ErrNotViewModel)
	}

	primary := ResolveCandidateName(fullName)
	candidates := []string{primary}

	ns, typeName := Split(primary)
	if mapped := r.mapNamespace(ns); mapped != ns {
		if alt := Join(mapped, typeName); alt != primary {
			candidates = append(candidates, alt)
		}
	}
	return candidates, nil
}

func (r *Resolver) mapNamespace(ns string) string {
	if ns == "" || len(r.nsMap) == 0 {
		return ns
	}
	segments := strings.Split(ns, ".")
	for i, seg := range segments {
		if to, ok := r.nsMap[seg]; ok {
			segments[i] = to
		}
	}
	return strings.Join(segments, ".")
}

// NamespaceMap returns a copy of the resolver's namespace rewrites.
func (r *Resolver) NamespaceMap() map[string]string {
	out := make(map[string]string, len(r.nsMap))
	for _, k := range r.nsKeys {
		out[k] = r.nsMap[k]
	}
	return out
}

// IsViewModelName reports whether the type segment of fullName ends in
// "ViewModel".
func IsViewModelName(fullName string) bool {
	_, typeName := Split(fullName)
	return strings.HasSuffix(typeName, ViewModelSuffix)
}

// Split separates a fully-qualified name into namespace and type segment.
func Split(fullName string) (namespace, typeName string) {
	i := strings.LastIndex(fullName, ".")
	if i < 0 {
		return "", fullName
	}
	return fullName[:i], fullName[i+1:]
}

// Join is the inverse of Split.
func Join(namespace, typeName string) string {
	if namespace == "" {
		return typeName
	}
	return namespace + "." + typeName
}
