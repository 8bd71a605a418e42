package featuredoc

import (
	"sort"
	"strings"
)

// DefaultSet holds the names reachable from the default feature.
type DefaultSet map[string]struct{}

// Contains reports whether name is enabled by default.
func (s DefaultSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Names returns the set's members in sorted order.
func (s DefaultSet) Names() []string {
	names := make([]string, 0, len(s))
	for n := range s {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// resolveDefaults walks the feature graph from roots. Only plain feature
// names are expanded; "dep:x", "pkg/feat" and "pkg?/feat" references are
// recorded but not followed. Each name is visited once, so cycles terminate.
func resolveDefaults(roots []string, features map[string][]string) DefaultSet {
	set := make(DefaultSet)
	visited := make(map[string]bool)
	stack := append([]string(nil), roots...)

	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[ref] {
			continue
		}
		visited[ref] = true

		if dep, ok := strings.CutPrefix(ref, "dep:"); ok {
			set[dep] = struct{}{}
			continue
		}
		if pkg, _, ok := strings.Cut(ref, "/"); ok {
			set[ref] = struct{}{}
			// "pkg/feat" also turns on an optional dependency; "pkg?/feat" does not.
			if !strings.HasSuffix(pkg, "?") {
				set[pkg] = struct{}{}
			}
			continue
		}

		set[ref] = struct{}{}
		stack = append(stack, features[ref]...)
	}
	return set
}
