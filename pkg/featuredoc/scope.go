package featuredoc

import "strings"

// effectiveTable returns the table an entry lives in once dotted key
// segments are applied, and the entry's own name.
//
//	[dependencies]
//	foo.optional = true   // table [dependencies foo], name "optional"
func effectiveTable(scope, key []string) ([]string, string) {
	table := make([]string, 0, len(scope)+len(key)-1)
	table = append(table, scope...)
	table = append(table, key[:len(key)-1]...)
	return table, key[len(key)-1]
}

// isFeatures reports whether path is the [features] table.
func isFeatures(path []string) bool {
	return len(path) == 1 && path[0] == "features"
}

// isDependencies reports whether path is a dependency table such as
// [dependencies], [dev-dependencies] or [target.'cfg(unix)'.build-dependencies].
func isDependencies(path []string) bool {
	return len(path) > 0 && strings.HasSuffix(path[len(path)-1], "dependencies")
}

// dependencySubtable reports whether path names a single dependency written
// as its own table, as in [dependencies.serde], and returns its name.
func dependencySubtable(path []string) (string, bool) {
	if len(path) < 2 || !isDependencies(path[:len(path)-1]) {
		return "", false
	}
	return path[len(path)-1], true
}

func tableKey(path []string, name string) string {
	return strings.Join(path, ".") + "\x00" + name
}
