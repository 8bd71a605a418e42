// Package featuredoc renders the feature documentation embedded in a Cargo
// manifest as Markdown.
//
// # Documentation format
//
// Documentation lives next to the declarations it describes. Two comment
// markers are recognized, each of which must be followed by a space or the
// end of the line:
//
//   - "## " documents the feature or optional dependency declared on the
//     very next line. A blank line in between drops the comment.
//   - "#! " is free-standing Markdown emitted where it appears, typically
//     used to head a group of features.
//
// Plain "#" comments and "###" lines carry no documentation.
//
// Features are the entries of [features]. Optional dependencies are entries
// of any dependency table ([dependencies], [dev-dependencies],
// [target.'cfg(unix)'.build-dependencies], ...) whose value holds
// optional = true, and [dependencies.<name>] tables containing
// optional = true.
//
// # Example
//
//	[features]
//	default = ["fast"]
//	#! ### Performance
//	## Enables fast mode
//	fast = []
//
// renders as
//
//	### Performance
//	* Feature flag **`fast`** *(enabled by default)* — Enables fast mode
//
// # Scanning
//
// The manifest is not fully parsed. Lines are joined while a multi-line
// string or array is open, classified, and bound in a single forward pass
// that only tracks the current table path. Values that matter (feature
// lists, dependency specs) are decoded with the TOML decoder.
//
// Scanning is synchronous and holds no shared state, so concurrent calls
// on different manifests need no coordination.
package featuredoc
