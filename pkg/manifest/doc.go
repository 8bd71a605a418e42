// Package manifest locates and reads Cargo manifests.
//
// # Loading
//
// [Load] accepts a package directory or a manifest file:
//
//	m, _ := manifest.Load("./my-crate")
//	md, _ := featuredoc.Generate(m.Text, featuredoc.Options{})
//
// Published crates ship a normalized Cargo.toml stripped of comments, with
// the original kept as Cargo.toml.orig. When the manifest has no doc
// comments and a sibling Cargo.toml.orig does, the original is used.
//
// # Decoding
//
// [Decode] fully decodes the manifest with the TOML decoder. It is used to
// cross-check what the line scanner found against what TOML actually
// declares.
package manifest
