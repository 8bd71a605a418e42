// Package io writes generated feature documentation to files and streams.
//
// # JSON Format
//
// [WriteJSON] encodes a parsed document as one object with the rendered
// items in manifest order and the resolved default set:
//
//	{
//	  "manifest": "Cargo.toml",
//	  "items": [
//	    {"kind": "prose", "text": "## Features", "line": 1},
//	    {"kind": "feature", "source": "feature", "name": "fast",
//	     "default": true, "text": "Go fast", "line": 4}
//	  ],
//	  "defaults": ["fast"]
//	}
//
// Prose items carry only kind, text and line.
//
// # Files
//
// [WriteFile] and [ExportJSON] replace their target atomically, so a
// concurrent reader of a README or generated doc never sees a partial file.
package io
