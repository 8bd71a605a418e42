package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"

	"github.com/matzehuels/featuredoc/pkg/featuredoc"
)

const filePerms = 0o644

type document struct {
	Manifest string   `json:"manifest,omitempty"`
	Items    []item   `json:"items"`
	Defaults []string `json:"defaults"`
}

type item struct {
	Kind    string `json:"kind"`
	Source  string `json:"source,omitempty"`
	Name    string `json:"name,omitempty"`
	Default bool   `json:"default,omitempty"`
	Text    string `json:"text"`
	Line    int    `json:"line"`
}

// WriteJSON encodes a document as JSON and writes it to w. manifest names
// the file the document was read from and may be empty.
func WriteJSON(doc *featuredoc.Document, manifest string, w io.Writer) error {
	out := document{
		Manifest: manifest,
		Items:    make([]item, len(doc.Items)),
		Defaults: doc.Defaults.Names(),
	}

	for i, it := range doc.Items {
		e := item{Kind: it.Kind.String(), Text: it.Text, Line: it.Line}
		if it.Kind == featuredoc.FeatureDoc {
			e.Source = it.Source.String()
			e.Name = it.Name
			e.Default = it.Default
		}
		out.Items[i] = e
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a document to a JSON file at path.
func ExportJSON(doc *featuredoc.Document, manifest, path string) error {
	var buf bytes.Buffer
	if err := WriteJSON(doc, manifest, &buf); err != nil {
		return err
	}
	return WriteFile(path, buf.Bytes())
}

// WriteFile atomically replaces the file at path with data.
func WriteFile(path string, data []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	// atomic.WriteFile leaves new files with the temp file's mode.
	if err := os.Chmod(path, filePerms); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	return nil
}
