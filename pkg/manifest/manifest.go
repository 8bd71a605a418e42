package manifest

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/featuredoc/pkg/errors"
)

const (
	// FileName is the manifest read from a package directory.
	FileName = "Cargo.toml"

	// OrigFileName is the pre-publish manifest kept next to a normalized one.
	OrigFileName = "Cargo.toml.orig"
)

// Manifest is the text of one manifest and where it came from.
type Manifest struct {
	Path     string // file the text was read from
	Text     string
	Fallback bool // Text came from OrigFileName instead of the requested file
}

// Dir returns the directory holding the manifest.
func (m *Manifest) Dir() string {
	return filepath.Dir(m.Path)
}

// Load reads the manifest at path, which may be a package directory or a
// manifest file.
func Load(path string) (*Manifest, error) {
	file, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	text, err := readText(file)
	if err != nil {
		return nil, err
	}

	m := &Manifest{Path: file, Text: text}
	if HasDocComments(text) || filepath.Base(file) != FileName {
		return m, nil
	}

	orig := filepath.Join(filepath.Dir(file), OrigFileName)
	origText, err := readText(orig)
	if err != nil {
		return m, nil
	}
	if strings.Contains(origText, "##") || strings.Contains(origText, "#!") {
		return &Manifest{Path: orig, Text: origText, Fallback: true}, nil
	}
	return m, nil
}

// HasDocComments reports whether text contains a line starting with a doc
// comment marker.
func HasDocComments(text string) bool {
	return strings.HasPrefix(text, "##") || strings.HasPrefix(text, "#!") ||
		strings.Contains(text, "\n##") || strings.Contains(text, "\n#!")
}

func resolvePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "can't open %s", path)
	}
	if info.IsDir() {
		path = filepath.Join(path, FileName)
	}
	if err := errors.ValidateManifestFilename(filepath.Base(path)); err != nil {
		return "", err
	}
	return path, nil
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeFileNotFound, err, "can't open %s", path)
	}
	return string(data), nil
}
