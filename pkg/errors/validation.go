package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateManifestFilename validates a manifest filename.
// It ensures the filename is a simple basename naming a TOML manifest.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	ext := filepath.Ext(filename)
	if ext != ".toml" && ext != ".orig" {
		return New(ErrCodeInvalidManifest, "manifest must be a .toml file: %q", filename)
	}

	return nil
}

// ValidateFeatureLabel validates a feature label used as a list item prefix.
// A label is rendered inside a single Markdown list line, so line breaks
// and other control characters are rejected.
func ValidateFeatureLabel(label string) error {
	const maxLabelLength = 256
	if len(label) > maxLabelLength {
		return New(ErrCodeInvalidOption, "feature_label too long (max %d characters)", maxLabelLength)
	}

	for _, r := range label {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidOption, "feature_label contains control characters")
		}
	}

	if strings.Count(label, "{feature}") > 1 {
		return New(ErrCodeInvalidOption, "feature_label may contain {feature} at most once")
	}

	return nil
}

// ValidateFormat validates an output format name against the allowed set.
func ValidateFormat(format string, allowed map[string]bool) error {
	if !allowed[format] {
		return New(ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
	return nil
}
