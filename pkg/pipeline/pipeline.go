// Package pipeline runs feature documentation generation for one or more
// manifests.
//
// Each manifest goes through three steps:
//
//  1. Load: read Cargo.toml (or its .orig variant) and the options file
//  2. Parse: bind documentation comments to features
//  3. Render: format the result as Markdown, HTML or JSON
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	results, err := runner.Run(ctx, []string{"crates/a", "crates/b"}, pipeline.Options{
//	    Format: pipeline.FormatMarkdown,
//	    Jobs:   4,
//	})
//	for _, r := range results {
//	    if r.Err != nil { ... }
//	    os.Stdout.Write(r.Output)
//	}
//
// Manifests are processed concurrently; results keep the input order and a
// failing manifest does not stop the others.
package pipeline

import (
	"runtime"
	"time"

	"github.com/matzehuels/featuredoc/pkg/errors"
	"github.com/matzehuels/featuredoc/pkg/featuredoc"
	"github.com/matzehuels/featuredoc/pkg/manifest"
)

// Format constants for output formats.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatMarkdown: true,
	FormatHTML:     true,
	FormatJSON:     true,
}

// Options configures a pipeline run.
type Options struct {
	// Format is one of ValidFormats. Empty means FormatMarkdown.
	Format string

	// ConfigFile is an explicit options file. When empty, ConfigFileName
	// next to each manifest is used if present.
	ConfigFile string

	// Overrides take precedence over values from the options file.
	Overrides Overrides

	// Jobs bounds how many manifests are processed at once. Zero means
	// runtime.NumCPU().
	Jobs int
}

// Overrides are option values set explicitly, typically from flags. Nil
// fields leave the file value untouched.
type Overrides struct {
	FeatureLabel       *string
	PlainCommentBreaks *bool
}

// Apply returns opts with the set overrides applied.
func (o Overrides) Apply(opts featuredoc.Options) featuredoc.Options {
	if o.FeatureLabel != nil {
		opts = opts.WithFeatureLabel(*o.FeatureLabel)
	}
	if o.PlainCommentBreaks != nil {
		opts.PlainCommentBreaks = *o.PlainCommentBreaks
	}
	return opts
}

// Result is the outcome for one requested path.
type Result struct {
	// Path is the path as requested.
	Path string

	// Manifest is the loaded manifest, nil if loading failed.
	Manifest *manifest.Manifest

	// Document is the parsed documentation, nil if parsing failed.
	Document *featuredoc.Document

	// Output is the rendered document in the requested format.
	Output []byte

	// Stats contains timing and size information.
	Stats Stats

	// Err is the first error hit for this manifest.
	Err error
}

// Source returns the file the documentation was read from, or the
// requested path when loading failed.
func (r *Result) Source() string {
	if r.Manifest != nil {
		return r.Manifest.Path
	}
	return r.Path
}

// Stats contains per-manifest execution statistics.
type Stats struct {
	ItemCount  int
	ParseTime  time.Duration
	RenderTime time.Duration
}

// ValidateAndSetDefaults checks the options and fills in defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = FormatMarkdown
	}
	if err := errors.ValidateFormat(o.Format, ValidFormats); err != nil {
		return err
	}
	if o.Jobs < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "jobs must not be negative")
	}
	if o.Jobs == 0 {
		o.Jobs = runtime.NumCPU()
	}
	if o.Overrides.FeatureLabel != nil {
		if err := errors.ValidateFeatureLabel(*o.Overrides.FeatureLabel); err != nil {
			return err
		}
	}
	return nil
}
