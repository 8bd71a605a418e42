// Package cli implements the featuredoc command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/featuredoc/pkg/buildinfo"
	"github.com/matzehuels/featuredoc/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "featuredoc"

	// defaultPath is the manifest location used when no path is given.
	defaultPath = "."
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "featuredoc documents Cargo features from manifest comments",
		Long: `featuredoc extracts the documentation comments written next to the features
and optional dependencies of a Cargo.toml and renders them as a Markdown list.

Lines starting with "##" document the entry that follows; lines starting with
"#!" are copied through as free-standing Markdown.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(cmd *cobra.Command) *pipeline.Runner {
	return pipeline.NewRunner(loggerFromContext(cmd.Context()))
}

// =============================================================================
// Shared Flags
// =============================================================================

// optionFlags are the flags shared by every command that scans manifests.
type optionFlags struct {
	featureLabel       string
	plainCommentBreaks bool
	config             string
	jobs               int
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.featureLabel, "feature-label", "", "label before each feature name; {feature} makes it a template")
	cmd.Flags().BoolVar(&f.plainCommentBreaks, "plain-comment-breaks", false, "a plain # comment detaches a ## block from its entry")
	cmd.Flags().StringVar(&f.config, "config", "", "options file (default: "+pipeline.ConfigFileName+" next to each manifest)")
	cmd.Flags().IntVarP(&f.jobs, "jobs", "j", 0, "manifests processed in parallel (default: number of CPUs)")
}

// options builds pipeline options. Only flags set on the command line
// override values from the options file.
func (f *optionFlags) options(cmd *cobra.Command, format string) pipeline.Options {
	opts := pipeline.Options{
		Format:     format,
		ConfigFile: f.config,
		Jobs:       f.jobs,
	}
	if cmd.Flags().Changed("feature-label") {
		label := f.featureLabel
		opts.Overrides.FeatureLabel = &label
	}
	if cmd.Flags().Changed("plain-comment-breaks") {
		breaks := f.plainCommentBreaks
		opts.Overrides.PlainCommentBreaks = &breaks
	}
	return opts
}

// pathsOrDefault returns args, or the current directory when empty.
func pathsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{defaultPath}
	}
	return args
}
