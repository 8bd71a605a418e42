package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/featuredoc/pkg/errors"
	"github.com/matzehuels/featuredoc/pkg/featuredoc"
	"github.com/matzehuels/featuredoc/pkg/io"
	"github.com/matzehuels/featuredoc/pkg/observability"
	"github.com/matzehuels/featuredoc/pkg/pipeline"
)

type generateFlags struct {
	optionFlags
	output string
	format string
}

func (c *CLI) generateCommand() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate [path...]",
		Short: "Render feature documentation for one or more manifests",
		Long: `Render the feature documentation of each manifest. A path may be a package
directory or a manifest file; the current directory is used when none is given.

Output goes to stdout unless -o is set. With several manifests, -o names a
directory that receives one file per package.`,
		Example: `  featuredoc generate
  featuredoc generate crates/core -o FEATURES.md
  featuredoc generate crates/* -f html -o docs/features
  featuredoc generate --feature-label '<code>{feature}</code>'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, pathsOrDefault(args), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file, or directory when several manifests are given")
	cmd.Flags().StringVarP(&flags.format, "format", "f", pipeline.FormatMarkdown, "output format: md, html, json")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, paths []string, flags generateFlags) error {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	opts := flags.options(cmd, flags.format)
	results, err := c.newRunner(cmd).Run(ctx, paths, opts)
	if err != nil {
		return err
	}

	var ok []*pipeline.Result
	for _, r := range results {
		if r.Err != nil {
			printError("%s", describeError(r))
			continue
		}
		ok = append(ok, r)
	}
	failed := len(results) - len(ok)

	switch {
	case flags.output == "":
		err = writeStdout(cmd, ok, opts.Format, len(paths) > 1)
	case len(paths) == 1:
		if len(ok) == 1 {
			err = writeResult(cmd, ok[0], flags.output)
		}
	default:
		err = writeDir(cmd, ok, flags.output, opts.Format)
	}
	if err != nil {
		return err
	}

	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "%d of %d manifests failed", failed, len(results))
	}
	prog.done(fmt.Sprintf("Generated documentation for %d manifest(s)", len(ok)))
	return nil
}

// writeStdout writes outputs in input order. Several Markdown or HTML
// documents are each preceded by a comment naming their manifest.
func writeStdout(cmd *cobra.Command, results []*pipeline.Result, format string, many bool) error {
	w := cmd.OutOrStdout()
	for i, r := range results {
		if many && format != pipeline.FormatJSON {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "<!-- %s -->\n", r.Source())
		}
		if _, err := w.Write(r.Output); err != nil {
			return err
		}
	}
	return nil
}

func writeDir(cmd *cobra.Command, results []*pipeline.Result, dir, format string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "create %s", dir)
	}
	for _, r := range results {
		name, err := packageDirName(r)
		if err != nil {
			return err
		}
		if err := writeResult(cmd, r, filepath.Join(dir, name+"."+format)); err != nil {
			return err
		}
	}
	return nil
}

func writeResult(cmd *cobra.Command, r *pipeline.Result, path string) error {
	err := io.WriteFile(path, r.Output)
	observability.Output().OnWrite(cmd.Context(), path, len(r.Output), err)
	if err != nil {
		return err
	}
	printSuccess("Generated %s", StyleHighlight.Render(r.Source()))
	printFile(path)
	printStats(len(r.Document.Features()), len(r.Document.Undocumented()), r.Manifest.Fallback)
	return nil
}

// packageDirName names an output file after the directory holding the
// manifest.
func packageDirName(r *pipeline.Result) (string, error) {
	abs, err := filepath.Abs(r.Manifest.Dir())
	if err != nil {
		return "", err
	}
	return filepath.Base(abs), nil
}

// describeError formats a failed result as "file:line: message" when the
// error is positioned in the manifest.
func describeError(r *pipeline.Result) string {
	if d, ok := featuredoc.DiagnosticOf(r.Err); ok {
		return d.String(r.Source())
	}
	return r.Source() + ": " + r.Err.Error()
}
