package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/featuredoc/pkg/errors"
	"github.com/matzehuels/featuredoc/pkg/featuredoc"
	"github.com/matzehuels/featuredoc/pkg/manifest"
	"github.com/matzehuels/featuredoc/pkg/markdown"
	"github.com/matzehuels/featuredoc/pkg/pipeline"
)

type checkFlags struct {
	optionFlags
	strict bool
}

func (c *CLI) checkCommand() *cobra.Command {
	var flags checkFlags

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Report undocumented features and scan problems",
		Long: `Scan each manifest and report:

  - features and optional dependencies without a ## comment
  - entries the line scanner and a full TOML decode disagree on
  - rendered list items that do not match the scanned features

Scan errors always fail the command. With --strict, warnings fail it too.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd, pathsOrDefault(args), flags)
		},
	}

	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, paths []string, flags checkFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	results, err := c.newRunner(cmd).Run(ctx, paths, flags.options(cmd, pipeline.FormatMarkdown))
	if err != nil {
		return err
	}

	failed, warned := 0, 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			printError("%s", describeError(r))
			continue
		}

		warnings := checkResult(r)
		logger.Debug("checked manifest", "file", r.Source(), "warnings", len(warnings))
		if len(warnings) == 0 {
			printSuccess("%s: %d items documented", r.Source(), len(r.Document.Features()))
			continue
		}
		warned++
		printWarning("%s", r.Source())
		for _, w := range warnings {
			printDetail("%s", w)
		}
	}

	switch {
	case failed > 0:
		return errors.New(errors.ErrCodeInvalidManifest, "%d of %d manifests failed", failed, len(results))
	case flags.strict && warned > 0:
		return errors.New(errors.ErrCodeInvalidManifest, "%d of %d manifests have warnings", warned, len(results))
	}
	return nil
}

// checkResult collects the warnings for one scanned manifest.
func checkResult(r *pipeline.Result) []string {
	doc := r.Document
	var warnings []string
	if names := doc.Undocumented(); len(names) > 0 {
		warnings = append(warnings, "undocumented: "+strings.Join(names, ", "))
	}

	info, err := manifest.Decode(r.Manifest.Text)
	if err != nil {
		warnings = append(warnings, "full TOML decode failed: "+errors.UserMessage(err))
	} else {
		warnings = append(warnings, crossCheck(doc, info)...)
	}

	return append(warnings, renderCheck(doc)...)
}

// crossCheck compares what the scanner bound against the decoded manifest.
func crossCheck(doc *featuredoc.Document, info *manifest.Info) []string {
	scanned := map[featuredoc.EntrySource]map[string]bool{
		featuredoc.SourceFeature:    {},
		featuredoc.SourceDependency: {},
	}
	for _, it := range doc.Features() {
		if it.Source == featuredoc.SourceFeature && it.Name == "default" {
			continue
		}
		scanned[it.Source][it.Name] = true
	}

	var out []string
	out = append(out, diffNames("feature", scanned[featuredoc.SourceFeature], info.FeatureNames())...)
	out = append(out, diffNames("optional dependency", scanned[featuredoc.SourceDependency], info.OptionalDependencies)...)
	return out
}

func diffNames(kind string, scanned map[string]bool, decoded []string) []string {
	var out []string
	want := make(map[string]bool, len(decoded))
	for _, name := range decoded {
		want[name] = true
		if !scanned[name] {
			out = append(out, fmt.Sprintf("%s %s is declared but was not found by the scanner", kind, name))
		}
	}
	var extra []string
	for name := range scanned {
		if !want[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, fmt.Sprintf("%s %s was scanned but is not declared", kind, name))
	}
	return out
}

// renderCheck reads the rendered Markdown back and verifies it lists the
// scanned items in order. Template labels may drop the bold name, so they
// are not checked.
func renderCheck(doc *featuredoc.Document) []string {
	if strings.Contains(doc.Options().Label(), featuredoc.FeaturePlaceholder) {
		return nil
	}
	var want []string
	for _, it := range doc.Features() {
		want = append(want, it.Name)
	}
	got := markdown.ListedNames(doc.Markdown())
	if strings.Join(got, "\x00") == strings.Join(want, "\x00") {
		return nil
	}
	return []string{fmt.Sprintf("rendered list names %v, scanned %v", got, want)}
}
