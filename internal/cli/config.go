package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/featuredoc/pkg/manifest"
	"github.com/matzehuels/featuredoc/pkg/pipeline"
)

func (c *CLI) configCommand() *cobra.Command {
	var flags optionFlags

	cmd := &cobra.Command{
		Use:   "config [path]",
		Short: "Print the effective options for a manifest",
		Long: `Print the options a scan of the manifest at path would use, after the
options file and flags are applied. The output is valid ` + pipeline.ConfigFileName + ` content.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConfig(cmd, pathsOrDefault(args)[0], flags)
		},
	}

	flags.register(cmd)
	_ = cmd.Flags().MarkHidden("jobs")

	return cmd
}

func (c *CLI) runConfig(cmd *cobra.Command, path string, flags optionFlags) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	opts := flags.options(cmd, pipeline.FormatMarkdown)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	engine, cfg, err := pipeline.EngineOptions(m.Dir(), opts)
	if err != nil {
		return err
	}
	engine = engine.WithFeatureLabel(engine.Label())

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "# manifest: %s\n", m.Path)
	if cfg != "" {
		fmt.Fprintf(w, "# config: %s\n", cfg)
	}
	return toml.NewEncoder(w).Encode(engine)
}
