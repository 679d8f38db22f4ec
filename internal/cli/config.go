package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ariel-frischer/speclog/internal/config"
	"github.com/ariel-frischer/speclog/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the effective configuration after layering user config, project
config, and SPECLOG_* environment variables over the defaults.

Config files:
  project: .speclog/config.yml
  user:    ~/.config/speclog/config.yml (platform user config dir)`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runConfig,
}

func init() {
	configCmd.GroupID = GroupInternal
	rootCmd.AddCommand(configCmd)
}

// configKeyOrder fixes the display order of the sources block.
var configKeyOrder = []string{"specs_dir", "changelog_name", "architecture_name", "root_changelog"}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, sources, err := config.LoadWithSources()
	if err != nil {
		return NewExitError(ExitRuntimeFailure, errors.Wrap(err, errors.Runtime))
	}
	if specsDirFlag != "" {
		cfg.SpecsDir = specsDirFlag
		sources["specs_dir"] = config.SourceFlag
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	p := newPrinter(cmd)
	p.Header("Effective configuration")
	out := cmd.OutOrStdout()
	fmt.Fprint(out, string(data))

	fmt.Fprintln(out)
	p.Header("Configuration sources")
	for _, key := range configKeyOrder {
		fmt.Fprintf(out, "%-18s %s\n", key+":", sources[key])
	}

	if userPath, err := config.UserConfigPath(); err == nil {
		fmt.Fprintf(out, "\n# user config:    %s\n", userPath)
	}
	fmt.Fprintf(out, "# project config: %s\n", config.ProjectConfigPath())

	return nil
}
