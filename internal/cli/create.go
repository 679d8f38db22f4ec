package cli

import (
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create <feature-id>",
	Short: "Create the changelog and architecture documents for a feature",
	Long: `Create CHANGELOG.md and CLAUDE.md inside an existing feature directory.

Each file is written from a fixed template only if it does not exist yet;
existing files are skipped with a warning. The feature directory itself must
already exist - this command never creates it.

Examples:
  speclog create 001-user-auth
  speclog create 002-dark-mode --specs-dir planning`,
	Args:         exactFeatureArgs(1, "speclog create <feature-id>"),
	SilenceUsage: true,
	RunE:         runCreate,
}

func init() {
	createCmd.GroupID = GroupFeature
	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	featureID := args[0]

	m, err := newManager()
	if err != nil {
		return err
	}

	res, err := m.Create(featureID)
	if err != nil {
		return wrapDomainError(err)
	}

	p := newPrinter(cmd)
	if res.ChangelogCreated {
		p.Success("Created %s", res.ChangelogPath)
	} else {
		p.Warning("%s already exists, skipping", res.ChangelogPath)
	}
	if res.ArchitectureCreated {
		p.Success("Created %s", res.ArchitecturePath)
	} else {
		p.Warning("%s already exists, skipping", res.ArchitecturePath)
	}

	return nil
}
