package cli

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <feature-id>",
	Short: "Print the architecture sections to review for a feature",
	Long: `Print the path of the feature's CLAUDE.md and the checklist of sections
to bring up to date by hand. This command performs no file mutation - the
architecture document is edited by you (or the calling agent), not by the tool.

Fails if the architecture document does not exist yet; run create first.`,
	Args:         exactFeatureArgs(1, "speclog update <feature-id>"),
	SilenceUsage: true,
	RunE:         runUpdate,
}

func init() {
	updateCmd.GroupID = GroupFeature
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	featureID := args[0]

	m, err := newManager()
	if err != nil {
		return err
	}

	reminder, err := m.Update(featureID)
	if err != nil {
		return wrapDomainError(err)
	}

	p := newPrinter(cmd)
	p.Info("Architecture notes: %s", reminder.Path)
	p.Info("Review these sections:")
	p.Checklist(reminder.Sections)

	return nil
}
