package cli

import (
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <feature-id>",
	Short: "Mark a feature complete and roll its changelog up to the root",
	Long: `Mark a feature as complete.

Sets the Status field of the feature's CLAUDE.md to Complete with today's
date, and appends the feature changelog's dated sections to the root
CHANGELOG.md under a completion heading. The feature's own changelog stays
in place.

A missing CLAUDE.md or root CHANGELOG.md only skips the corresponding step;
a missing feature CHANGELOG.md is an error.`,
	Args:         exactFeatureArgs(1, "speclog complete <feature-id>"),
	SilenceUsage: true,
	RunE:         runComplete,
}

func init() {
	completeCmd.GroupID = GroupFeature
	rootCmd.AddCommand(completeCmd)
}

func runComplete(cmd *cobra.Command, args []string) error {
	featureID := args[0]

	m, err := newManager()
	if err != nil {
		return err
	}

	res, err := m.Complete(featureID)
	if err != nil {
		return wrapDomainError(err)
	}

	p := newPrinter(cmd)
	if res.StatusUpdated {
		p.Success("Marked %s complete (%s)", res.ArchitecturePath, res.CompletedDate)
	} else {
		p.Warning("%s not found, skipped status update", res.ArchitecturePath)
	}
	if res.RolledUp {
		p.Success("Rolled changelog up to %s", res.RootChangelogPath)
	} else {
		p.Warning("%s not found, skipped rollup", res.RootChangelogPath)
	}
	p.Success("Feature %s completed", featureID)

	return nil
}
