package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <feature-id> <message>",
	Short: "Append a timestamped entry to a feature's changelog",
	Long: `Append a timestamped entry to the feature's CHANGELOG.md.

Entries logged on the same calendar date are grouped under one date heading,
newest first. A new date heading is inserted directly below the static header
block, above all prior sections. If the feature's documents do not exist yet
they are created first, exactly as by create.

The message may be given as one quoted argument or as several words:
  speclog log 001-user-auth "Implemented JWT token refresh"
  speclog log 001-user-auth Implemented JWT token refresh`,
	Args: func(cmd *cobra.Command, args []string) error {
		return exactFeatureArgs(2, "speclog log <feature-id> <message>")(cmd, normalizeLogArgs(args))
	},
	SilenceUsage: true,
	RunE:         runLog,
}

func init() {
	logCmd.GroupID = GroupFeature
	rootCmd.AddCommand(logCmd)
}

// normalizeLogArgs folds trailing words into a single message argument so
// unquoted messages work.
func normalizeLogArgs(args []string) []string {
	if len(args) <= 2 {
		return args
	}
	return []string{args[0], strings.Join(args[1:], " ")}
}

func runLog(cmd *cobra.Command, args []string) error {
	args = normalizeLogArgs(args)
	featureID, message := args[0], args[1]

	m, err := newManager()
	if err != nil {
		return err
	}

	res, err := m.Log(featureID, message)
	if err != nil {
		return wrapDomainError(err)
	}

	p := newPrinter(cmd)
	if res.Initialized != nil {
		p.Info("Changelog not found, created %s", res.Initialized.ChangelogPath)
	}
	p.Success("Logged: %s - %s", res.Timestamp, res.Message)

	return nil
}
