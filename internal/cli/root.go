// Package cli wires the speclog commands. Each command lives in its own file
// and registers itself on rootCmd from an init function.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/speclog/internal/errors"
	"github.com/ariel-frischer/speclog/internal/version"
)

// Command group IDs for help output.
const (
	GroupFeature  = "feature"
	GroupInternal = "internal"
)

var (
	specsDirFlag string
	plainFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "speclog",
	Short: "Feature changelog manager for spec-driven repositories",
	Long: `speclog manages the per-feature documentation convention used in
spec-driven repositories: each feature directory under specs/ carries a
CHANGELOG.md of dated, timestamped entries and a CLAUDE.md architecture
document with a status field.

Typical flow:
  speclog create 001-user-auth            # write both documents from templates
  speclog log 001-user-auth "Added JWT"   # append a timestamped entry
  speclog update 001-user-auth            # print the sections to review
  speclog complete 001-user-auth          # mark done and roll up to root CHANGELOG.md`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupFeature, Title: "Feature Commands:"},
		&cobra.Group{ID: GroupInternal, Title: "Internal Commands:"},
	)
	rootCmd.PersistentFlags().StringVar(&specsDirFlag, "specs-dir", "", "Override the specs directory (default from config)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain text output (no colors/icons)")
	rootCmd.SetVersionTemplate(fmt.Sprintf("speclog {{.Version}} (commit %s, built %s)\n",
		version.Commit, version.BuildDate))
}

// Execute runs the root command, prints any structured error, and exits the
// process with the error's code. Returns the error for callers that want it.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	printCommandError(err)
	os.Exit(exitCodeFor(err))
	return err
}

// printCommandError formats structured CLI errors; anything else falls back
// to a plain stderr line.
func printCommandError(err error) {
	if cliErr := asCLIError(err); cliErr != nil {
		if plainFlag {
			fmt.Fprint(os.Stderr, errors.FormatErrorPlain(cliErr))
		} else {
			errors.PrintError(cliErr)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
