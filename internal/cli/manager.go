package cli

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/speclog/internal/config"
	"github.com/ariel-frischer/speclog/internal/errors"
	"github.com/ariel-frischer/speclog/internal/feature"
	"github.com/ariel-frischer/speclog/internal/output"
	"github.com/ariel-frischer/speclog/internal/project"
)

// newManager builds a feature.Manager from the effective configuration and
// the project root resolved from the working directory.
func newManager() (*feature.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, NewExitError(ExitRuntimeFailure,
			errors.Wrap(err, errors.Runtime, "check .speclog/config.yml for syntax errors"))
	}
	if specsDirFlag != "" {
		cfg.SpecsDir = specsDirFlag
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, NewExitError(ExitRuntimeFailure,
			errors.NewRuntimeError(fmt.Sprintf("cannot determine the working directory: %v", err)))
	}

	root, err := project.FindRoot(cwd, cfg.SpecsDir)
	if err != nil {
		return nil, NewExitError(ExitRuntimeFailure,
			errors.NewRuntimeError(fmt.Sprintf("resolving project root: %v", err),
				"run speclog from inside the project tree"))
	}

	return feature.NewManager(afero.NewOsFs(), root, *cfg), nil
}

// newPrinter builds the styled printer for a command's stdout.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), plainFlag)
}

// exactFeatureArgs validates a fixed argument count, reporting a structured
// usage error so the process exits with ExitInvalidArguments.
func exactFeatureArgs(n int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return NewExitError(ExitInvalidArguments,
				errors.NewArgumentErrorWithUsage(
					fmt.Sprintf("expected %d argument(s), got %d", n, len(args)),
					usage,
				))
		}
		return nil
	}
}
