// Package cli tests command registration, argument validation, and exit-code
// mapping for the speclog commands.
package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/speclog/internal/errors"
	"github.com/ariel-frischer/speclog/internal/feature"
)

// getCommand finds a registered subcommand by its first Use word.
func getCommand(name string) *cobra.Command {
	for _, cmd := range rootCmd.Commands() {
		if strings.Fields(cmd.Use)[0] == name {
			return cmd
		}
	}
	return nil
}

func TestCommandRegistration(t *testing.T) {
	tests := map[string]struct {
		name  string
		group string
	}{
		"create":   {name: "create", group: GroupFeature},
		"log":      {name: "log", group: GroupFeature},
		"update":   {name: "update", group: GroupFeature},
		"complete": {name: "complete", group: GroupFeature},
		"config":   {name: "config", group: GroupInternal},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := getCommand(tt.name)
			require.NotNil(t, cmd, "%s command should be registered", tt.name)
			assert.Equal(t, tt.group, cmd.GroupID)
		})
	}
}

func TestPersistentFlags(t *testing.T) {
	for _, name := range []string{"specs-dir", "plain"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "flag %s should exist", name)
	}
}

func TestArgumentValidation(t *testing.T) {
	tests := map[string]struct {
		command string
		args    []string
		wantErr bool
	}{
		"create no args":        {command: "create", args: []string{}, wantErr: true},
		"create one arg":        {command: "create", args: []string{"001-test"}, wantErr: false},
		"create two args":       {command: "create", args: []string{"001-test", "x"}, wantErr: true},
		"log missing message":   {command: "log", args: []string{"001-test"}, wantErr: true},
		"log with message":      {command: "log", args: []string{"001-test", "did a thing"}, wantErr: false},
		"log unquoted message":  {command: "log", args: []string{"001-test", "did", "a", "thing"}, wantErr: false},
		"update no args":        {command: "update", args: []string{}, wantErr: true},
		"complete extra args":   {command: "complete", args: []string{"001-test", "extra"}, wantErr: true},
		"complete with feature": {command: "complete", args: []string{"001-test"}, wantErr: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd := getCommand(tt.command)
			require.NotNil(t, cmd)
			err := cmd.Args(cmd, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitInvalidArguments, exitCodeFor(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"explicit exit error": {
			err:  NewExitError(ExitMissingPrecondition, errors.NewPreconditionError("gone")),
			want: ExitMissingPrecondition,
		},
		"argument cli error": {
			err:  errors.NewArgumentError("bad"),
			want: ExitInvalidArguments,
		},
		"precondition cli error": {
			err:  errors.NewPreconditionError("missing"),
			want: ExitMissingPrecondition,
		},
		"plain error": {
			err:  assert.AnError,
			want: ExitRuntimeFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.err))
		})
	}
}

func TestWrapDomainError(t *testing.T) {
	tests := map[string]struct {
		err      error
		wantCode int
	}{
		"missing path": {
			err:      &feature.MissingPathError{Path: "specs/404-gone"},
			wantCode: ExitMissingPrecondition,
		},
		"empty message": {
			err:      feature.ErrEmptyMessage,
			wantCode: ExitInvalidArguments,
		},
		"other error": {
			err:      assert.AnError,
			wantCode: ExitRuntimeFailure,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			wrapped := wrapDomainError(tt.err)
			require.Error(t, wrapped)
			assert.Equal(t, tt.wantCode, exitCodeFor(wrapped))
			assert.NotNil(t, asCLIError(wrapped), "domain errors surface as structured CLI errors")
		})
	}

	assert.NoError(t, wrapDomainError(nil))
}

func TestNormalizeLogArgs(t *testing.T) {
	tests := map[string]struct {
		args []string
		want []string
	}{
		"quoted message": {
			args: []string{"001-test", "one message"},
			want: []string{"001-test", "one message"},
		},
		"unquoted words folded": {
			args: []string{"001-test", "did", "a", "thing"},
			want: []string{"001-test", "did a thing"},
		},
		"id only": {
			args: []string{"001-test"},
			want: []string{"001-test"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeLogArgs(tt.args))
		})
	}
}
