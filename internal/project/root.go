// Package project locates the project root that feature paths are resolved
// against. The root is the nearest ancestor directory containing the specs
// directory; when none is found, the git worktree root is used so the tool
// behaves the same from any subdirectory of a repository.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// FindRoot walks up from startDir looking for a directory that contains
// specsDir. If no ancestor carries the specs directory, it falls back to the
// enclosing git worktree root, and finally to startDir itself. The returned
// path is always absolute.
func FindRoot(startDir, specsDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	dir := abs
	for {
		candidate := filepath.Join(dir, specsDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if root, ok := gitWorktreeRoot(abs); ok {
		return root, nil
	}

	return abs, nil
}

// gitWorktreeRoot returns the root of the git worktree enclosing dir.
// Uses go-git's DetectDotGit to traverse up the directory tree.
func gitWorktreeRoot(dir string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", false
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", false
	}

	return worktree.Filesystem.Root(), true
}
