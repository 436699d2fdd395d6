// Package pathutil derives display names and content-type labels for
// file context items.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Abbreviate shortens an absolute path for display. Paths inside a
// git work tree become work-tree-relative; paths under the home
// directory get the usual tilde prefix; everything else is just
// cleaned.
func Abbreviate(path string) string {
	cleaned := filepath.Clean(path)

	if root, ok := worktreeRoot(cleaned); ok {
		if rel, err := filepath.Rel(root, cleaned); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		if rel, err := filepath.Rel(home, cleaned); err == nil && !strings.HasPrefix(rel, "..") && rel != "." {
			return filepath.Join("~", rel)
		}
	}

	return cleaned
}

// worktreeRoot finds the root of the git work tree containing path,
// searching upward the way git itself does.
func worktreeRoot(path string) (string, bool) {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(path), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", false
	}
	wt, err := repo.Worktree()
	if err != nil {
		// Bare repository: nothing to be relative to.
		return "", false
	}
	return wt.Filesystem.Root(), true
}
