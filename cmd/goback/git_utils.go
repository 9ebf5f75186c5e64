package main

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

var errGitNotInstalled = errors.New("git not installed")
var errNotInGitRepository = errors.New("not in a git repository")

var gitPath = func() (string, error) {
	return exec.LookPath("git")
}

func requireGitPath() (string, error) {
	path, err := gitPath()
	if err != nil {
		return "", errGitNotInstalled
	}
	return path, nil
}

// repoRootForDir walks up from dir (cwd when empty) to the first directory
// holding a .git entry.
func repoRootForDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errNotInGitRepository
		}
		dir = wd
	}
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errNotInGitRepository
	}
	for {
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}
	return "", errNotInGitRepository
}

// isLinkedWorktreeDir reports whether dir/.git is a "gitdir:" pointer file,
// as in linked worktrees and submodules.
func isLinkedWorktreeDir(dir string) bool {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return false
	}
	dotGit := filepath.Join(dir, ".git")
	info, err := os.Stat(dotGit)
	if err != nil || info.IsDir() {
		return false
	}
	data, err := os.ReadFile(dotGit)
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(string(data)), "gitdir:")
}
