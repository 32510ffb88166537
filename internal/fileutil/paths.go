package fileutil

import "path/filepath"

// GitDir returns the .git directory path for a repository.
func GitDir(repoDir string) string {
	return filepath.Join(repoDir, ".git")
}

// HooksDir returns the Git hooks directory for a repository.
func HooksDir(repoDir string) string {
	return filepath.Join(GitDir(repoDir), "hooks")
}

// HookPath returns the path of the named hook script.
func HookPath(repoDir, name string) string {
	return filepath.Join(HooksDir(repoDir), name)
}
