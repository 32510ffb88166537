package hooks

import (
	"fmt"
	"os"
	"strings"

	"github.com/re-cinq/schedcheck/internal/fileutil"
	"github.com/re-cinq/schedcheck/internal/markers"
)

const (
	shebang   = "#!/bin/sh"
	command   = "schedcheck"
	PreCommit = "pre-commit"
)

func preCommitBlock(csvPath string) string {
	return fmt.Sprintf(`%s
%s validate %s || exit 1
%s`, markers.Start, command, shellQuote(csvPath), markers.End)
}

// Install adds or updates the schedcheck block in the repository's
// pre-commit hook so that commits are rejected while csvPath is invalid.
// Existing hook content is preserved.
func Install(repoDir, csvPath string) (string, error) {
	if _, err := os.Stat(fileutil.GitDir(repoDir)); err != nil {
		return "", fmt.Errorf("%s is not a git repository (no .git directory)", repoDir)
	}
	if err := os.MkdirAll(fileutil.HooksDir(repoDir), 0o755); err != nil {
		return "", fmt.Errorf("creating hooks dir: %w", err)
	}

	path := fileutil.HookPath(repoDir, PreCommit)
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("reading %s hook: %w", PreCommit, err)
	}

	content, err := markers.Insert(string(existing), preCommitBlock(csvPath), shebang)
	if err != nil {
		return "", fmt.Errorf("%s hook: %w", PreCommit, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return "", fmt.Errorf("writing %s hook: %w", PreCommit, err)
	}
	return path, nil
}

// Remove strips the schedcheck block from the pre-commit hook. A missing
// hook or one without the block is left alone.
func Remove(repoDir string) (bool, error) {
	path := fileutil.HookPath(repoDir, PreCommit)
	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s hook: %w", PreCommit, err)
	}
	if !markers.Contains(string(existing)) {
		return false, nil
	}

	content, err := markers.Remove(string(existing), shebang)
	if err != nil {
		return false, fmt.Errorf("%s hook: %w", PreCommit, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return false, fmt.Errorf("writing %s hook: %w", PreCommit, err)
	}
	return true, nil
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
