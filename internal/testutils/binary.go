package testutils

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// ModuleRoot returns the directory holding go.mod.
func ModuleRoot() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(thisFile), "..", "..")
}

// BuildBinary compiles ./cmd/schedcheck into a fresh temporary directory and
// returns the binary path. Remove filepath.Dir of the result when done.
func BuildBinary() (string, error) {
	dir, err := os.MkdirTemp("", "schedcheck-build-*")
	if err != nil {
		return "", err
	}
	bin := filepath.Join(dir, "schedcheck")

	cmd := exec.Command("go", "build", "-o", bin, "./cmd/schedcheck")
	cmd.Dir = ModuleRoot()
	cmd.Env = append(cmd.Environ(), "CGO_ENABLED=0")
	if out, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(dir)
		return "", fmt.Errorf("go build: %w\n%s", err, out)
	}
	return bin, nil
}

// Result is the outcome of one binary run.
type Result struct {
	Stdout string
	Stderr string
	Code   int
}

// ErrorLines returns the non-empty stderr lines.
func (r Result) ErrorLines() []string {
	var lines []string
	for _, l := range strings.Split(strings.TrimRight(r.Stderr, "\n"), "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// Run executes bin in dir with an environment free of SCHEDCHECK_* variables.
// A non-zero exit is reported through Result.Code, not as an error.
func Run(bin, dir string, args ...string) (Result, error) {
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Env = CleanEnv()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	res := Result{}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.Code = exitErr.ExitCode()
		err = nil
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res, err
}

// CleanEnv is os.Environ without SCHEDCHECK_* variables.
func CleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "SCHEDCHECK_") {
			env = append(env, kv)
		}
	}
	return env
}
