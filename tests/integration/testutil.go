// Package integration provides end-to-end tests for the cowl libraries
// and the tally CLI binary.
package integration

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

var (
	// tallyBin is the path to the built tally binary.
	tallyBin string
	// buildErr captures any build error from TestMain.
	buildErr error
)

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// buildTally compiles the tally binary into a temp directory, recording
// the outcome in tallyBin and buildErr. Called once from TestMain.
func buildTally() func() {
	root, err := findProjectRoot()
	if err != nil {
		buildErr = err
		return func() {}
	}

	binDir, err := os.MkdirTemp("", "tally-bin")
	if err != nil {
		buildErr = err
		return func() {}
	}

	tallyBin = filepath.Join(binDir, "tally")
	cmd := exec.Command("go", "build", "-o", tallyBin, "./cmd/tally")
	cmd.Dir = root
	if out, err := cmd.CombinedOutput(); err != nil {
		buildErr = &buildError{err: err, output: string(out)}
		tallyBin = ""
	}
	return func() { os.RemoveAll(binDir) }
}

// buildError wraps a build failure with the compiler output.
type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + ": " + e.output
}

// env is an isolated config/data environment for one CLI test.
type env struct {
	t         *testing.T
	configDir string
	dataDir   string
}

// newEnv creates an isolated environment and fails the test if the
// binary did not build.
func newEnv(t *testing.T) *env {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build tally: %v", buildErr)
	}
	if tallyBin == "" {
		t.Fatal("tally binary not built")
	}

	tmp := t.TempDir()
	return &env{
		t:         t,
		configDir: filepath.Join(tmp, "config"),
		dataDir:   filepath.Join(tmp, "data"),
	}
}

// run executes the tally binary with the environment's directories and
// returns stdout. It fails the test when the command exits non-zero.
func (e *env) run(args ...string) string {
	e.t.Helper()

	out, err := e.tryRun(args...)
	if err != nil {
		e.t.Fatalf("tally %v: %v\n%s", args, err, out)
	}
	return out
}

// tryRun executes the tally binary and returns combined output and the
// exit error, if any.
func (e *env) tryRun(args ...string) (string, error) {
	e.t.Helper()

	full := append([]string{
		"--config-dir", e.configDir,
		"--data-dir", e.dataDir,
	}, args...)
	cmd := exec.Command(tallyBin, full...)

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}

// writeFile creates a file with the given content under the test's temp
// space and returns its path.
func (e *env) writeFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write %s: %v", name, err)
	}
	return path
}
