package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary through ldflags
const BuildVersion = "integration"

const commandTimeout = 15 * time.Second

var binaryPath string

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// Lines returns the non-empty lines of stdout
func (r CommandResult) Lines() []string {
	var lines []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Triggers returns the interval lines printed by simulate, trimmed
func (r CommandResult) Triggers() []string {
	var triggers []string
	for _, line := range r.Lines() {
		if strings.HasPrefix(line, "Simulating") || strings.HasPrefix(line, "Final:") {
			continue
		}
		triggers = append(triggers, strings.TrimSpace(line))
	}
	return triggers
}

// BuildBinary compiles ./cmd into a temp directory. Call it from TestMain.
func BuildBinary() error {
	root, err := moduleRoot()
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "gymtimer-integration-*")
	if err != nil {
		return err
	}
	binaryPath = filepath.Join(dir, "gymtimer")

	build := exec.Command("go", "build",
		"-ldflags", "-X main.Version="+BuildVersion,
		"-o", binaryPath, "./cmd")
	build.Dir = root
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	return nil
}

// CleanupBinary removes the temp directory created by BuildBinary
func CleanupBinary() {
	if binaryPath != "" {
		_ = os.RemoveAll(filepath.Dir(binaryPath))
	}
}

// Run executes the gymtimer binary in env with args
func Run(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	result := CommandResult{ExitCode: 0}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		tb.Logf("gymtimer %v timed out after %v", args, commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Logf("gymtimer %v failed to start: %v", args, err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// Plan runs `gymtimer plan` with extra flags
func Plan(tb testing.TB, env *TestEnvironment, flags ...string) CommandResult {
	tb.Helper()
	return Run(tb, env, append([]string{"plan"}, flags...)...)
}

// Simulate runs `gymtimer simulate` for seconds, adding --interval when
// interval is positive
func Simulate(tb testing.TB, env *TestEnvironment, seconds, interval int) CommandResult {
	tb.Helper()
	args := []string{"simulate", "--seconds=" + strconv.Itoa(seconds)}
	if interval > 0 {
		args = append(args, "--interval="+strconv.Itoa(interval))
	}
	return Run(tb, env, args...)
}

// SetKey runs `gymtimer settings keys set name keys`
func SetKey(tb testing.TB, env *TestEnvironment, name, keys string) CommandResult {
	tb.Helper()
	return Run(tb, env, "settings", "keys", "set", name, keys)
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
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
			return "", errors.New("go.mod not found")
		}
		dir = parent
	}
}
