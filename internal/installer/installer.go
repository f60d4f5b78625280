package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// stderrTailLines is how many trailing stderr lines a failure reports.
const stderrTailLines = 10

// Runner executes installer commands.
type Runner struct {
	stdout     io.Writer
	stderr     io.Writer
	spinnerOut io.Writer

	// For mocking in tests.
	commandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Options configures a Runner.
type Options struct {
	// Stdout and Stderr receive a copy of the command's output. Both default
	// to io.Discard.
	Stdout io.Writer
	Stderr io.Writer
	// SpinnerOut, when set, shows a progress spinner on that writer while
	// the command runs. Leave nil when output is not a terminal.
	SpinnerOut io.Writer
}

// New creates a Runner. A nil opts discards all command output.
func New(opts *Options) *Runner {
	if opts == nil {
		opts = &Options{}
	}
	r := &Runner{
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		spinnerOut:  opts.SpinnerOut,
		commandFunc: exec.CommandContext,
	}
	if r.stdout == nil {
		r.stdout = io.Discard
	}
	if r.stderr == nil {
		r.stderr = io.Discard
	}
	return r
}

// Run executes command (program followed by its arguments) with dir as the
// working directory. A non-zero exit status is an error that carries the
// tail of the command's stderr.
func (r *Runner) Run(ctx context.Context, dir string, command []string) error {
	if len(command) == 0 {
		return errors.New("installer command is empty")
	}
	if dir == "" {
		return errors.New("installer working directory is empty")
	}

	if r.spinnerOut == nil {
		return r.run(ctx, dir, command)
	}
	return runWithSpinner(r.spinnerOut, "Running "+command[0], func() error {
		return r.run(ctx, dir, command)
	})
}

func (r *Runner) run(ctx context.Context, dir string, command []string) error {
	name := command[0]
	cmd := r.commandFunc(ctx, name, command[1:]...)
	cmd.Dir = dir

	var stderrBuf bytes.Buffer
	cmd.Stdout = r.stdout
	cmd.Stderr = io.MultiWriter(r.stderr, &stderrBuf)

	err := cmd.Run()
	if err == nil {
		return nil
	}

	line := strings.Join(command, " ")
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("running %s: command %q not found, install it and try again: %w", line, name, err)
	}
	if ctx.Err() != nil {
		return fmt.Errorf("running %s: %w", line, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("%s exited with status %d%s", line, exitErr.ExitCode(), formatTail(stderrBuf.String()))
	}
	return fmt.Errorf("running %s: %w", line, err)
}

// Output runs command in dir and returns its trimmed standard output.
func (r *Runner) Output(ctx context.Context, dir string, command ...string) (string, error) {
	if len(command) == 0 {
		return "", errors.New("command is empty")
	}
	cmd := r.commandFunc(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", strings.Join(command, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}

// formatTail returns the last stderrTailLines non-empty lines of s, indented,
// or "" when s is blank.
func formatTail(s string) string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	if len(lines) > stderrTailLines {
		lines = lines[len(lines)-stderrTailLines:]
	}
	return ":\n  " + strings.Join(lines, "\n  ")
}
