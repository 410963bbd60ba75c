// Package execx wraps external-process invocation for the junbi commands.
// Every component that shells out to the model runner or a package manager
// goes through the Runner interface, which keeps process spawning mockable
// in tests.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

const maxCapturedOutput = 64 * 1024 // 64KB

// Mode selects how a command's output is handled.
type Mode int

const (
	// ModeCapture buffers stdout and stderr and returns them as text.
	ModeCapture Mode = iota
	// ModeStream inherits the caller's stdout/stderr so progress output
	// (e.g. ollama pull) is visible as it happens.
	ModeStream
)

// Cmd describes one external-process invocation.
type Cmd struct {
	Name string
	Args []string
	Env  []string // extra environment entries, appended to os.Environ()
	Dir  string
}

func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result holds the outcome of a completed invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ProcessError reports a command that exited non-zero. The captured stderr
// (capture mode only) travels with the error so callers can surface it.
type ProcessError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d: %s", e.Cmd, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("%s exited with code %d", e.Cmd, e.ExitCode)
}

// Runner is the process-spawning seam used by every junbi component.
type Runner interface {
	// Run executes the command and waits for it to exit. A non-zero exit
	// yields a *ProcessError alongside the Result.
	Run(ctx context.Context, c Cmd, mode Mode) (Result, error)

	// StartDetached launches the command in its own session and returns
	// its PID without waiting for exit. Output is appended to logPath when
	// non-empty. The caller does not own the child's lifecycle beyond the
	// returned PID.
	StartDetached(c Cmd, logPath string) (int, error)
}

// New returns the Runner backed by os/exec.
func New() Runner {
	return execRunner{}
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, c Cmd, mode Mode) (Result, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var stdout, stderr bytes.Buffer
	switch mode {
	case ModeStream:
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	default:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()

	res := Result{
		Stdout: truncate(stdout.String()),
		Stderr: truncate(stderr.String()),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, &ProcessError{Cmd: c.String(), ExitCode: res.ExitCode, Stderr: res.Stderr}
		}
		// Not found, ctx cancelled, etc.
		res.ExitCode = -1
		return res, fmt.Errorf("run %s: %w", c.Name, err)
	}

	return res, nil
}

func (execRunner) StartDetached(c Cmd, logPath string) (int, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.SysProcAttr = detachedSysProcAttr()

	if logPath != "" {
		logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return 0, fmt.Errorf("open log file: %w", err)
		}
		defer logFile.Close()
		cmd.Stdout = logFile
		cmd.Stderr = logFile
	}

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start %s: %w", c.Name, err)
	}

	pid := cmd.Process.Pid
	// Hand the child to the OS; junbi never waits on it.
	cmd.Process.Release()
	return pid, nil
}

func truncate(s string) string {
	if len(s) <= maxCapturedOutput {
		return s
	}
	return s[:maxCapturedOutput] + fmt.Sprintf("\n[truncated: output was %d bytes]", len(s))
}
