// Package install puts the model-runner binary on the host.
package install

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/ollama"
)

// manualGuidance is shown whenever the automated install cannot finish.
const manualGuidance = "install Ollama manually from https://ollama.com/download and re-run 'junbi install'"

// Outcome reports how the installer reached the installed state.
type Outcome int

const (
	// OutcomeAlreadyInstalled means the binary was already resolvable.
	OutcomeAlreadyInstalled Outcome = iota
	// OutcomeInstalled means the package manager ran and verification passed.
	OutcomeInstalled
)

// InstallError is the terminal, user-facing installation failure. There is
// no retry; Guidance tells the user how to proceed by hand.
type InstallError struct {
	Platform string
	Guidance string
	Err      error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installation failed on %s: %v (%s)", e.Platform, e.Err, e.Guidance)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Installer drives the NotInstalled -> Installed transition.
type Installer struct {
	runner execx.Runner
	goos   string
}

// New creates an Installer using the given process runner.
func New(runner execx.Runner) *Installer {
	return &Installer{runner: runner, goos: runtime.GOOS}
}

// Run performs the install. It is idempotent: a resolvable binary short-
// circuits before any package-manager invocation. After a package-manager
// run, the binary is verified again rather than assumed present.
func (i *Installer) Run(ctx context.Context) (Outcome, error) {
	if _, err := i.Version(ctx); err == nil {
		return OutcomeAlreadyInstalled, nil
	}

	installCmd, err := i.platformCommand()
	if err != nil {
		return 0, &InstallError{Platform: i.goos, Guidance: manualGuidance, Err: err}
	}

	if _, err := i.runner.Run(ctx, installCmd, execx.ModeCapture); err != nil {
		return 0, &InstallError{Platform: i.goos, Guidance: manualGuidance, Err: err}
	}

	// Verification step: "install succeeded" and "binary now resolvable"
	// are not the same claim.
	if _, err := i.Version(ctx); err != nil {
		return 0, &InstallError{
			Platform: i.goos,
			Guidance: manualGuidance,
			Err:      fmt.Errorf("installer reported success but %s is still not runnable: %w", ollama.BinaryName, err),
		}
	}

	return OutcomeInstalled, nil
}

// Version runs `ollama --version` and returns the trimmed output. It doubles
// as the installed-binary probe for the status reporter.
func (i *Installer) Version(ctx context.Context) (string, error) {
	res, err := i.runner.Run(ctx, execx.Cmd{Name: ollama.BinaryName, Args: []string{"--version"}}, execx.ModeCapture)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (i *Installer) platformCommand() (execx.Cmd, error) {
	switch i.goos {
	case "darwin":
		return execx.Cmd{Name: "brew", Args: []string{"install", "ollama"}}, nil
	case "linux":
		return execx.Cmd{Name: "sh", Args: []string{"-c", "curl -fsSL https://ollama.com/install.sh | sh"}}, nil
	case "windows":
		return execx.Cmd{Name: "winget", Args: []string{"install", "--id", "Ollama.Ollama", "-e", "--silent"}}, nil
	default:
		return execx.Cmd{}, fmt.Errorf("no automated install for %s", i.goos)
	}
}
