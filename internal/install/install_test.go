package install

import (
	"context"
	"errors"
	"testing"

	"github.com/ThatCatDev/junbi/internal/execx"
)

// scriptedRunner returns canned results per command name, recording calls.
type scriptedRunner struct {
	calls   []execx.Cmd
	results map[string][]runResult // keyed by Cmd.Name, consumed in order
}

type runResult struct {
	res execx.Result
	err error
}

func newScriptedRunner() *scriptedRunner {
	return &scriptedRunner{results: make(map[string][]runResult)}
}

func (s *scriptedRunner) script(name string, res execx.Result, err error) {
	s.results[name] = append(s.results[name], runResult{res, err})
}

func (s *scriptedRunner) Run(ctx context.Context, c execx.Cmd, mode execx.Mode) (execx.Result, error) {
	s.calls = append(s.calls, c)
	queue := s.results[c.Name]
	if len(queue) == 0 {
		return execx.Result{}, errors.New("unscripted command: " + c.String())
	}
	next := queue[0]
	s.results[c.Name] = queue[1:]
	return next.res, next.err
}

func (s *scriptedRunner) StartDetached(c execx.Cmd, logPath string) (int, error) {
	s.calls = append(s.calls, c)
	return 12345, nil
}

func (s *scriptedRunner) callsTo(name string) int {
	n := 0
	for _, c := range s.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

func linuxInstaller(r execx.Runner) *Installer {
	i := New(r)
	i.goos = "linux"
	return i
}

func TestRunAlreadyInstalled(t *testing.T) {
	r := newScriptedRunner()
	r.script("ollama", execx.Result{Stdout: "ollama version is 0.5.7\n"}, nil)

	outcome, err := linuxInstaller(r).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeAlreadyInstalled {
		t.Errorf("outcome = %v, want already-installed", outcome)
	}
	if got := r.callsTo("sh"); got != 0 {
		t.Errorf("package manager invoked %d times, want 0", got)
	}
}

func TestRunInstallsAndVerifies(t *testing.T) {
	r := newScriptedRunner()
	notFound := errors.New("exec: \"ollama\": executable file not found in $PATH")
	r.script("ollama", execx.Result{}, notFound)
	r.script("sh", execx.Result{Stdout: "installed"}, nil)
	r.script("ollama", execx.Result{Stdout: "ollama version is 0.5.7\n"}, nil)

	outcome, err := linuxInstaller(r).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome != OutcomeInstalled {
		t.Errorf("outcome = %v, want installed", outcome)
	}
	if got := r.callsTo("sh"); got != 1 {
		t.Errorf("package manager invoked %d times, want 1", got)
	}
	if got := r.callsTo("ollama"); got != 2 {
		t.Errorf("version check invoked %d times, want 2 (probe + verify)", got)
	}
}

func TestRunPackageManagerFails(t *testing.T) {
	r := newScriptedRunner()
	r.script("ollama", execx.Result{}, errors.New("not found"))
	r.script("sh", execx.Result{ExitCode: 1}, &execx.ProcessError{Cmd: "sh -c ...", ExitCode: 1, Stderr: "curl: (7) connection refused"})

	_, err := linuxInstaller(r).Run(context.Background())
	if err == nil {
		t.Fatal("expected install error")
	}

	var instErr *InstallError
	if !errors.As(err, &instErr) {
		t.Fatalf("expected *InstallError, got %T", err)
	}
	if instErr.Guidance == "" {
		t.Error("install error must carry manual guidance")
	}
}

func TestRunVerificationFails(t *testing.T) {
	r := newScriptedRunner()
	notFound := errors.New("not found")
	r.script("ollama", execx.Result{}, notFound)
	r.script("sh", execx.Result{Stdout: "ok"}, nil)
	r.script("ollama", execx.Result{}, notFound)

	_, err := linuxInstaller(r).Run(context.Background())
	var instErr *InstallError
	if !errors.As(err, &instErr) {
		t.Fatalf("expected *InstallError after failed verification, got %v", err)
	}
}

func TestRunUnsupportedPlatform(t *testing.T) {
	r := newScriptedRunner()
	r.script("ollama", execx.Result{}, errors.New("not found"))

	i := New(r)
	i.goos = "plan9"

	_, err := i.Run(context.Background())
	var instErr *InstallError
	if !errors.As(err, &instErr) {
		t.Fatalf("expected *InstallError, got %v", err)
	}
}
