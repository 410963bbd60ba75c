// Package service starts and stops the background model runner. Start and
// stop share no in-memory state; the truth about what is running is always
// re-derived from the OS (PID file, process table, health probe).
package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/ollama"
)

// settleInterval is how long a freshly spawned runner gets before the single
// readiness poll. Empirically enough for local model-server initialization;
// not derived from anything.
const settleInterval = 3 * time.Second

// stopWait is how long a terminated runner gets to disappear before the
// absence poll.
const stopWait = 2 * time.Second

// StartError reports a runner that did not become ready within the settle
// window. The spawned process is deliberately left running: it may simply be
// initializing slower than the window, and killing it would lose that work.
type StartError struct {
	PID int
}

func (e *StartError) Error() string {
	return fmt.Sprintf("service did not become ready (pid %d left running; check 'junbi status' shortly)", e.PID)
}

// StopError reports a runner that was signaled but still answers health
// probes. There is no automatic force-kill escalation.
type StopError struct {
	PID int
}

func (e *StopError) Error() string {
	return fmt.Sprintf("service (pid %d) is still responding after termination signal", e.PID)
}

// StopOutcome distinguishes the two successful stop results.
type StopOutcome int

const (
	// OutcomeStopped means a running service was terminated.
	OutcomeStopped StopOutcome = iota
	// OutcomeAlreadyStopped means nothing was running. Idempotent success.
	OutcomeAlreadyStopped
)

// Controller owns the Handle lifecycle: it is the only component that
// creates or destroys PID files.
type Controller struct {
	runner  execx.Runner
	client  *ollama.Client
	pidFile string
	logPath string

	settle   time.Duration
	stopWait time.Duration

	// OS seams, swapped out in tests.
	terminate func(pid int) error
	alive     func(pid int) bool
}

// New creates a Controller. The runner's output is appended to logPath.
func New(runner execx.Runner, client *ollama.Client, pidFile, logPath string) *Controller {
	return &Controller{
		runner:    runner,
		client:    client,
		pidFile:   pidFile,
		logPath:   logPath,
		settle:    settleInterval,
		stopWait:  stopWait,
		terminate: terminateProcess,
		alive:     processAlive,
	}
}

// Start spawns `ollama serve` detached, records the handle, waits the settle
// interval, and polls readiness once. A service that is already ready is a
// no-op. On a failed readiness poll the process is left running (see
// StartError).
func (c *Controller) Start(ctx context.Context) (Handle, error) {
	if c.client.Check(ctx) == ollama.StatusReady {
		h, err := LoadHandle(c.pidFile, c.client.BaseURL())
		if err != nil {
			// Running but started outside junbi; no PID on record.
			h = Handle{Endpoint: c.client.BaseURL()}
		}
		log.Printf("service already running at %s", c.client.BaseURL())
		return h, nil
	}

	pid, err := c.runner.StartDetached(execx.Cmd{
		Name: ollama.BinaryName,
		Args: []string{"serve"},
	}, c.logPath)
	if err != nil {
		return Handle{}, fmt.Errorf("spawn %s serve: %w", ollama.BinaryName, err)
	}

	h := Handle{PID: pid, Endpoint: c.client.BaseURL()}
	if err := h.Save(c.pidFile); err != nil {
		// The service is up either way; Stop can still find it by scan.
		log.Printf("warning: %v", err)
	}
	log.Printf("spawned %s serve (pid %d)", ollama.BinaryName, pid)

	c.settleWait(ctx)

	if c.client.Check(ctx) != ollama.StatusReady {
		return h, &StartError{PID: pid}
	}
	return h, nil
}

// Stop terminates the running service. The process is located via the PID
// file first, falling back to a process-table scan; finding nothing is the
// idempotent OutcomeAlreadyStopped. A service that still answers probes
// after the termination signal is a StopError; there is no retry and no
// force kill.
func (c *Controller) Stop(ctx context.Context) (StopOutcome, error) {
	h, found := c.locate(ctx)
	if !found {
		return OutcomeAlreadyStopped, nil
	}

	if err := c.terminate(h.PID); err != nil {
		// Raced with the process exiting on its own.
		log.Printf("termination signal to pid %d failed (already gone?): %v", h.PID, err)
		RemoveHandle(c.pidFile)
		return OutcomeStopped, nil
	}
	log.Printf("sent termination signal to pid %d", h.PID)

	select {
	case <-ctx.Done():
	case <-time.After(c.stopWait):
	}

	if c.client.Check(ctx) == ollama.StatusReady {
		return 0, &StopError{PID: h.PID}
	}

	RemoveHandle(c.pidFile)
	return OutcomeStopped, nil
}

// locate finds the running service, PID file first, process table second.
// A stale PID file (recorded process no longer alive) is cleaned up.
func (c *Controller) locate(ctx context.Context) (Handle, bool) {
	if h, err := LoadHandle(c.pidFile, c.client.BaseURL()); err == nil {
		if c.alive(h.PID) {
			return h, true
		}
		RemoveHandle(c.pidFile)
	}

	if pid, ok := c.scanProcessTable(ctx); ok {
		return Handle{PID: pid, Endpoint: c.client.BaseURL()}, true
	}
	return Handle{}, false
}

// scanProcessTable looks for an `ollama serve` command line via pgrep.
func (c *Controller) scanProcessTable(ctx context.Context) (int, bool) {
	res, err := c.runner.Run(ctx, execx.Cmd{
		Name: "pgrep",
		Args: []string{"-f", ollama.BinaryName + " serve"},
	}, execx.ModeCapture)
	if err != nil {
		// pgrep exits 1 when nothing matches; either way, not found.
		return 0, false
	}

	fields := strings.Fields(res.Stdout)
	if len(fields) == 0 {
		return 0, false
	}
	pid, err := strconv.Atoi(fields[0])
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}

// settleWait blocks for the settle interval with a spinner so the wait
// doesn't look like a hang.
func (c *Controller) settleWait(ctx context.Context) {
	if c.settle <= 0 {
		return
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("waiting for the runner to come up"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	defer bar.Finish()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.Now().Add(c.settle)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bar.Add(1)
			if time.Now().After(deadline) {
				return
			}
		}
	}
}
