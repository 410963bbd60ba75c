// Package status aggregates the environment checks into one report. It only
// reads: every sub-check failure becomes a report entry, never an error.
package status

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThatCatDev/junbi/internal/config"
	"github.com/ThatCatDev/junbi/internal/install"
	"github.com/ThatCatDev/junbi/internal/ollama"
)

// State classifies one component check.
type State int

const (
	StateOk State = iota
	StateMissing
	StateError
)

func (s State) String() string {
	switch s {
	case StateOk:
		return "ok"
	case StateMissing:
		return "missing"
	default:
		return "error"
	}
}

// Check is one row of the report.
type Check struct {
	Name   string
	State  State
	Detail string
}

// Report is the full aggregation.
type Report struct {
	Checks []Check
}

// Healthy reports whether every check passed.
func (r Report) Healthy() bool {
	for _, c := range r.Checks {
		if c.State != StateOk {
			return false
		}
	}
	return true
}

// Reporter runs the checks.
type Reporter struct {
	installer  *install.Installer
	client     *ollama.Client
	configPath string
	skillsDir  string
}

// New creates a Reporter over the given probes and paths.
func New(installer *install.Installer, client *ollama.Client, configPath, skillsDir string) *Reporter {
	return &Reporter{
		installer:  installer,
		client:     client,
		configPath: configPath,
		skillsDir:  skillsDir,
	}
}

// Report runs every check and returns the aggregation. It never fails.
func (r *Reporter) Report(ctx context.Context) Report {
	return Report{Checks: []Check{
		r.checkBinary(ctx),
		r.checkService(ctx),
		r.checkModels(ctx),
		r.checkConfig(),
		r.checkSkills(),
	}}
}

func (r *Reporter) checkBinary(ctx context.Context) Check {
	// The version probe is advisory here; its failure is a report entry,
	// not a surfaced process error.
	v, err := r.installer.Version(ctx)
	if err != nil {
		return Check{Name: "binary", State: StateMissing, Detail: "ollama not found; run 'junbi install'"}
	}
	return Check{Name: "binary", State: StateOk, Detail: v}
}

func (r *Reporter) checkService(ctx context.Context) Check {
	if r.client.Check(ctx) == ollama.StatusReady {
		return Check{Name: "service", State: StateOk, Detail: r.client.BaseURL()}
	}
	return Check{Name: "service", State: StateMissing, Detail: "not running; run 'junbi start'"}
}

func (r *Reporter) checkModels(ctx context.Context) Check {
	if r.client.Check(ctx) != ollama.StatusReady {
		return Check{Name: "models", State: StateMissing, Detail: "service not running"}
	}
	tags, err := r.client.Tags(ctx)
	if err != nil {
		return Check{Name: "models", State: StateError, Detail: err.Error()}
	}
	if len(tags.Models) == 0 {
		return Check{Name: "models", State: StateMissing, Detail: "no models; run 'junbi pull'"}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return Check{Name: "models", State: StateOk, Detail: fmt.Sprintf("%d available: %s", len(names), strings.Join(names, ", "))}
}

func (r *Reporter) checkConfig() Check {
	a, err := config.LoadAssistant(r.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Check{Name: "config", State: StateMissing, Detail: "not written; run 'junbi init'"}
		}
		return Check{Name: "config", State: StateError, Detail: err.Error()}
	}
	return Check{Name: "config", State: StateOk, Detail: "model " + a.Model}
}

func (r *Reporter) checkSkills() Check {
	matches, err := filepath.Glob(filepath.Join(r.skillsDir, "*.md"))
	if err != nil || len(matches) == 0 {
		return Check{Name: "skills", State: StateMissing, Detail: "skill pack not installed; run 'junbi init'"}
	}
	return Check{Name: "skills", State: StateOk, Detail: fmt.Sprintf("%d skill(s) installed", len(matches))}
}
