// Package download pulls model weights through the runner's CLI, one model
// at a time. The underlying tool serializes model loads, so parallel pulls
// would contend rather than speed anything up.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"

	"github.com/ThatCatDev/junbi/internal/execx"
	"github.com/ThatCatDev/junbi/internal/ollama"
)

// ErrEmptySelection is returned before any process is spawned when the
// caller provides no models to pull.
var ErrEmptySelection = errors.New("no models selected")

// Status tags a per-model outcome.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailed
)

// Result is the per-model outcome of a pull run.
type Result struct {
	Spec   Spec
	Status Status
	Err    string // populated when Status is StatusFailed
}

// Downloader runs pull batches.
type Downloader struct {
	runner execx.Runner
	out    io.Writer
}

// New creates a Downloader. Console notices go to out (os.Stdout when nil).
func New(runner execx.Runner) *Downloader {
	return &Downloader{runner: runner, out: os.Stdout}
}

// SetOutput redirects the downloader's console notices.
func (d *Downloader) SetOutput(w io.Writer) {
	d.out = w
}

// Pull downloads each selected model in order. A failing model is recorded
// and the batch continues; one bad pull never aborts the rest. The returned
// slice always has one entry per selected model, in selection order.
//
// After the loop, the runner's own model listing is printed verbatim as a
// closing summary. The listing is advisory: its failure degrades to a
// warning instead of an error.
func (d *Downloader) Pull(ctx context.Context, specs []Spec) ([]Result, error) {
	if len(specs) == 0 {
		return nil, ErrEmptySelection
	}

	runID := uuid.New().String()[:8]
	log.Printf("pull run %s: %d model(s)", runID, len(specs))

	results := make([]Result, 0, len(specs))
	for i, spec := range specs {
		fmt.Fprintf(d.out, "[%d/%d] pulling %s (%s)\n", i+1, len(specs), spec.ID, spec.Label)

		// Stream mode so the tool's own progress output stays visible.
		_, err := d.runner.Run(ctx, execx.Cmd{
			Name: ollama.BinaryName,
			Args: []string{"pull", spec.ID},
		}, execx.ModeStream)

		if err != nil {
			log.Printf("pull run %s: %s failed: %v", runID, spec.ID, err)
			fmt.Fprintf(d.out, "failed to pull %s: %v; continuing with remaining models\n", spec.ID, err)
			results = append(results, Result{Spec: spec, Status: StatusFailed, Err: err.Error()})
			continue
		}

		log.Printf("pull run %s: %s done", runID, spec.ID)
		results = append(results, Result{Spec: spec, Status: StatusSuccess})
	}

	d.printListing(ctx)
	return results, nil
}

// printListing shows what the runner has available after the batch.
func (d *Downloader) printListing(ctx context.Context) {
	res, err := d.runner.Run(ctx, execx.Cmd{
		Name: ollama.BinaryName,
		Args: []string{"list"},
	}, execx.ModeCapture)
	if err != nil {
		fmt.Fprintf(d.out, "warning: could not list installed models: %v\n", err)
		return
	}
	fmt.Fprintf(d.out, "\nInstalled models:\n%s", res.Stdout)
}

// Failed counts the failures in a result set.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Status == StatusFailed {
			n++
		}
	}
	return n
}
