// Package logging routes the standard logger to a per-operation append-only
// log file alongside stderr, so every junbi run leaves a trace under the
// data directory.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup points the stdlib logger at logs/<op>.log (append) plus stderr.
// The returned closer flushes and detaches the file; callers defer it.
// Logging must never block an operation, so setup failures degrade to
// stderr-only logging.
func Setup(logsDir, op string) func() {
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		log.Printf("warning: cannot create %s: %v", logsDir, err)
		return func() {}
	}

	path := filepath.Join(logsDir, op+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("warning: cannot open %s: %v", path, err)
		return func() {}
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	fmt.Fprintf(f, "--- junbi %s ---\n", op)

	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}
}
