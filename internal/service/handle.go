package service

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Handle identifies a running model-runner process. It is an explicit value:
// Start returns it, Stop consumes it, and the PID file is nothing more than
// its serialized form.
type Handle struct {
	PID      int
	Endpoint string
}

// Save writes the handle to path as plain integer text.
func (h Handle) Save(path string) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(h.PID)+"\n"), 0644); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	return nil
}

// LoadHandle parses a handle back from the PID file at path.
func LoadHandle(path, endpoint string) (Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Handle{}, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return Handle{}, fmt.Errorf("pid file %s is malformed: %q", path, strings.TrimSpace(string(data)))
	}
	return Handle{PID: pid, Endpoint: endpoint}, nil
}

// RemoveHandle deletes the PID file. Missing files are fine.
func RemoveHandle(path string) {
	os.Remove(path)
}
