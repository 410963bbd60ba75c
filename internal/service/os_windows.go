//go:build windows

package service

import "os"

func terminateProcess(pid int) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	return p.Kill()
}

func processAlive(pid int) bool {
	// FindProcess always succeeds on Windows; rely on the PID-file +
	// health-probe combination instead of a liveness signal.
	_, err := os.FindProcess(pid)
	return err == nil
}
