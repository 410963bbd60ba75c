//go:build !windows

package execx

import "syscall"

// detachedSysProcAttr puts the child in its own session so it survives the
// junbi process and never receives the terminal's signals.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
