//go:build windows

package execx

import "syscall"

const createNewProcessGroup = 0x00000200

func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNewProcessGroup}
}
