//go:build windows

package utils

import (
	"os/exec"
	"syscall"
)

// CREATE_NO_WINDOW keeps console tools from flashing a window
const CREATE_NO_WINDOW = 0x08000000

// HideWindow starts the command without a console window.
func HideWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
	cmd.SysProcAttr.CreationFlags |= CREATE_NO_WINDOW
}

// SetNewPG starts the child in a new process group so it outlives the launcher.
func SetNewPG(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CreationFlags |= syscall.CREATE_NEW_PROCESS_GROUP
}
