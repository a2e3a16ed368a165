//go:build unix

package utils

import (
	"os/exec"
	"syscall"
)

// HideWindow is a no-op outside Windows.
func HideWindow(cmd *exec.Cmd) {}

// SetNewPG puts the child in its own process group so it outlives the launcher.
func SetNewPG(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}
