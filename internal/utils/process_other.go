//go:build !windows && !unix

package utils

import (
	"os/exec"
)

// HideWindow is a no-op on targets without process attributes.
func HideWindow(cmd *exec.Cmd) {}

// SetNewPG is a no-op on targets without process groups.
func SetNewPG(cmd *exec.Cmd) {}
