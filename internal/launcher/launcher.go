package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"applauncher/internal/logger"
	"applauncher/internal/utils"
)

// ExecutablePath resolves the program to start inside an install directory.
func ExecutablePath(installDir, executable string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(executable), ".exe") {
		executable += ".exe"
	}
	return filepath.Join(installDir, executable)
}

/**
 * Start the application without waiting for it
 * @param {string} installDir - Install directory, also the working directory of the program
 * @param {string} executable - Program name relative to installDir
 * @param {...string} args - Program arguments
 * @returns {int} Process id of the started program
 * @description
 * - The program runs in its own process group and outlives the launcher
 */
func Launch(installDir, executable string, args ...string) (int, error) {
	path := ExecutablePath(installDir, executable)
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("launch '%s': %w", path, err)
	}
	cmd := exec.Command(path, args...)
	cmd.Dir = installDir
	utils.SetNewPG(cmd)
	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("launch '%s': %w", path, err)
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		logger.Warnf("release process %d: %v", pid, err)
	}
	logger.Infof("launched '%s', pid: %d", path, pid)
	return pid, nil
}
