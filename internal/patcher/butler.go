package patcher

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"applauncher/internal/logger"
	"applauncher/internal/models"
	"applauncher/internal/utils"

	"github.com/hashicorp/go-multierror"
)

// StagingDirName is the scratch directory butler needs while applying a patch.
const StagingDirName = "butler-workingdir"

// DefaultArgs is the butler command line, one template per argument.
var DefaultArgs = []string{
	"apply",
	"--staging-dir", "{{.StagingDir}}",
	"{{.PatchFile}}",
	"{{.InstallDir}}",
	"--signature", "{{.SignatureFile}}",
}

// ApplyError reports a failed run of the patch tool with its captured output.
type ApplyError struct {
	Stdout string
	Stderr string
	Err    error
}

func (e *ApplyError) Error() string {
	msg := fmt.Sprintf("patching tool failed: %v", e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

func (e *ApplyError) Is(target error) bool {
	return target == models.ErrApplyFailed
}

/**
 * Patch applicator backed by the butler command line tool
 * @property {string} Path - Path of the butler executable
 * @property {string} WorkDir - Directory that receives the staging directory
 * @property {[]string} Args - Argument templates, DefaultArgs when empty
 */
type Butler struct {
	Path    string
	WorkDir string
	Args    []string
}

func NewButler(path, workDir string) *Butler {
	return &Butler{Path: path, WorkDir: workDir}
}

// StagingDir returns the staging directory used by Apply.
func (b *Butler) StagingDir() string {
	return filepath.Join(b.WorkDir, StagingDirName)
}

/**
 * Apply one patch to an install directory
 * @param {string} patchFile - Downloaded patch payload
 * @param {string} sigFile - Downloaded signature file
 * @param {string} installDir - Install directory to patch in place
 * @returns {error} *ApplyError when the tool fails; staging cleanup failures are errors too
 * @description
 * - Creates an empty staging directory before the tool runs
 * - Removes the staging directory on every return path
 * - stdin is the null device; stdout and stderr are captured and logged after the run
 */
func (b *Butler) Apply(ctx context.Context, patchFile, sigFile, installDir string) (err error) {
	staging := b.StagingDir()
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("remove stale staging directory '%s': %w", staging, err)
	}
	if err := os.MkdirAll(b.WorkDir, 0755); err != nil {
		return fmt.Errorf("MkdirAll('%s') error: %w", b.WorkDir, err)
	}
	if err := os.Mkdir(staging, 0755); err != nil {
		return fmt.Errorf("create staging directory '%s': %w", staging, err)
	}
	defer func() {
		if rmErr := os.RemoveAll(staging); rmErr != nil {
			err = multierror.Append(err, fmt.Errorf("remove staging directory '%s': %w", staging, rmErr))
		}
	}()

	args := b.Args
	if len(args) == 0 {
		args = DefaultArgs
	}
	name, argv, err := utils.GetCommandLine(b.Path, args, map[string]string{
		"StagingDir":    staging,
		"PatchFile":     patchFile,
		"InstallDir":    installDir,
		"SignatureFile": sigFile,
	})
	if err != nil {
		return &ApplyError{Err: err}
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, argv...)
	cmd.Stdin = nil
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	utils.HideWindow(cmd)

	logger.Debugf("Running %s %s", name, strings.Join(argv, " "))
	runErr := cmd.Run()
	logger.Infof("stdout: %s", stdout.String())
	logger.Infof("stderr: %s", stderr.String())
	if runErr != nil {
		return &ApplyError{Stdout: stdout.String(), Stderr: stderr.String(), Err: runErr}
	}
	return nil
}
