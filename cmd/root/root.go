package root

import (
	"fmt"

	"applauncher/internal/config"
	"applauncher/internal/logger"

	"github.com/spf13/cobra"
)

var ConfigPath string

var RootCmd = &cobra.Command{
	Use:           "applauncher",
	Short:         "Keeps a game install patched and launches it",
	Long:          `applauncher checks for a newer launcher, applies pending patches to the game install with butler and starts the game`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(ConfigPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		c := &config.Config.Log
		logger.InitLogger(c.Path, c.Level, cmd.Name() == "server", c.MaxSize)
		return nil
	},
}

// Exit codes of the run and update commands.
const (
	ExitOK           = 0
	ExitOutdated     = 1
	ExitNoInstallDir = 2
	ExitFailed       = 3
)

// ExitError ends the program with a specific exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func Exit(code int, err error) *ExitError {
	return &ExitError{Code: code, Err: err}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&ConfigPath, "config", "c", "", "config file (default ./config.yaml or <data-dir>/config.yaml)")
}
