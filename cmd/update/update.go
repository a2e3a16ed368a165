package update

import (
	"errors"
	"fmt"
	"os"

	"applauncher/cmd/root"
	"applauncher/internal/config"
	"applauncher/internal/env"
	"applauncher/internal/manifest"
	"applauncher/internal/metrics"
	"applauncher/services"

	"github.com/spf13/cobra"
)

var installDir string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Apply pending patches to the game install",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return update()
	},
}

func update() error {
	cfg := &config.Config
	reg := services.NewRegistry()
	pipeline := services.NewPipeline(cfg, manifest.NewStore(env.ManifestPath()), metrics.NewPipeline(reg))
	defer services.PushMetrics(cfg.Metrics.Pushgateway, reg)

	job, err := pipeline.PrepareJob(installDir)
	if errors.Is(err, services.ErrNoInstallDir) {
		return root.Exit(root.ExitNoInstallDir, fmt.Errorf("%s is not installed, select its install directory with --dir", cfg.App.Name))
	}
	if err != nil {
		return root.Exit(root.ExitFailed, err)
	}
	final := services.RunConsole(pipeline.Orchestrator(), job, cfg.UI.Tick, os.Stdout)
	if final.Failed {
		return root.Exit(root.ExitFailed, errors.New(final.Reason))
	}
	return nil
}

func init() {
	root.RootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVarP(&installDir, "dir", "d", "", "install directory, used when the game is not installed yet")
	updateCmd.Example = `  applauncher update
  applauncher update --dir /games/usc`
}
