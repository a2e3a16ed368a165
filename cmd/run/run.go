package run

import (
	"context"
	"errors"
	"fmt"
	"os"

	"applauncher/cmd/root"
	"applauncher/internal/config"
	"applauncher/internal/env"
	"applauncher/internal/launcher"
	"applauncher/internal/logger"
	"applauncher/internal/manifest"
	"applauncher/internal/metrics"
	"applauncher/internal/selfcheck"
	"applauncher/services"

	"github.com/spf13/cobra"
)

var (
	installDir    string
	skipSelfCheck bool
	noLaunch      bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Check the launcher, update the game and start it",
	Long: `Checks that this launcher is the latest release, applies every pending patch to the
game install and starts the game. Exit codes: 0 launched, 1 outdated launcher,
2 no install directory, 3 update or launch failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd.Context())
	},
}

func runAll(ctx context.Context) error {
	cfg := &config.Config
	if ctx == nil {
		ctx = context.Background()
	}

	if !skipSelfCheck && cfg.Launcher.ReleaseURL != "" {
		checker := selfcheck.NewChecker(cfg.Launcher.ReleaseURL, cfg.Launcher.Version, nil)
		res, err := checker.Check(ctx)
		switch {
		case err != nil:
			logger.Warnf("launcher version check failed: %v", err)
		case res.Outdated:
			return root.Exit(root.ExitOutdated, fmt.Errorf("outdated launcher %s, latest is %s: please update to the latest version of the AppLauncher", res.Current, res.Latest))
		}
	}

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

	if noLaunch {
		return nil
	}
	if _, err := launcher.Launch(job.Entry.Dir, cfg.App.Executable); err != nil {
		return root.Exit(root.ExitFailed, err)
	}
	return nil
}

func init() {
	root.RootCmd.AddCommand(runCmd)
	runCmd.Flags().SortFlags = false
	runCmd.Flags().StringVarP(&installDir, "dir", "d", "", "install directory, used when the game is not installed yet")
	runCmd.Flags().BoolVar(&skipSelfCheck, "skip-self-check", false, "do not compare the launcher with the latest release")
	runCmd.Flags().BoolVar(&noLaunch, "no-launch", false, "update only, do not start the game")
	runCmd.Example = `  applauncher run
  applauncher run --dir "C:\Games\usc"
  applauncher run --skip-self-check --no-launch`
}
