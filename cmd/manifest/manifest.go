package manifest

import (
	"applauncher/cmd/root"
	"applauncher/internal/env"
	"applauncher/internal/manifest"

	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Install manifest operations (list/set/remove)",
	Long:  `Install manifest operations (list/set/remove)`,
}

const manifestExample = `  applauncher manifest list
  applauncher manifest set unnamed-sdvx-clone --dir /games/usc --patch 9
  applauncher manifest remove unnamed-sdvx-clone`

func store() *manifest.Store {
	return manifest.NewStore(env.ManifestPath())
}

func init() {
	root.RootCmd.AddCommand(manifestCmd)

	manifestCmd.Example = manifestExample
}
