package manifest

import (
	"fmt"
	"path/filepath"

	"applauncher/internal/models"

	"github.com/spf13/cobra"
)

var (
	setDir   string
	setPatch uint16
)

var setCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Add or overwrite the entry of an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEntry(args[0], setDir, setPatch)
	},
}

func setEntry(name, dir string, patch uint16) error {
	s := store()
	m, _, err := s.Load()
	if err != nil {
		return err
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	m.Put(name, models.InstallEntry{Dir: abs, Patch: patch})
	if err := s.Save(m); err != nil {
		return err
	}
	fmt.Printf("%s: dir=%s patch=%d\n", name, abs, patch)
	return nil
}

func init() {
	manifestCmd.AddCommand(setCmd)
	setCmd.Flags().StringVarP(&setDir, "dir", "d", "", "install directory")
	setCmd.Flags().Uint16VarP(&setPatch, "patch", "p", 0, "installed patch level")
	setCmd.MarkFlagRequired("dir")
}
