package manifest

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Forget an application, its files are left alone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return removeEntry(args[0])
	},
}

func removeEntry(name string) error {
	s := store()
	m, found, err := s.Load()
	if err != nil {
		return err
	}
	if !found || !m.Remove(name) {
		return fmt.Errorf("%s is not in the install manifest", name)
	}
	if err := s.Save(m); err != nil {
		return err
	}
	fmt.Printf("%s removed\n", name)
	return nil
}

func init() {
	manifestCmd.AddCommand(removeCmd)
}
