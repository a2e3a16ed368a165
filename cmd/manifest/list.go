package manifest

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"applauncher/internal/models"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed applications and their patch levels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, found, err := store().Load()
		if err != nil {
			return err
		}
		if !found {
			fmt.Printf("No install manifest at %s\n", store().Path)
			return nil
		}
		printManifest(os.Stdout, m)
		return nil
	},
}

func printManifest(out io.Writer, m *models.InstallManifest) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPATCH\tDIR")
	for _, name := range m.Names() {
		e, _ := m.Get(name)
		fmt.Fprintf(w, "%s\t%d\t%s\n", name, e.Patch, e.Dir)
	}
	w.Flush()
}

func init() {
	manifestCmd.AddCommand(listCmd)
}
