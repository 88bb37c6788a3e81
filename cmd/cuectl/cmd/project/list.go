package project

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects in the active team",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.Provider.RequireSession(); err != nil {
			return err
		}
		cli, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		projects, err := cli.Projects.List(cmd.Context(), nil)
		if err != nil {
			return fmt.Errorf("failed to list projects: %w", err)
		}

		if len(projects) == 0 {
			pterm.Info.Println("No projects in the active team")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tDUE")
		for _, p := range projects {
			due := ""
			if p.DueDate != nil {
				due = p.DueDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Status, due)
		}
		w.Flush()
		return nil
	},
}
