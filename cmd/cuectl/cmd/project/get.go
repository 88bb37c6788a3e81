package project

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var getCmd = &cobra.Command{
	Use:   "get <project-id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.Provider.RequireSession(); err != nil {
			return err
		}
		cli, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		p, err := cli.Projects.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", p.ID)
		fmt.Fprintf(w, "Name\t%s\n", p.Name)
		if p.Description != "" {
			fmt.Fprintf(w, "Description\t%s\n", p.Description)
		}
		if p.ClientID != "" {
			fmt.Fprintf(w, "Client\t%s\n", p.ClientID)
		}
		fmt.Fprintf(w, "Status\t%s\n", p.Status)
		if p.DueDate != nil {
			fmt.Fprintf(w, "Due\t%s\n", p.DueDate.Format("2006-01-02"))
		}
		w.Flush()
		return nil
	},
}
