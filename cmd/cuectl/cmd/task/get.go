package task

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var getCmd = &cobra.Command{
	Use:   "get <task-id>",
	Short: "Show a task",
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

		item, err := cli.Tasks.Get(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get task: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%s\n", item.ID)
		fmt.Fprintf(w, "Title\t%s\n", item.Title)
		fmt.Fprintf(w, "Status\t%s\n", item.Status)
		if item.ProjectID != "" {
			fmt.Fprintf(w, "Project\t%s\n", item.ProjectID)
		}
		if item.AssigneeID != "" {
			fmt.Fprintf(w, "Assignee\t%s\n", item.AssigneeID)
		}
		if item.DueDate != nil {
			fmt.Fprintf(w, "Due\t%s\n", item.DueDate.Format("2006-01-02"))
		}
		w.Flush()
		return nil
	},
}
