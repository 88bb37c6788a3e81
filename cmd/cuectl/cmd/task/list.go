package task

import (
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
	"github.com/virgilvox/launchcue-sub001/internal/dirctx"
)

var listProjectID string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks in the active team",
	Long: `Lists tasks, optionally filtered to one project. When --project is omitted
and the current directory is bound to a project, that project is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.Provider.RequireSession(); err != nil {
			return err
		}
		cli, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		var query url.Values
		projectID := listProjectID
		if projectID == "" {
			if dc, err := dirctx.Read(); err == nil && dc != nil {
				projectID = dc.ProjectID
			}
		}
		if projectID != "" {
			query = url.Values{"project_id": {projectID}}
		}

		tasks, err := cli.Tasks.List(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if len(tasks) == 0 {
			pterm.Info.Println("No tasks found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPROJECT\tDUE")
		for _, t := range tasks {
			due := ""
			if t.DueDate != nil {
				due = t.DueDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Title, t.Status, t.ProjectID, due)
		}
		w.Flush()
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listProjectID, "project", "", "Filter tasks to one project")
}
