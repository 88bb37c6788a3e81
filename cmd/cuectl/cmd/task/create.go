package task

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
	"github.com/virgilvox/launchcue-sub001/internal/dirctx"
)

var createProjectID string

var createCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a task",
	Long: `Creates a task in a project. When --project is omitted the project bound to
the current directory is used.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		if _, err := cfg.Provider.RequireSession(); err != nil {
			return err
		}
		cli, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		dc, err := dirctx.Read()
		if err != nil {
			return err
		}
		projectID, err := dirctx.ResolveProjectID(createProjectID, dc)
		if err != nil {
			return err
		}

		created, err := cli.Tasks.Create(cmd.Context(), map[string]string{
			"title":      args[0],
			"project_id": projectID,
		})
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		pterm.Success.Printf("Created task %s (%s)\n", created.Title, created.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createProjectID, "project", "", "Project the task belongs to")
}
