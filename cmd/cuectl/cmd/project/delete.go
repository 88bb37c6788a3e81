package project

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <project-id>",
	Short: "Delete a project",
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

		if err := cli.Projects.Delete(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}

		pterm.Success.Printf("Deleted project %s\n", args[0])
		return nil
	},
}
