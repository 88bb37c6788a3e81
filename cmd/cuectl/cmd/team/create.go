package team

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new team",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		sess, err := cfg.Provider.RequireSession()
		if err != nil {
			return err
		}
		cli, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		created, err := cli.Teams.Create(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to create team: %w", err)
		}
		pterm.Success.Printf("Created team %s (%s)\n", created.Name, created.ID)

		if err := sess.LoadTeamRoster(cmd.Context()); err != nil {
			pterm.Warning.Printf("Team created but roster reload failed: %v\n", err)
		}
		return nil
	},
}
