package team

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var switchCmd = &cobra.Command{
	Use:   "switch <team-id>",
	Short: "Switch the active team",
	Long: `Switches which team your session acts as. On success the new team-scoped
token replaces the old one; on failure the previous team remains active.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		sess, err := cfg.Provider.RequireSession()
		if err != nil {
			return err
		}

		membership, err := sess.SwitchTeam(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to switch team: %w", err)
		}

		pterm.Success.Printf("Switched to team %s (role: %s)\n", membership.TeamName, membership.Role)
		return nil
	},
}
