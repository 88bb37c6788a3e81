package team

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
	Short: "List the teams you belong to",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		sess, err := cfg.Provider.RequireSession()
		if err != nil {
			return err
		}

		if err := sess.LoadTeamRoster(cmd.Context()); err != nil {
			return fmt.Errorf("failed to load teams: %w", err)
		}

		teams := sess.Teams()
		if len(teams) == 0 {
			pterm.Info.Println("You are not a member of any team")
			return nil
		}

		current := sess.CurrentTeam()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROLE\tCURRENT")
		for _, m := range teams {
			marker := ""
			if current != nil && current.TeamID == m.TeamID {
				marker = "*"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.TeamID, m.TeamName, m.Role, marker)
		}
		w.Flush()
		return nil
	},
}
