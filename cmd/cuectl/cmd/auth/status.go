package auth

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		sess, err := cfg.Provider.RequireSession()
		if err != nil {
			return err
		}

		identity := sess.Identity()
		if identity == nil {
			return fmt.Errorf("not logged in")
		}

		pterm.DefaultSection.Println("Session")
		pterm.Info.Printf("Logged in as: %s (%s)\n", identity.Name, identity.Email)
		if creds := sess.Credentials(); creds != nil {
			pterm.Info.Printf("Token expires at: %s\n", creds.ExpiresAt.Format(time.RFC1123))
		}
		if team := sess.CurrentTeam(); team != nil {
			pterm.Info.Printf("Current team: %s (role: %s)\n", team.TeamName, team.Role)
			pterm.Info.Printf("Capabilities: manage=%t edit=%t view-only=%t\n",
				sess.CanManageTeam(), sess.CanEdit(), sess.IsViewOnly())
		} else {
			pterm.Info.Println("No current team")
		}

		teams := sess.Teams()
		if len(teams) == 0 {
			return nil
		}

		pterm.DefaultSection.Println("Teams")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tROLE\tCURRENT")
		current := sess.CurrentTeam()
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
