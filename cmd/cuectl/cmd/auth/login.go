package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with LaunchCue",
	Long: `Authenticates against the LaunchCue server with email and password and
stores the resulting session locally.

Missing values are prompted for interactively unless --non-interactive is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email := loginEmail
		if email == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--email is required in non-interactive mode")
			}
			value, err := pterm.DefaultInteractiveTextInput.Show("Email")
			if err != nil {
				return err
			}
			email = value
		}

		password := loginPassword
		if password == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--password is required in non-interactive mode")
			}
			value, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
			password = value
		}

		sess, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		identity, err := sess.Login(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		pterm.Success.Printf("Logged in as %s (%s)\n", identity.Name, identity.Email)
		if team := sess.CurrentTeam(); team != nil {
			pterm.Info.Printf("Current team: %s (role: %s)\n", team.TeamName, team.Role)
		} else {
			pterm.Info.Println("You are not a member of any team yet; run `cuectl team create <name>`")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
