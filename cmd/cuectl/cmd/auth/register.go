package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var (
	registerEmail    string
	registerPassword string
	registerName     string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a LaunchCue account",
	Long: `Creates a new account on the LaunchCue server and establishes a session,
following the same install path as login.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		email, password, name := registerEmail, registerPassword, registerName
		if email == "" || password == "" || name == "" {
			if cfg.NonInteractive {
				return fmt.Errorf("--email, --password, and --name are required in non-interactive mode")
			}
			var err error
			if name == "" {
				if name, err = pterm.DefaultInteractiveTextInput.Show("Name"); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = pterm.DefaultInteractiveTextInput.Show("Email"); err != nil {
					return err
				}
			}
			if password == "" {
				if password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password"); err != nil {
					return err
				}
			}
		}

		sess, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		identity, err := sess.Register(cmd.Context(), email, password, name)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		pterm.Success.Printf("Account created for %s (%s)\n", identity.Name, identity.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
}
