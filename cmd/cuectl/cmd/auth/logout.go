package auth

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from LaunchCue",
	Long: `Notifies the server best-effort and clears the local session. Local
teardown happens even when the server is unreachable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		sess, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		sess.Logout(cmd.Context())
		fmt.Println("Logged out successfully")
		return nil
	},
}
