package project

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var (
	createClientID    string
	createDescription string
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project in the active team",
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

		input := map[string]string{"name": args[0]}
		if createClientID != "" {
			input["client_id"] = createClientID
		}
		if createDescription != "" {
			input["description"] = createDescription
		}

		created, err := cli.Projects.Create(cmd.Context(), input)
		if err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}

		pterm.Success.Printf("Created project %s (%s)\n", created.Name, created.ID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createClientID, "client", "", "Client ID the project belongs to")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Project description")
}
