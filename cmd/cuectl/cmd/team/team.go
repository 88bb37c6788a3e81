package team

import (
	"github.com/spf13/cobra"
)

// TeamCmd is the parent command for team operations
var TeamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage teams",
	Long:  `Commands for listing teams, switching the active team, and creating teams.`,
}

func init() {
	TeamCmd.AddCommand(listCmd)
	TeamCmd.AddCommand(switchCmd)
	TeamCmd.AddCommand(createCmd)
}
