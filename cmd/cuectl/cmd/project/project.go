package project

import (
	"github.com/spf13/cobra"
)

// ProjectCmd is the parent command for project operations
var ProjectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `Commands for listing, creating, and working with projects in the active team.`,
}

func init() {
	ProjectCmd.AddCommand(listCmd)
	ProjectCmd.AddCommand(getCmd)
	ProjectCmd.AddCommand(createCmd)
	ProjectCmd.AddCommand(useCmd)
	ProjectCmd.AddCommand(deleteCmd)
}
