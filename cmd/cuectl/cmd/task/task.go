package task

import (
	"github.com/spf13/cobra"
)

// TaskCmd is the parent command for task operations
var TaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
	Long:  `Commands for listing and creating tasks in the active team.`,
}

func init() {
	TaskCmd.AddCommand(listCmd)
	TaskCmd.AddCommand(getCmd)
	TaskCmd.AddCommand(createCmd)
	TaskCmd.AddCommand(deleteCmd)
}
