package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/cmd/cuectl/cmd/auth"
	"github.com/virgilvox/launchcue-sub001/cmd/cuectl/cmd/project"
	"github.com/virgilvox/launchcue-sub001/cmd/cuectl/cmd/task"
	"github.com/virgilvox/launchcue-sub001/cmd/cuectl/cmd/team"
	"github.com/virgilvox/launchcue-sub001/internal/client"
	"github.com/virgilvox/launchcue-sub001/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "cuectl",
	Short: "LaunchCue CLI - agency workspace client",
	Long: `cuectl is the command-line interface for LaunchCue, a workspace for
agencies managing clients, projects, tasks, and invoices across teams.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("server") {
			cfg.ServerURL = serverURL
		}
		if nonInteractive {
			cfg.NonInteractive = true
		}
		cfg.Provider = client.NewProvider(cfg.ServerURL)
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:3000", "LaunchCue API server URL")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via LAUNCHCUE_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(team.TeamCmd)
	rootCmd.AddCommand(project.ProjectCmd)
	rootCmd.AddCommand(task.TaskCmd)
}
