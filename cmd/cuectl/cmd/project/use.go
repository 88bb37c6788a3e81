package project

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
	"github.com/virgilvox/launchcue-sub001/internal/dirctx"
)

var useCmd = &cobra.Command{
	Use:   "use <project-id>",
	Short: "Bind the current directory to a project",
	Long: `Writes a ` + dirctx.ContextFileName + ` file in the current directory so task and
project commands run here default to the given project.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		now := time.Now().UTC()
		dc := &dirctx.DirectoryContext{
			Version:   dirctx.ContextFileVersion,
			ProjectID: args[0],
			ServerURL: cfg.ServerURL,
			CreatedAt: now,
			UpdatedAt: now,
		}

		// Preserve the original creation time when rebinding.
		if existing, err := dirctx.Read(); err == nil && existing != nil {
			dc.CreatedAt = existing.CreatedAt
		}

		if err := dirctx.Write(dc); err != nil {
			return fmt.Errorf("failed to write directory context: %w", err)
		}

		path, err := dirctx.Path()
		if err != nil {
			path = dirctx.ContextFileName
		}
		pterm.Success.Printf("Bound %s to project %s\n", path, args[0])
		return nil
	},
}
