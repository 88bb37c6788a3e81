package dirctx

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	// ContextFileName is the name of the per-directory context file
	ContextFileName = ".launchcue"
	// ContextFileVersion is the current schema version
	ContextFileVersion = "1"
)

// DirectoryContext binds a working directory to a LaunchCue project, so
// project and task commands run there can omit the --project flag.
type DirectoryContext struct {
	Version   string    `json:"version"`
	ProjectID string    `json:"project_id"`
	ServerURL string    `json:"server_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks if the DirectoryContext is valid
func (dc *DirectoryContext) Validate() error {
	if dc.Version != ContextFileVersion {
		return fmt.Errorf("unsupported %s file version: %s (expected %s)", ContextFileName, dc.Version, ContextFileVersion)
	}
	if dc.ProjectID == "" {
		return fmt.Errorf("project_id is required")
	}
	if _, err := uuid.Parse(dc.ProjectID); err != nil {
		return fmt.Errorf("invalid project_id format: %w", err)
	}
	return nil
}

// Read loads the context file from the current directory.
// Returns nil, nil if the file doesn't exist.
func Read() (*DirectoryContext, error) {
	data, err := os.ReadFile(ContextFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s file: %w", ContextFileName, err)
	}

	var ctx DirectoryContext
	if err := json.Unmarshal(data, &ctx); err != nil {
		return nil, fmt.Errorf("corrupted %s file (invalid JSON): %w", ContextFileName, err)
	}
	if err := ctx.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s file: %w", ContextFileName, err)
	}
	return &ctx, nil
}

// Write persists the directory context atomically via temp file + rename.
func Write(ctx *DirectoryContext) error {
	if err := ctx.Validate(); err != nil {
		return fmt.Errorf("invalid context: %w", err)
	}

	data, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal context: %w", err)
	}
	// Trailing newline for better git diffs
	data = append(data, '\n')

	tmpPath := ContextFileName + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, ContextFileName); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s to %s: %w", tmpPath, ContextFileName, err)
	}
	return nil
}

// ResolveProjectID applies priority: an explicit --project flag wins, then the
// directory context, then an error.
func ResolveProjectID(explicit string, contextual *DirectoryContext) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if contextual != nil && contextual.ProjectID != "" {
		return contextual.ProjectID, nil
	}
	return "", fmt.Errorf("project identifier required: specify --project or run in a directory with %s context", ContextFileName)
}

// Path returns the absolute path to the context file in the current directory.
func Path() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return filepath.Join(cwd, ContextFileName), nil
}
