package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/virgilvox/launchcue-sub001/internal/config"
	"golang.org/x/oauth2"
)

var shellFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the session token for external tools",
	Long: `Export the stored session token as environment variables, or as an
OAuth2 token document for tools that consume token JSON.

Supported formats:
  - posix (bash, zsh, sh) - default
  - fish
  - powershell
  - json (oauth2 token document)

Usage:
  # POSIX shells (bash/zsh/sh)
  eval $(cuectl auth export)

  # Fish shell
  eval (cuectl auth export --shell fish)

  # PowerShell
  cuectl auth export --shell powershell | Invoke-Expression

The token is loaded from your stored login session. If not logged in or the
token is expired, you will be prompted to run 'cuectl auth login'.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&shellFormat, "shell", "", "Output format: posix, fish, powershell, json (auto-detected if not specified)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.MustFromContext(cmd.Context())

	sess, err := cfg.Provider.RequireSession()
	if err != nil {
		return err
	}

	creds := sess.Credentials()
	if creds == nil {
		return fmt.Errorf("no credentials found\n\nPlease run 'cuectl auth login' first")
	}
	if creds.IsExpired() {
		return fmt.Errorf("session token has expired\n\nPlease run 'cuectl auth login' to refresh your session")
	}

	if shellFormat == "" {
		shellFormat = detectShell()
	}

	switch strings.ToLower(shellFormat) {
	case "posix", "bash", "zsh", "sh":
		printPosixExport(creds.Token)
	case "fish":
		printFishExport(creds.Token)
	case "powershell", "pwsh", "ps1":
		printPowerShellExport(creds.Token)
	case "json":
		return printTokenJSON(creds.Token, creds.ExpiresAt)
	default:
		return fmt.Errorf("unsupported format: %s\n\nSupported formats: posix, fish, powershell, json", shellFormat)
	}

	return nil
}

// detectShell attempts to detect the current shell from the SHELL environment variable
func detectShell() string {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "posix"
	}

	switch filepath.Base(shell) {
	case "fish":
		return "fish"
	case "pwsh", "powershell":
		return "powershell"
	default:
		// POSIX for bash, zsh, sh, and unknown shells
		return "posix"
	}
}

func printPosixExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   eval $(cuectl auth export)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("export LAUNCHCUE_TOKEN=\"%s\"\n", token)
}

func printFishExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   eval (cuectl auth export --shell fish)")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("set -x LAUNCHCUE_TOKEN \"%s\"\n", token)
}

func printPowerShellExport(token string) {
	if isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stderr, "# Run this command to configure your environment:")
		fmt.Fprintln(os.Stderr, "#   cuectl auth export --shell powershell | Invoke-Expression")
		fmt.Fprintln(os.Stderr, "")
	}
	fmt.Printf("$env:LAUNCHCUE_TOKEN=\"%s\"\n", token)
}

// printTokenJSON emits the session token as an oauth2 token document so tools
// that read token files can consume it directly.
func printTokenJSON(token string, expiry time.Time) error {
	doc := oauth2.Token{
		AccessToken: token,
		TokenType:   "Bearer",
		Expiry:      expiry,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// isTerminal checks if the given file is a terminal (TTY)
func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
