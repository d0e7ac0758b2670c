package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tapfolio/tapfolio/internal/config"
)

var setupFlags struct {
	backendURL string
	force      bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the tapfolio configuration file",
	Long: `Create the tapfolio configuration file with sensible defaults.

Writes a global config at ~/.config/tapfolio/tapfolio.yml. The backend URL is
the only required value; everything else can stay default.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupFlags.backendURL, "backend-url", "", "Base URL of the tapfolio backend")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	if setupFlags.backendURL == "" {
		return fmt.Errorf("--backend-url is required")
	}

	cfg := &config.Config{
		BackendURL: setupFlags.backendURL,
		LogLevel:   "info",
		LogFile:    "",
	}

	if err := config.WriteGlobal(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("Config written to: %s\n\n", targetPath)
	fmt.Println("Run 'tapfolio login' to connect your account.")
	return nil
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
