package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tapfolio/tapfolio/internal/api"
	"github.com/tapfolio/tapfolio/internal/config"
	"github.com/tapfolio/tapfolio/internal/logger"
	"github.com/tapfolio/tapfolio/internal/tui/theme"
)

const (
	logoText1 = "▀█▀ ▄▀█ █▀█ █▀▀ █▀█ █   █ █▀█"
	logoText2 = " █  █▀█ █▀▀ █▀  █▄█ █▄▄ █ █▄█"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tapfolio",
	Short: "Digital business card client",
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

tapfolio is the terminal client for tap-to-share business cards. It claims
cards, edits them through a step-by-step wizard (contact details, pictures,
bio, social and other links), renders them in the terminal and exports vCards.

Configuration is loaded with the following precedence:
  ENV vars > Project config > Global config > Defaults

Project config: ./tapfolio.yml
Global config: ~/.config/tapfolio/tapfolio.yml`

	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(claimCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(vcardCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(setupCmd)
}

// parseCardID validates and canonicalizes a card uuid argument before any
// network round trip.
func parseCardID(arg string) (string, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return "", fmt.Errorf("%q is not a valid card id", arg)
	}
	return id.String(), nil
}

// newClient builds an API client from config plus the persisted token.
func newClient() (*api.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.RequireBackendURL(); err != nil {
		return nil, nil, err
	}

	token, err := api.LoadToken(cfg.TokenFile)
	if err != nil {
		return nil, nil, err
	}

	return api.New(cfg.BackendURL, token), cfg, nil
}
