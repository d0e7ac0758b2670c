package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tapfolio/tapfolio/internal/api"
	"github.com/tapfolio/tapfolio/internal/config"
)

var loginCmd = &cobra.Command{
	Use:   "login [token]",
	Short: "Log in with an access token",
	Long: `Log in with an access token issued by the tapfolio backend.

Pass the token as an argument or pipe it on stdin. The token is verified
against the backend before being stored (mode 0600) next to the config file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.RequireBackendURL(); err != nil {
		return err
	}

	var token string
	if len(args) == 1 {
		token = strings.TrimSpace(args[0])
	} else {
		fmt.Fprint(os.Stderr, "Token: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading token: %w", err)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		return fmt.Errorf("no token provided")
	}

	// Verify before persisting
	client := api.New(cfg.BackendURL, token)
	user, err := client.Me(cmd.Context())
	if err != nil {
		return fmt.Errorf("token rejected: %w", err)
	}

	if err := api.SaveToken(cfg.TokenFile, token); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s).\n", user.Name, user.Email)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := api.ClearToken(cfg.TokenFile); err != nil {
			return err
		}
		fmt.Println("Logged out.")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient()
		if err != nil {
			return err
		}

		user, err := client.Me(cmd.Context())
		if err != nil {
			if api.IsAuth(err) {
				fmt.Println("Not logged in.")
				return nil
			}
			return err
		}

		fmt.Printf("%s <%s>\n", user.Name, user.Email)
		if user.IsAdmin() {
			fmt.Println("Role: admin")
		}
		return nil
	},
}
