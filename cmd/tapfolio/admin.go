package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tapfolio/tapfolio/internal/api"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative dashboard commands",
	Long: `Administrative dashboard commands.

All subcommands require an account with the admin role; the backend rejects
everyone else.`,
}

var adminListFlags struct {
	page    int
	limit   int
	claimed string // "", "true", "false"
}

var adminStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show card and user totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient()
		if err != nil {
			return err
		}

		stats, err := client.AdminStats(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Cards: %d total, %d claimed, %d unclaimed\n",
			stats.TotalCards, stats.ClaimedCards, stats.TotalCards-stats.ClaimedCards)
		fmt.Printf("Users: %d\n", stats.TotalUsers)
		return nil
	},
}

var adminCardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List all cards with pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient()
		if err != nil {
			return err
		}

		var claimed *bool
		if adminListFlags.claimed != "" {
			v, err := strconv.ParseBool(adminListFlags.claimed)
			if err != nil {
				return fmt.Errorf("--claimed must be true or false")
			}
			claimed = &v
		}

		page, err := client.AdminCards(cmd.Context(), adminListFlags.page, adminListFlags.limit, claimed)
		if err != nil {
			return err
		}

		for _, c := range page.Cards {
			state := "unclaimed"
			owner := ""
			if c.Owner != nil {
				state = "claimed"
				owner = c.Owner.Email
			}
			fmt.Printf("%s  %-9s  %s\n", c.UUID, state, owner)
		}
		fmt.Printf("Page %d of %d (%d cards)\n", page.Page.Page, page.Pages(), page.Total)
		return nil
	},
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered users with pagination",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient()
		if err != nil {
			return err
		}

		page, err := client.AdminUsers(cmd.Context(), adminListFlags.page, adminListFlags.limit)
		if err != nil {
			return err
		}

		for _, u := range page.Users {
			fmt.Printf("%s  %-24s %s\n", u.ID, u.Name, u.Email)
		}
		fmt.Printf("Page %d of %d (%d users)\n", page.Page.Page, page.Pages(), page.Total)
		return nil
	},
}

var adminCreateCount int

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Mint new unclaimed cards",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient()
		if err != nil {
			return err
		}

		cards, err := client.AdminCreateCards(cmd.Context(), adminCreateCount)
		if err != nil {
			return err
		}

		for _, c := range cards {
			fmt.Println(c.UUID)
		}
		return nil
	},
}

var adminDeleteCmd = &cobra.Command{
	Use:   "delete <uuid>",
	Short: "Delete a card permanently",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseCardID(args[0])
		if err != nil {
			return err
		}

		client, err := adminClient()
		if err != nil {
			return err
		}

		if err := client.AdminDeleteCard(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", id)
		return nil
	},
}

func adminClient() (*api.Client, error) {
	client, _, err := newClient()
	if err != nil {
		return nil, err
	}
	if !client.Authenticated() {
		return nil, fmt.Errorf("not logged in\n\nRun 'tapfolio login' first")
	}
	return client, nil
}

func init() {
	for _, c := range []*cobra.Command{adminCardsCmd, adminUsersCmd} {
		c.Flags().IntVar(&adminListFlags.page, "page", 1, "Page number")
		c.Flags().IntVar(&adminListFlags.limit, "limit", 20, "Results per page")
	}
	adminCardsCmd.Flags().StringVar(&adminListFlags.claimed, "claimed", "", "Filter by claim state (true/false)")
	adminCreateCmd.Flags().IntVarP(&adminCreateCount, "count", "n", 1, "How many cards to create")

	adminCmd.AddCommand(adminStatsCmd)
	adminCmd.AddCommand(adminCardsCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminCreateCmd)
	adminCmd.AddCommand(adminDeleteCmd)
}
