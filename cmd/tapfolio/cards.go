package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards",
	Short: "List the cards you own",
	RunE:  runCards,
}

func runCards(cmd *cobra.Command, args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}
	if !client.Authenticated() {
		return fmt.Errorf("not logged in\n\nRun 'tapfolio login' first")
	}

	cards, err := client.ListCards(cmd.Context())
	if err != nil {
		return err
	}

	if len(cards) == 0 {
		fmt.Println("You don't own any cards yet.")
		return nil
	}

	for _, c := range cards {
		name := "(no name)"
		if c.ContactInfo != nil && c.ContactInfo.Name != "" {
			name = c.ContactInfo.Name
		}
		fmt.Printf("%s  %s\n", c.UUID, name)
	}
	return nil
}
