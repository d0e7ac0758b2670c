package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tapfolio/tapfolio/internal/api"
	"github.com/tapfolio/tapfolio/internal/card"
	"github.com/tapfolio/tapfolio/internal/logger"
	"github.com/tapfolio/tapfolio/internal/tui/wizard"
)

var claimCmd = &cobra.Command{
	Use:   "claim <uuid>",
	Short: "Claim a card and set it up",
	Long: `Claim an unclaimed card for your account and walk through the setup
wizard. Claiming is first-come-first-served: once a card is claimed it stays
with its owner.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

var editCmd = &cobra.Command{
	Use:   "edit <uuid>",
	Short: "Edit your card in the step-by-step wizard",
	Long: `Edit a card through the wizard: contact details, pictures, bio,
social links and other links, with a review before anything is saved.

If the card is still unclaimed it is claimed for you first.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseCardID(args[0])
	if err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}
	if !client.Authenticated() {
		return fmt.Errorf("not logged in\n\nRun 'tapfolio login' first")
	}

	loaded, fresh, err := loadAndClaim(cmd, client, id)
	if err != nil {
		return err
	}

	saved, err := wizard.Run(client, loaded, fresh)
	if err != nil {
		if errors.Is(err, wizard.ErrCancelled) {
			fmt.Println("No changes saved.")
			return nil
		}
		return err
	}

	if saved != nil {
		fmt.Printf("Card saved. View it anytime with 'tapfolio view %s'.\n", saved.UUID)
	}
	return nil
}

// loadAndClaim fetches the card and claims it when still unclaimed. The bool
// result reports whether the claim happened in this call.
func loadAndClaim(cmd *cobra.Command, client *api.Client, uuid string) (*card.Card, bool, error) {
	status, err := client.GetCard(cmd.Context(), uuid)
	if err != nil {
		return nil, false, err
	}

	if status.Claimed {
		if status.Card == nil {
			status.Card = &card.Card{UUID: uuid}
		}
		return status.Card, false, nil
	}

	logger.Info("Card %s unclaimed, claiming", uuid)
	if err := client.ClaimCard(cmd.Context(), uuid); err != nil {
		if api.IsConflict(err) {
			return nil, false, fmt.Errorf("card was claimed by someone else just now")
		}
		return nil, false, err
	}

	status, err = client.GetCard(cmd.Context(), uuid)
	if err != nil {
		return nil, false, err
	}
	if status.Card == nil {
		status.Card = &card.Card{UUID: uuid}
	}
	return status.Card, true, nil
}
