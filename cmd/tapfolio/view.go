package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/tapfolio/tapfolio/internal/tui/cardview"
)

var viewCmd = &cobra.Command{
	Use:   "view <uuid>",
	Short: "Show a card in the terminal",
	Long: `Show a card in the terminal.

Works without logging in: cards are public once claimed. Unclaimed cards show
a short claim hint instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func runView(cmd *cobra.Command, args []string) error {
	id, err := parseCardID(args[0])
	if err != nil {
		return err
	}

	client, _, err := newClient()
	if err != nil {
		return err
	}

	status, err := client.GetCard(cmd.Context(), id)
	if err != nil {
		return err
	}

	if !status.Claimed {
		fmt.Printf("Card %s has not been claimed yet.\n", status.UUID)
		fmt.Println("Run 'tapfolio claim' with this uuid to make it yours.")
		return nil
	}

	width := 80
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		width = w
	}

	fmt.Println(cardview.RenderCard(status.Card, width))
	return nil
}
