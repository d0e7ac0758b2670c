package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var vcardFlags struct {
	output string
	stdout bool
}

var vcardCmd = &cobra.Command{
	Use:   "vcard <uuid>",
	Short: "Export a card as a .vcf contact file",
	Long: `Export a claimed card as a vCard 3.0 contact file.

The file is named after the card owner (e.g. jane-doe.vcf) unless --output is
given. Use --stdout to print the vCard instead of writing a file.`,
	Args: cobra.ExactArgs(1),
	RunE: runVCard,
}

func init() {
	vcardCmd.Flags().StringVarP(&vcardFlags.output, "output", "o", "", "Write to this path instead of the default name")
	vcardCmd.Flags().BoolVar(&vcardFlags.stdout, "stdout", false, "Print the vCard to stdout")
}

func runVCard(cmd *cobra.Command, args []string) error {
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
	if !status.Claimed || status.Card == nil {
		return fmt.Errorf("card %s has not been claimed yet", status.UUID)
	}

	content := status.Card.VCard()

	if vcardFlags.stdout {
		fmt.Print(content)
		return nil
	}

	path := vcardFlags.output
	if path == "" {
		path = status.Card.VCardFilename()
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing vcard: %w", err)
	}

	fmt.Printf("Saved %s\n", path)
	return nil
}
