// Package cardview renders a business card as markdown for terminal display.
// Both the standalone view command and the wizard's review step go through
// here so the two always show the same thing.
package cardview

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"

	"github.com/tapfolio/tapfolio/internal/card"
)

// Markdown builds a markdown document describing the card.
func Markdown(c *card.Card) string {
	var b strings.Builder

	name := "Unclaimed card"
	if c.ContactInfo != nil && c.ContactInfo.Name != "" {
		name = c.ContactInfo.Name
	}
	fmt.Fprintf(&b, "# %s\n\n", name)

	if ci := c.ContactInfo; ci != nil {
		if ci.Title != "" && ci.Company != "" {
			fmt.Fprintf(&b, "**%s** at **%s**\n\n", ci.Title, ci.Company)
		} else if ci.Title != "" {
			fmt.Fprintf(&b, "**%s**\n\n", ci.Title)
		} else if ci.Company != "" {
			fmt.Fprintf(&b, "**%s**\n\n", ci.Company)
		}

		writeField(&b, "Email", ci.Email)
		writeField(&b, "Phone", ci.Phone)
		writeField(&b, "Website", ci.Website)
		writeField(&b, "Address", ci.Address)
		b.WriteString("\n")
	}

	if c.Bio != "" {
		fmt.Fprintf(&b, "%s\n\n", c.Bio)
	}

	if len(c.SocialLinks) > 0 {
		b.WriteString("## Social\n\n")
		for _, l := range c.SocialLinks {
			fmt.Fprintf(&b, "- %s: %s\n", card.PlatformLabel(l.Platform), l.URL)
		}
		b.WriteString("\n")
	}

	if len(c.OtherLinks) > 0 {
		b.WriteString("## Links\n\n")
		for _, l := range c.OtherLinks {
			fmt.Fprintf(&b, "- [%s](%s)\n", l.Title, l.URL)
		}
		b.WriteString("\n")
	}

	writeField(&b, "Profile picture", c.ProfilePicture)
	writeField(&b, "Banner", c.BannerPicture)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, value)
}

// Render renders markdown content with syntax highlighting using glamour.
// Falls back to plain text if rendering fails.
func Render(content string, width int) string {
	// Cap width to 120 for readability
	if width > 120 {
		width = 120
	}
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimSuffix(rendered, "\n")
}

// RenderCard is the one-call path used by the view command.
func RenderCard(c *card.Card, width int) string {
	return Render(Markdown(c), width)
}
