package card

import (
	"strings"

	"github.com/gosimple/slug"
)

// VCard renders the card as a vCard 3.0 document. Generation is entirely
// client-side; every social and other link becomes a typed URL property and
// the bio becomes a NOTE. Fields are CRLF-terminated per the format.
func (c *Card) VCard() string {
	var b strings.Builder
	write := func(line string) {
		b.WriteString(line)
		b.WriteString("\r\n")
	}

	contact := ContactInfo{}
	if c.ContactInfo != nil {
		contact = *c.ContactInfo
	}

	write("BEGIN:VCARD")
	write("VERSION:3.0")
	if contact.Name != "" {
		write("FN:" + escapeVCard(contact.Name))
		write("N:" + structuredName(contact.Name))
	}
	if contact.Title != "" {
		write("TITLE:" + escapeVCard(contact.Title))
	}
	if contact.Company != "" {
		write("ORG:" + escapeVCard(contact.Company))
	}
	if contact.Email != "" {
		write("EMAIL;TYPE=INTERNET:" + escapeVCard(contact.Email))
	}
	if contact.Phone != "" {
		write("TEL;TYPE=CELL:" + escapeVCard(contact.Phone))
	}
	if contact.Address != "" {
		write("ADR;TYPE=WORK:;;" + escapeVCard(contact.Address) + ";;;;")
	}
	if contact.Website != "" {
		write("URL:" + escapeVCard(contact.Website))
	}
	for _, l := range c.SocialLinks {
		write("URL;TYPE=" + vcardType(PlatformLabel(l.Platform)) + ":" + escapeVCard(l.URL))
	}
	for _, l := range c.OtherLinks {
		write("URL;TYPE=" + vcardType(l.Title) + ":" + escapeVCard(l.URL))
	}
	if c.Bio != "" {
		write("NOTE:" + escapeVCard(c.Bio))
	}
	write("END:VCARD")

	return b.String()
}

// VCardFilename derives the download filename from the contact name,
// defaulting when the card has no name yet.
func (c *Card) VCardFilename() string {
	name := ""
	if c.ContactInfo != nil {
		name = c.ContactInfo.Name
	}
	s := slug.Make(name)
	if s == "" {
		s = "contact"
	}
	return s + ".vcf"
}

// structuredName splits a display name into the N property's
// family;given;;; form, treating the last word as the family name.
func structuredName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return escapeVCard(name) + ";;;;"
	}
	family := parts[len(parts)-1]
	given := strings.Join(parts[:len(parts)-1], " ")
	return escapeVCard(family) + ";" + escapeVCard(given) + ";;;"
}

// vcardType sanitizes a label into a TYPE parameter token.
func vcardType(label string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(label) {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ' || r == '/':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "OTHER"
	}
	return b.String()
}

// escapeVCard escapes the characters vCard 3.0 treats specially in values.
func escapeVCard(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\r\n", "\\n",
		"\n", "\\n",
	)
	return r.Replace(s)
}
