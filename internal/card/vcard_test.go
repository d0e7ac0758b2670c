package card

import (
	"strings"
	"testing"
)

func TestVCardFullCard(t *testing.T) {
	c := &Card{
		ContactInfo: &ContactInfo{
			Name:    "Ada Lovelace",
			Title:   "Engineer",
			Company: "Analytical Engines Ltd",
			Email:   "ada@example.com",
			Phone:   "+4412345678",
			Website: "https://ada.example.com",
			Address: "12 St James's Square, London",
		},
		Bio: "First programmer.",
		SocialLinks: []SocialLink{
			{Platform: "github", URL: "https://github.com/ada"},
		},
		OtherLinks: []OtherLink{
			{Title: "My Notes", URL: "https://example.com/notes"},
		},
	}

	v := c.VCard()

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:Ada Lovelace",
		"N:Lovelace;Ada;;;",
		"TITLE:Engineer",
		"ORG:Analytical Engines Ltd",
		"EMAIL;TYPE=INTERNET:ada@example.com",
		"TEL;TYPE=CELL:+4412345678",
		"URL:https://ada.example.com",
		"URL;TYPE=GITHUB:https://github.com/ada",
		"URL;TYPE=MY-NOTES:https://example.com/notes",
		"NOTE:First programmer.",
		"END:VCARD",
	}
	for _, line := range lines {
		if !strings.Contains(v, line+"\r\n") {
			t.Errorf("vCard missing CRLF-terminated line %q\n%s", line, v)
		}
	}

	// Address commas must be escaped
	if !strings.Contains(v, "ADR;TYPE=WORK:;;12 St James's Square\\, London;;;;") {
		t.Errorf("vCard address not escaped:\n%s", v)
	}
}

func TestVCardOmitsEmptyFields(t *testing.T) {
	c := &Card{ContactInfo: &ContactInfo{Name: "Ada"}}
	v := c.VCard()

	for _, absent := range []string{"TITLE:", "ORG:", "EMAIL", "TEL", "ADR", "NOTE:"} {
		if strings.Contains(v, absent) {
			t.Errorf("vCard should omit %s for an empty field:\n%s", absent, v)
		}
	}
	if !strings.HasPrefix(v, "BEGIN:VCARD\r\n") || !strings.HasSuffix(v, "END:VCARD\r\n") {
		t.Errorf("vCard envelope malformed:\n%s", v)
	}
}

func TestVCardEscapesNewlinesInBio(t *testing.T) {
	c := &Card{Bio: "line one\nline two"}
	v := c.VCard()
	if !strings.Contains(v, "NOTE:line one\\nline two") {
		t.Errorf("bio newline not escaped:\n%s", v)
	}
}

func TestVCardFilename(t *testing.T) {
	tests := []struct {
		name string
		card *Card
		want string
	}{
		{"named contact", &Card{ContactInfo: &ContactInfo{Name: "Ada Lovelace"}}, "ada-lovelace.vcf"},
		{"no contact info", &Card{}, "contact.vcf"},
		{"empty name", &Card{ContactInfo: &ContactInfo{}}, "contact.vcf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.VCardFilename(); got != tt.want {
				t.Errorf("VCardFilename() = %q, want %q", got, tt.want)
			}
		})
	}
}
