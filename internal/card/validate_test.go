package card

import (
	"strings"
	"testing"
)

// validDraft returns a draft that passes every schema rule.
func validDraft() *Draft {
	return &Draft{
		ContactInfo: ContactInfo{
			Name:    "Ada Lovelace",
			Title:   "Engineer",
			Company: "Analytical Engines Ltd",
			Email:   "ada@example.com",
			Phone:   "+4412345678",
			Website: "https://example.com",
			Address: "12 St James's Square, London",
		},
		Bio: "First programmer.",
		SocialLinks: []SocialLink{
			{Platform: "github", URL: "https://github.com/ada"},
		},
		OtherLinks: []OtherLink{
			{Title: "Notes", URL: "https://example.com/notes"},
		},
	}
}

func TestValidateAcceptsValidDraft(t *testing.T) {
	errs := Validate(validDraft())
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateFlagsExactlyTheViolatedField(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(d *Draft)
		wantPath string
	}{
		{
			name:     "empty name",
			mutate:   func(d *Draft) { d.ContactInfo.Name = "" },
			wantPath: "contactInfo.name",
		},
		{
			name:     "whitespace-only name",
			mutate:   func(d *Draft) { d.ContactInfo.Name = "   " },
			wantPath: "contactInfo.name",
		},
		{
			name:     "name over 100 chars",
			mutate:   func(d *Draft) { d.ContactInfo.Name = strings.Repeat("a", 101) },
			wantPath: "contactInfo.name",
		},
		{
			name:     "title over 100 chars",
			mutate:   func(d *Draft) { d.ContactInfo.Title = strings.Repeat("t", 101) },
			wantPath: "contactInfo.title",
		},
		{
			name:     "company over 100 chars",
			mutate:   func(d *Draft) { d.ContactInfo.Company = strings.Repeat("c", 101) },
			wantPath: "contactInfo.company",
		},
		{
			name:     "bad email",
			mutate:   func(d *Draft) { d.ContactInfo.Email = "not-an-email" },
			wantPath: "contactInfo.email",
		},
		{
			name:     "phone with letters",
			mutate:   func(d *Draft) { d.ContactInfo.Phone = "+44abc" },
			wantPath: "contactInfo.phone",
		},
		{
			name:     "phone too long",
			mutate:   func(d *Draft) { d.ContactInfo.Phone = "+12345678901234567" },
			wantPath: "contactInfo.phone",
		},
		{
			name:     "website without scheme",
			mutate:   func(d *Draft) { d.ContactInfo.Website = "example.com" },
			wantPath: "contactInfo.website",
		},
		{
			name:     "address over 200 chars",
			mutate:   func(d *Draft) { d.ContactInfo.Address = strings.Repeat("a", 201) },
			wantPath: "contactInfo.address",
		},
		{
			name:     "bio over 1000 chars",
			mutate:   func(d *Draft) { d.Bio = strings.Repeat("b", 1001) },
			wantPath: "bio",
		},
		{
			name: "social link missing platform",
			mutate: func(d *Draft) {
				d.SocialLinks[0].Platform = ""
			},
			wantPath: "socialLinks.0.platform",
		},
		{
			name: "social link bad url",
			mutate: func(d *Draft) {
				d.SocialLinks[0].URL = "ftp://example.com"
			},
			wantPath: "socialLinks.0.url",
		},
		{
			name: "other link missing title",
			mutate: func(d *Draft) {
				d.OtherLinks[0].Title = ""
			},
			wantPath: "otherLinks.0.title",
		},
		{
			name: "other link bad url",
			mutate: func(d *Draft) {
				d.OtherLinks[0].URL = "nope"
			},
			wantPath: "otherLinks.0.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(d)
			errs := Validate(d)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			if _, ok := errs[tt.wantPath]; !ok {
				t.Errorf("expected error at %s, got %v", tt.wantPath, errs)
			}
		})
	}
}

func TestValidateCountsCharactersNotBytes(t *testing.T) {
	// 500 three-byte runes: 1500 bytes but well under every character cap.
	multibyte := strings.Repeat("日", 500)

	d := validDraft()
	d.Bio = multibyte
	d.ContactInfo.Name = strings.Repeat("é", 100)
	d.ContactInfo.Address = strings.Repeat("ü", 200)
	if errs := Validate(d); len(errs) != 0 {
		t.Errorf("multibyte text within the character caps should be valid, got %v", errs)
	}

	d = validDraft()
	d.Bio = strings.Repeat("日", 1001)
	if _, ok := Validate(d)["bio"]; !ok {
		t.Error("1001 characters must still exceed the bio cap")
	}
}

func TestValidateSocialLinkMax(t *testing.T) {
	d := validDraft()
	d.SocialLinks = nil
	for i := 0; i < 6; i++ {
		d.SocialLinks = append(d.SocialLinks, SocialLink{
			Platform: "github", URL: "https://github.com/x",
		})
	}

	errs := Validate(d)
	if errs["socialLinks"] != "You can add a maximum of 5 social links." {
		t.Errorf("expected max-count error on socialLinks, got %v", errs)
	}
}

func TestValidateUnboundedOtherLinks(t *testing.T) {
	d := validDraft()
	d.OtherLinks = nil
	for i := 0; i < 11; i++ {
		d.OtherLinks = append(d.OtherLinks, OtherLink{
			Title: "Link", URL: "https://example.com",
		})
	}

	if errs := Validate(d); len(errs) != 0 {
		t.Errorf("11 other links should be valid, got %v", errs)
	}
}

func TestValidateEmptyOptionalFields(t *testing.T) {
	d := &Draft{ContactInfo: ContactInfo{Name: "Ada"}}
	if errs := Validate(d); len(errs) != 0 {
		t.Errorf("draft with only a name should be valid, got %v", errs)
	}
}

func TestErrorsFirst(t *testing.T) {
	errs := Errors{
		"contactInfo.name": "Your name is required to get started.",
		"socialLinks.2.url": "URL is required.",
	}

	if got := errs.First("contactInfo.name", "contactInfo.email"); got != "Your name is required to get started." {
		t.Errorf("First returned %q", got)
	}
	// Prefix match picks up index-scoped errors
	if got := errs.First("socialLinks"); got != "URL is required." {
		t.Errorf("First prefix match returned %q", got)
	}
	if got := errs.First("bio"); got != "" {
		t.Errorf("First should be empty for clean fields, got %q", got)
	}
}

func TestErrorsFirstPrefixMatchIsDeterministic(t *testing.T) {
	errs := Errors{
		"otherLinks.0.title": "Title is required.",
		"otherLinks.1.url":   "URL is required.",
		"otherLinks.2.url":   "Link must be a valid URL.",
	}

	want := errs.First("otherLinks")
	if want != "Title is required." {
		t.Fatalf("expected the lowest-keyed message, got %q", want)
	}
	for i := 0; i < 50; i++ {
		if got := errs.First("otherLinks"); got != want {
			t.Fatalf("run %d surfaced %q, want %q", i, got, want)
		}
	}
}
