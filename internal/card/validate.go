package card

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Field limits for the validation schema.
const (
	MaxNameLen     = 100
	MaxTitleLen    = 100
	MaxCompanyLen  = 100
	MaxAddressLen  = 200
	MaxBioLen      = 1000
	MaxPlatformLen = 50
	MaxLinkTitle   = 100
	MaxSocialLinks = 5
)

// Optional leading +, then 1-16 digits, or empty.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{1,16}$`)

// Plausible address@domain.tld shape. Full RFC parsing is the backend's job.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Errors maps dot-separated field paths (e.g. "contactInfo.name",
// "socialLinks.2.url") to human-readable messages. An empty map means valid.
type Errors map[string]string

// First returns the message for the first path in paths that has an error.
// Index-scoped entries are matched by prefix, so "socialLinks" also picks up
// "socialLinks.0.url". Prefix matches are resolved in sorted key order so the
// surfaced message is stable across runs.
func (e Errors) First(paths ...string) string {
	for _, p := range paths {
		if msg, ok := e[p]; ok {
			return msg
		}
		var matched []string
		for key := range e {
			if strings.HasPrefix(key, p+".") {
				matched = append(matched, key)
			}
		}
		if len(matched) > 0 {
			sort.Strings(matched)
			return e[matched[0]]
		}
	}
	return ""
}

// Validate checks the whole draft against the field schema and returns a
// mapping of field paths to messages. Validation is pure and synchronous:
// every rule is evaluated independently per field and no network calls are
// made. The wizard scopes the result to the active step's gating fields.
func Validate(d *Draft) Errors {
	errs := Errors{}

	name := d.ContactInfo.Name
	if strings.TrimSpace(name) == "" {
		errs["contactInfo.name"] = "Your name is required to get started."
	} else if utf8.RuneCountInString(name) > MaxNameLen {
		errs["contactInfo.name"] = fmt.Sprintf("Name must be at most %d characters.", MaxNameLen)
	}

	if utf8.RuneCountInString(d.ContactInfo.Title) > MaxTitleLen {
		errs["contactInfo.title"] = fmt.Sprintf("Title must be at most %d characters.", MaxTitleLen)
	}
	if utf8.RuneCountInString(d.ContactInfo.Company) > MaxCompanyLen {
		errs["contactInfo.company"] = fmt.Sprintf("Company must be at most %d characters.", MaxCompanyLen)
	}
	if d.ContactInfo.Email != "" && !emailPattern.MatchString(d.ContactInfo.Email) {
		errs["contactInfo.email"] = "Please enter a valid email."
	}
	if d.ContactInfo.Phone != "" && !phonePattern.MatchString(d.ContactInfo.Phone) {
		errs["contactInfo.phone"] = "Please enter a valid phone number."
	}
	if d.ContactInfo.Website != "" && !validURL(d.ContactInfo.Website) {
		errs["contactInfo.website"] = "Please enter a valid URL."
	}
	if utf8.RuneCountInString(d.ContactInfo.Address) > MaxAddressLen {
		errs["contactInfo.address"] = fmt.Sprintf("Address must be at most %d characters.", MaxAddressLen)
	}

	if utf8.RuneCountInString(d.Bio) > MaxBioLen {
		errs["bio"] = fmt.Sprintf("Bio must be at most %d characters.", MaxBioLen)
	}

	if len(d.SocialLinks) > MaxSocialLinks {
		errs["socialLinks"] = fmt.Sprintf("You can add a maximum of %d social links.", MaxSocialLinks)
	}
	for i, l := range d.SocialLinks {
		if strings.TrimSpace(l.Platform) == "" {
			errs[fmt.Sprintf("socialLinks.%d.platform", i)] = "Platform is required."
		} else if utf8.RuneCountInString(l.Platform) > MaxPlatformLen {
			errs[fmt.Sprintf("socialLinks.%d.platform", i)] = fmt.Sprintf("Platform must be at most %d characters.", MaxPlatformLen)
		}
		if strings.TrimSpace(l.URL) == "" {
			errs[fmt.Sprintf("socialLinks.%d.url", i)] = "URL is required."
		} else if !validURL(l.URL) {
			errs[fmt.Sprintf("socialLinks.%d.url", i)] = "Link must be a valid URL."
		}
	}

	for i, l := range d.OtherLinks {
		if strings.TrimSpace(l.Title) == "" {
			errs[fmt.Sprintf("otherLinks.%d.title", i)] = "Title is required."
		} else if utf8.RuneCountInString(l.Title) > MaxLinkTitle {
			errs[fmt.Sprintf("otherLinks.%d.title", i)] = fmt.Sprintf("Title must be at most %d characters.", MaxLinkTitle)
		}
		if strings.TrimSpace(l.URL) == "" {
			errs[fmt.Sprintf("otherLinks.%d.url", i)] = "URL is required."
		} else if !validURL(l.URL) {
			errs[fmt.Sprintf("otherLinks.%d.url", i)] = "Link must be a valid URL."
		}
	}

	return errs
}

// validURL accepts absolute http/https URLs with a host.
func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
