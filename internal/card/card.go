// Package card defines the business card data model, the normalization
// boundary for persisted data, the validation schema, and the serializers
// (update payload, vCard) shared by the CLI and the editing wizard.
package card

import "encoding/json"

// ContactInfo holds the contact fields shown on a card. All fields are
// optional strings; constraints live in Validate.
type ContactInfo struct {
	Name    string `json:"name,omitempty"`
	Title   string `json:"title,omitempty"`
	Company string `json:"company,omitempty"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`
	Address string `json:"address,omitempty"`
}

// SocialLink is one entry of the ordered social link list.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// OtherLink is one entry of the ordered "other links" list.
type OtherLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Owner identifies the user who claimed a card.
type Owner struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Card is the persisted card record as returned by the backend.
type Card struct {
	UUID           string       `json:"uuid"`
	ContactInfo    *ContactInfo `json:"contactInfo,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	SocialLinks    []SocialLink `json:"socialLinks,omitempty"`
	OtherLinks     []OtherLink  `json:"otherLinks,omitempty"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
	BannerPicture  string       `json:"bannerPicture,omitempty"`
	Owner          *Owner       `json:"owner,omitempty"`
}

// Draft is the in-progress editable representation of a card. It is created
// once from a loaded Card, owned exclusively by the wizard for the duration
// of editing, and serialized with UpdatePayload on submit.
//
// Image slots hold either a server URL or the empty string; pending local
// images live inside the upload pipeline until the server confirms a URL, so
// the draft never points at a local-only reference.
type Draft struct {
	ContactInfo    ContactInfo
	Bio            string
	SocialLinks    []SocialLink
	OtherLinks     []OtherLink
	ProfilePicture string
	BannerPicture  string
}

// NewDraft builds a Draft from a loaded card record. This is the single
// parse-and-validate boundary for persisted data: missing optional fields
// default to empty values and malformed link entries are dropped here, so
// code downstream can assume well-shaped entries. The second return value
// reports how many entries were dropped.
func NewDraft(c *Card) (*Draft, int) {
	d := &Draft{}
	if c == nil {
		d.SocialLinks = []SocialLink{}
		d.OtherLinks = []OtherLink{}
		return d, 0
	}

	if c.ContactInfo != nil {
		d.ContactInfo = *c.ContactInfo
	}
	d.Bio = c.Bio
	d.ProfilePicture = c.ProfilePicture
	d.BannerPicture = c.BannerPicture

	dropped := 0
	d.SocialLinks = make([]SocialLink, 0, len(c.SocialLinks))
	for _, l := range c.SocialLinks {
		if l.Platform == "" && l.URL == "" {
			dropped++
			continue
		}
		d.SocialLinks = append(d.SocialLinks, l)
	}
	d.OtherLinks = make([]OtherLink, 0, len(c.OtherLinks))
	for _, l := range c.OtherLinks {
		if l.Title == "" && l.URL == "" {
			dropped++
			continue
		}
		d.OtherLinks = append(d.OtherLinks, l)
	}

	return d, dropped
}

// UpdatePayload serializes the draft into a backend partial-update payload.
// Empty top-level fields are omitted entirely, and contactInfo carries only
// its non-empty sub-fields (omitted altogether when all are empty).
func (d *Draft) UpdatePayload() map[string]any {
	payload := map[string]any{}

	if d.Bio != "" {
		payload["bio"] = d.Bio
	}
	if d.ProfilePicture != "" {
		payload["profilePicture"] = d.ProfilePicture
	}
	if d.BannerPicture != "" {
		payload["bannerPicture"] = d.BannerPicture
	}
	if len(d.SocialLinks) > 0 {
		payload["socialLinks"] = d.SocialLinks
	}
	if len(d.OtherLinks) > 0 {
		payload["otherLinks"] = d.OtherLinks
	}

	contact := map[string]string{}
	for key, val := range map[string]string{
		"name":    d.ContactInfo.Name,
		"title":   d.ContactInfo.Title,
		"company": d.ContactInfo.Company,
		"email":   d.ContactInfo.Email,
		"phone":   d.ContactInfo.Phone,
		"website": d.ContactInfo.Website,
		"address": d.ContactInfo.Address,
	} {
		if val != "" {
			contact[key] = val
		}
	}
	if len(contact) > 0 {
		payload["contactInfo"] = contact
	}

	return payload
}

// MarshalPayload returns the JSON encoding of UpdatePayload.
func (d *Draft) MarshalPayload() ([]byte, error) {
	return json.Marshal(d.UpdatePayload())
}
