package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftNormalizesMissingFields(t *testing.T) {
	d, dropped := NewDraft(&Card{UUID: "abc"})

	assert.Equal(t, 0, dropped)
	assert.Equal(t, "", d.ContactInfo.Name)
	assert.NotNil(t, d.SocialLinks)
	assert.Len(t, d.SocialLinks, 0)
	assert.NotNil(t, d.OtherLinks)
	assert.Len(t, d.OtherLinks, 0)
}

func TestNewDraftDropsMalformedLinkEntries(t *testing.T) {
	c := &Card{
		SocialLinks: []SocialLink{
			{Platform: "github", URL: "https://github.com/x"},
			{}, // both sub-fields empty: not a real entry
		},
		OtherLinks: []OtherLink{
			{},
			{Title: "Blog", URL: "https://blog.example.com"},
		},
	}

	d, dropped := NewDraft(c)

	assert.Equal(t, 2, dropped)
	require.Len(t, d.SocialLinks, 1)
	assert.Equal(t, "github", d.SocialLinks[0].Platform)
	require.Len(t, d.OtherLinks, 1)
	assert.Equal(t, "Blog", d.OtherLinks[0].Title)
}

func TestNewDraftKeepsIncompleteButEditableEntries(t *testing.T) {
	// Half-filled entries are the user's work in progress; the schema flags
	// them, the boundary keeps them.
	c := &Card{SocialLinks: []SocialLink{{Platform: "github"}}}
	d, dropped := NewDraft(c)
	assert.Equal(t, 0, dropped)
	assert.Len(t, d.SocialLinks, 1)
}

func TestUpdatePayloadOmitsEmptyFields(t *testing.T) {
	d := &Draft{
		ContactInfo: ContactInfo{Name: "Ada", Email: ""},
		Bio:         "",
	}

	payload := d.UpdatePayload()

	_, hasBio := payload["bio"]
	assert.False(t, hasBio, "empty bio must be omitted")
	_, hasProfile := payload["profilePicture"]
	assert.False(t, hasProfile)
	_, hasSocial := payload["socialLinks"]
	assert.False(t, hasSocial)

	contact, ok := payload["contactInfo"].(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "Ada", contact["name"])
	_, hasEmail := contact["email"]
	assert.False(t, hasEmail, "empty contact sub-fields must be omitted")
}

func TestUpdatePayloadIncludesPresentFields(t *testing.T) {
	d := &Draft{
		ContactInfo:    ContactInfo{Name: "Ada"},
		Bio:            "hello",
		ProfilePicture: "https://cdn.example.com/p.jpg",
		SocialLinks:    []SocialLink{{Platform: "github", URL: "https://github.com/ada"}},
	}

	payload := d.UpdatePayload()

	assert.Equal(t, "hello", payload["bio"])
	assert.Equal(t, "https://cdn.example.com/p.jpg", payload["profilePicture"])
	assert.Len(t, payload["socialLinks"], 1)
}

func TestUpdatePayloadOmitsEmptyContactInfo(t *testing.T) {
	d := &Draft{Bio: "x"}
	payload := d.UpdatePayload()
	_, has := payload["contactInfo"]
	assert.False(t, has, "all-empty contactInfo must be omitted")
}

func TestMarshalPayloadRoundTrips(t *testing.T) {
	d := &Draft{
		ContactInfo: ContactInfo{Name: "Ada"},
		OtherLinks:  []OtherLink{{Title: "Blog", URL: "https://b.example.com"}},
	}

	raw, err := d.MarshalPayload()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "otherLinks")
	assert.NotContains(t, decoded, "bio")
}
