package card

import "strings"

// Platform is one entry of the social platform catalog.
type Platform struct {
	Value string
	Label string
}

// Platforms lists the supported social platforms in display order.
var Platforms = []Platform{
	{"linkedin", "LinkedIn"},
	{"github", "GitHub"},
	{"twitter", "Twitter/X"},
	{"instagram", "Instagram"},
	{"facebook", "Facebook"},
	{"youtube", "YouTube"},
	{"tiktok", "TikTok"},
	{"snapchat", "Snapchat"},
	{"pinterest", "Pinterest"},
	{"reddit", "Reddit"},
	{"discord", "Discord"},
	{"telegram", "Telegram"},
	{"whatsapp", "WhatsApp"},
	{"slack", "Slack"},
	{"medium", "Medium"},
	{"dev", "DEV Community"},
	{"stackoverflow", "Stack Overflow"},
	{"behance", "Behance"},
	{"dribbble", "Dribbble"},
	{"spotify", "Spotify"},
	{"soundcloud", "SoundCloud"},
	{"twitch", "Twitch"},
	{"steam", "Steam"},
	{"figma", "Figma"},
	{"gitlab", "GitLab"},
	{"codepen", "CodePen"},
	{"patreon", "Patreon"},
	{"tumblr", "Tumblr"},
	{"vimeo", "Vimeo"},
	{"bluesky", "Bluesky"},
	{"threads", "Threads"},
	{"mastodon", "Mastodon"},
	{"upwork", "Upwork"},
}

// PlatformLabel returns the display label for a platform value, falling back
// to the raw value for platforms outside the catalog.
func PlatformLabel(value string) string {
	for _, p := range Platforms {
		if p.Value == value {
			return p.Label
		}
	}
	return value
}

// FilterPlatforms returns catalog entries whose label contains the search
// term, case-insensitively. An empty term returns the full catalog.
func FilterPlatforms(term string) []Platform {
	if term == "" {
		return Platforms
	}
	term = strings.ToLower(term)
	var out []Platform
	for _, p := range Platforms {
		if strings.Contains(strings.ToLower(p.Label), term) {
			out = append(out, p)
		}
	}
	return out
}
