package domain

// RSVP statuses.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Supported distribution platforms.
const (
	PlatformInstagram  = "instagram"
	PlatformTikTok     = "tiktok"
	PlatformYouTube    = "youtube"
	PlatformTwitch     = "twitch"
	PlatformFacebook   = "facebook"
	PlatformCustomRTMP = "custom-rtmp"
)

// Event visibilities.
const (
	VisibilityPublic    = "public"
	VisibilityFollowers = "followers"
	VisibilityPrivate   = "private"
)

// Calendar policies (automatic add, ask the fan, never).
const (
	CalendarAuto = "auto"
	CalendarAsk  = "ask"
	CalendarNone = "none"
)

// KnownPlatform reports whether id is one of the supported platforms.
func KnownPlatform(id string) bool {
	switch id {
	case PlatformInstagram, PlatformTikTok, PlatformYouTube,
		PlatformTwitch, PlatformFacebook, PlatformCustomRTMP:
		return true
	}
	return false
}

// KnownVisibility reports whether v is a supported visibility.
func KnownVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityFollowers || v == VisibilityPrivate
}

// KnownCalendarPolicy reports whether p is a supported calendar policy.
func KnownCalendarPolicy(p string) bool {
	return p == CalendarAuto || p == CalendarAsk || p == CalendarNone
}
