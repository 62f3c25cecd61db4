package share

import (
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// NewEventID generates the client-side identifier assigned to an event before
// it is sent to the store.
func NewEventID() string {
	return uuid.NewString()
}

// CanonicalURL builds the shareable RSVP link for an event: the slugged title
// followed by the first id segment, under baseURL.
//
// CanonicalURL("https://liveline.app", "Concert du vendredi", "8f14e45f-...") =
// "https://liveline.app/e/concert-du-vendredi-8f14e45f"
func CanonicalURL(baseURL, title, eventID string) string {
	short := eventID
	if i := strings.IndexByte(eventID, '-'); i > 0 {
		short = eventID[:i]
	}
	s := slug.Make(title)
	if s == "" {
		s = "live"
	}
	return strings.TrimRight(baseURL, "/") + "/e/" + s + "-" + short
}
