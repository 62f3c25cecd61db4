package webdate

import (
	"fmt"
	"strings"
	"time"
)

// Les champs date/heure arrivent du client au format des inputs HTML
// (<input type="date"> et <input type="time">).
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Compose parses a date part (AAAA-MM-JJ) and a time part (HH:MM) and builds
// the scheduled timestamp in loc. Returns an error if either part is empty or
// malformed.
func Compose(datePart, timePart string, loc *time.Location) (time.Time, error) {
	datePart = strings.TrimSpace(datePart)
	timePart = strings.TrimSpace(timePart)
	if datePart == "" || timePart == "" {
		return time.Time{}, fmt.Errorf("date et heure requises (AAAA-MM-JJ et HH:MM)")
	}
	tDate, err := time.Parse(DateLayout, datePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("date invalide (attendu AAAA-MM-JJ, ex: 2025-08-15)")
	}
	tTime, err := time.Parse(TimeLayout, timePart)
	if err != nil {
		return time.Time{}, fmt.Errorf("heure invalide (attendu HH:MM, ex: 14:00)")
	}
	return time.Date(tDate.Year(), tDate.Month(), tDate.Day(),
		tTime.Hour(), tTime.Minute(), 0, 0, loc), nil
}

// Split is the inverse of Compose: it renders a stored timestamp back into
// the draft's date/time parts, in loc. A zero time yields empty parts.
func Split(t time.Time, loc *time.Location) (datePart, timePart string) {
	if t.IsZero() {
		return "", ""
	}
	local := t.In(loc)
	return local.Format(DateLayout), local.Format(TimeLayout)
}

// FormatEventDateTime renders a scheduled timestamp for display.
func FormatEventDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format("02/01/2006 à 15:04")
}
