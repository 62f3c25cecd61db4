package entities

import "liveline/internal/domain"

// EventDraft is the mutable record threaded through the creation wizard.
// The schedule stays split in date/time parts until publication; they are
// composed into a timestamp by the persistence mapping.
type EventDraft struct {
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	DatePart           string            `json:"datePart"` // AAAA-MM-JJ
	TimePart           string            `json:"timePart"` // HH:MM
	DurationMinutes    string            `json:"durationMinutes"`
	CoverImageURL      string            `json:"coverImageUrl"`
	Platforms          []PlatformBinding `json:"platforms"`
	AttendanceLimit    AttendanceLimit   `json:"attendanceLimit"`
	ReminderPolicy     ReminderPolicy    `json:"reminderPolicy"`
	CalendarPolicy     string            `json:"calendarPolicy"`
	RequireEmailToRSVP bool              `json:"requireEmailToRSVP"`
	Visibility         string            `json:"visibility"`
	Monetization       Monetization      `json:"monetization"`
}

// NewEventDraft returns a draft with the wizard's initial defaults. Fields
// absent from a stored record hydrate back to these values.
func NewEventDraft() EventDraft {
	return EventDraft{
		ReminderPolicy: ReminderPolicy{At24h: true, At1h: true, AtGoLive: true},
		CalendarPolicy: domain.CalendarAsk,
		Visibility:     domain.VisibilityPublic,
	}
}

// PlatformByID returns the binding for the given platform, if present.
func (d EventDraft) PlatformByID(platformID string) (PlatformBinding, bool) {
	for _, b := range d.Platforms {
		if b.PlatformID == platformID {
			return b, true
		}
	}
	return PlatformBinding{}, false
}
