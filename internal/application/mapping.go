package application

import (
	"fmt"
	"time"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/pkg/webdate"
)

// applyDraft writes the draft's fields onto an event record, composing the
// schedule timestamp from the draft's date/time parts in loc. Identity fields
// (ID, OwnerID, ShareURL, timestamps) are left untouched.
func applyDraft(e *entities.Event, d entities.EventDraft, loc *time.Location) error {
	scheduledAt, err := webdate.Compose(d.DatePart, d.TimePart, loc)
	if err != nil {
		return fmt.Errorf("compose scheduled at: %w", err)
	}
	e.Title = d.Title
	e.Description = d.Description
	e.ScheduledAt = scheduledAt
	e.DurationMinutes = d.DurationMinutes
	e.CoverImageURL = d.CoverImageURL
	e.Platforms = append([]entities.PlatformBinding(nil), d.Platforms...)
	e.AttendanceLimit = d.AttendanceLimit
	e.ReminderPolicy = d.ReminderPolicy
	e.CalendarPolicy = d.CalendarPolicy
	e.RequireEmailToRSVP = d.RequireEmailToRSVP
	e.Visibility = d.Visibility
	e.Monetization = d.Monetization
	return nil
}

// eventToDraft is the inverse mapping used by edit mode. Fields absent from
// the stored record fall back to the draft defaults; a record carrying values
// outside the known enums is rejected rather than propagated.
func eventToDraft(e *entities.Event, loc *time.Location) (entities.EventDraft, error) {
	d := entities.NewEventDraft()

	if e.Visibility != "" {
		if !domain.KnownVisibility(e.Visibility) {
			return d, fmt.Errorf("visibility %q: %w", e.Visibility, domain.ErrSchemaMismatch)
		}
		d.Visibility = e.Visibility
	}
	if e.CalendarPolicy != "" {
		if !domain.KnownCalendarPolicy(e.CalendarPolicy) {
			return d, fmt.Errorf("calendar policy %q: %w", e.CalendarPolicy, domain.ErrSchemaMismatch)
		}
		d.CalendarPolicy = e.CalendarPolicy
	}
	for _, b := range e.Platforms {
		if !domain.KnownPlatform(b.PlatformID) {
			return d, fmt.Errorf("platform %q: %w", b.PlatformID, domain.ErrSchemaMismatch)
		}
	}

	d.Title = e.Title
	d.Description = e.Description
	d.DatePart, d.TimePart = webdate.Split(e.ScheduledAt, loc)
	d.DurationMinutes = e.DurationMinutes
	d.CoverImageURL = e.CoverImageURL
	d.Platforms = append([]entities.PlatformBinding(nil), e.Platforms...)
	d.AttendanceLimit = e.AttendanceLimit
	d.ReminderPolicy = e.ReminderPolicy
	d.RequireEmailToRSVP = e.RequireEmailToRSVP
	d.Monetization = e.Monetization
	return d, nil
}
