package wizard

import (
	"strconv"
	"strings"
	"time"

	"liveline/internal/domain/entities"
	"liveline/pkg/webdate"
)

// Field is one line of the review screen. Value is a literal display string;
// ValueKey is set instead when the value is an enum to localize ("review.*").
type Field struct {
	LabelKey string `json:"labelKey"`
	Value    string `json:"value,omitempty"`
	ValueKey string `json:"valueKey,omitempty"`
}

// Section groups review fields the same way the editable steps do. Step is
// the jump-back target of the section's "edit" affordance.
type Section struct {
	Key    string  `json:"key"`
	Step   Step    `json:"step"`
	Fields []Field `json:"fields"`
}

// Project renders the accumulated draft into the four review sections. Pure:
// display strings are recomputed from the raw fields on every call, nothing is
// validated here (the prior steps already passed their validators).
func Project(d entities.EventDraft, loc *time.Location) []Section {
	return []Section{
		detailsSection(d, loc),
		platformsSection(d),
		rsvpSection(d),
		monetizationSection(d),
	}
}

func detailsSection(d entities.EventDraft, loc *time.Location) Section {
	fields := []Field{{LabelKey: "review.title", Value: d.Title}}
	if d.Description != "" {
		fields = append(fields, Field{LabelKey: "review.description", Value: d.Description})
	}
	scheduled := d.DatePart + " " + d.TimePart
	if t, err := webdate.Compose(d.DatePart, d.TimePart, loc); err == nil {
		scheduled = webdate.FormatEventDateTime(t, loc)
	}
	fields = append(fields, Field{LabelKey: "review.scheduled_at", Value: scheduled})
	if d.DurationMinutes != "" {
		fields = append(fields, Field{LabelKey: "review.duration", Value: d.DurationMinutes})
	}
	return Section{Key: "details", Step: StepDetails, Fields: fields}
}

func platformsSection(d entities.EventDraft) Section {
	fields := make([]Field, 0, len(d.Platforms))
	for _, b := range d.Platforms {
		value := b.PlatformID
		if b.ProfileURL != "" {
			value += " · " + b.ProfileURL
		}
		fields = append(fields, Field{LabelKey: "review.platform", Value: value})
	}
	return Section{Key: "platforms", Step: StepPlatforms, Fields: fields}
}

func rsvpSection(d entities.EventDraft) Section {
	limit := Field{LabelKey: "review.attendance_limit", ValueKey: "review.unlimited"}
	if d.AttendanceLimit.Enabled && d.AttendanceLimit.Max > 0 {
		limit = Field{LabelKey: "review.attendance_limit", Value: strconv.Itoa(d.AttendanceLimit.Max)}
	}
	reminders := make([]string, 0, 3)
	if d.ReminderPolicy.At24h {
		reminders = append(reminders, "H-24")
	}
	if d.ReminderPolicy.At1h {
		reminders = append(reminders, "H-1")
	}
	if d.ReminderPolicy.AtGoLive {
		reminders = append(reminders, "live")
	}
	remindersField := Field{LabelKey: "review.reminders", ValueKey: "review.none"}
	if len(reminders) > 0 {
		remindersField = Field{LabelKey: "review.reminders", Value: strings.Join(reminders, ", ")}
	}
	return Section{Key: "rsvp", Step: StepRSVP, Fields: []Field{
		limit,
		remindersField,
		{LabelKey: "review.calendar", ValueKey: "review.calendar_" + d.CalendarPolicy},
		{LabelKey: "review.require_email", ValueKey: yesNo(d.RequireEmailToRSVP)},
		{LabelKey: "review.visibility", ValueKey: "review.visibility_" + d.Visibility},
	}}
}

func monetizationSection(d entities.EventDraft) Section {
	m := d.Monetization
	fields := []Field{{LabelKey: "review.paid", ValueKey: yesNo(m.IsPaid)}}
	if m.IsPaid {
		fields = append(fields, Field{LabelKey: "review.price", Value: m.Price})
	}
	fields = append(fields, Field{LabelKey: "review.tips", ValueKey: yesNo(m.AcceptsTips)})
	if m.AcceptsTips {
		value := m.TipHandle
		if m.TipMethod != "" {
			value = m.TipMethod + " · " + m.TipHandle
		}
		fields = append(fields, Field{LabelKey: "review.tip_handle", Value: value})
	}
	return Section{Key: "monetization", Step: StepMonetization, Fields: fields}
}

func yesNo(b bool) string {
	if b {
		return "review.yes"
	}
	return "review.no"
}
