package entities

import "time"

func (e *Event) IsUpcoming(now time.Time) bool {
	return e.ScheduledAt.After(now)
}

// Event is a published live event as stored in the event store.
type Event struct {
	ID                 string            `json:"id"`
	OwnerID            string            `json:"ownerId"`
	Title              string            `json:"title"`
	Description        string            `json:"description"`
	ScheduledAt        time.Time         `json:"scheduledAt"`
	DurationMinutes    string            `json:"durationMinutes"`
	CoverImageURL      string            `json:"coverImageUrl"`
	Platforms          []PlatformBinding `json:"platforms"`
	AttendanceLimit    AttendanceLimit   `json:"attendanceLimit"`
	ReminderPolicy     ReminderPolicy    `json:"reminderPolicy"`
	CalendarPolicy     string            `json:"calendarPolicy"`
	RequireEmailToRSVP bool              `json:"requireEmailToRSVP"`
	Visibility         string            `json:"visibility"`
	Monetization       Monetization      `json:"monetization"`
	ShareURL           string            `json:"shareUrl"`
	Reminder24hSentAt  time.Time         `json:"-"` // zero = not sent
	Reminder1hSentAt   time.Time         `json:"-"`
	GoLiveSentAt       time.Time         `json:"-"`
	RSVPs              []RSVP            `json:"rsvps,omitempty"`
	CreatedAt          time.Time         `json:"createdAt"`
	UpdatedAt          time.Time         `json:"updatedAt"`
}

// PlatformBinding is one selected distribution target. Identity is PlatformID:
// at most one binding per platform per event.
type PlatformBinding struct {
	PlatformID    string `json:"platformId"`
	ProfileURL    string `json:"profileUrl"`
	ScheduledLink string `json:"scheduledLink,omitempty"`
	// custom-rtmp only
	RTMPURL   string `json:"rtmpUrl,omitempty"`
	StreamKey string `json:"streamKey,omitempty"`
}

type AttendanceLimit struct {
	Enabled bool `json:"enabled"`
	Max     int  `json:"max"` // 0 = unset
}

type ReminderPolicy struct {
	At24h    bool `json:"at24h"`
	At1h     bool `json:"at1h"`
	AtGoLive bool `json:"atGoLive"`
}

// Monetization keeps the price as the creator typed it (decimal string);
// parsing happens at validation time only.
type Monetization struct {
	IsPaid      bool   `json:"isPaid"`
	Price       string `json:"price"`
	AcceptsTips bool   `json:"acceptsTips"`
	TipMethod   string `json:"tipMethod"`
	TipHandle   string `json:"tipHandle"`
}
