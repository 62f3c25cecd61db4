package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

var errNoRows = errors.New("no rows in result set")

// fakeEventRepo keeps events in a map, with the same copy semantics as the
// SQL-backed repository: callers never share memory with the store.
type fakeEventRepo struct {
	events  map[string]entities.Event
	findErr error // injected store failure for FindByID
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]entities.Event)}
}

func (r *fakeEventRepo) Insert(_ context.Context, event *entities.Event) error {
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, event *entities.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return errNoRows
	}
	event.UpdatedAt = time.Now()
	r.events[event.ID] = *event
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id string) (*entities.Event, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return &event, nil
}

func (r *fakeEventRepo) FindByOwnerID(_ context.Context, ownerID string) ([]entities.Event, error) {
	var events []entities.Event
	for _, event := range r.events {
		if event.OwnerID == ownerID {
			events = append(events, event)
		}
	}
	return events, nil
}

func (r *fakeEventRepo) FindDueReminders(_ context.Context, kind output.ReminderKind, now time.Time) ([]entities.Event, error) {
	var due []entities.Event
	for _, event := range r.events {
		var wanted bool
		var sentAt time.Time
		switch kind {
		case output.Reminder24h:
			wanted = event.ReminderPolicy.At24h &&
				event.ScheduledAt.After(now) && !event.ScheduledAt.After(now.Add(24*time.Hour))
			sentAt = event.Reminder24hSentAt
		case output.Reminder1h:
			wanted = event.ReminderPolicy.At1h &&
				event.ScheduledAt.After(now) && !event.ScheduledAt.After(now.Add(time.Hour))
			sentAt = event.Reminder1hSentAt
		case output.ReminderGoLive:
			wanted = event.ReminderPolicy.AtGoLive &&
				!event.ScheduledAt.After(now) && event.ScheduledAt.After(now.Add(-time.Hour))
			sentAt = event.GoLiveSentAt
		}
		if wanted && sentAt.IsZero() {
			due = append(due, event)
		}
	}
	return due, nil
}

func (r *fakeEventRepo) MarkReminderSent(_ context.Context, eventID string, kind output.ReminderKind, sentAt time.Time) error {
	event, ok := r.events[eventID]
	if !ok {
		return errNoRows
	}
	switch kind {
	case output.Reminder24h:
		event.Reminder24hSentAt = sentAt
	case output.Reminder1h:
		event.Reminder1hSentAt = sentAt
	case output.ReminderGoLive:
		event.GoLiveSentAt = sentAt
	}
	r.events[eventID] = event
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	delete(r.events, id)
	return nil
}

type fakeRSVPRepo struct {
	rsvps  []entities.RSVP
	nextID uint
}

func newFakeRSVPRepo() *fakeRSVPRepo {
	return &fakeRSVPRepo{nextID: 1}
}

func (r *fakeRSVPRepo) Create(_ context.Context, rsvp *entities.RSVP) error {
	// Mirrors the store's unique (event_id, email) index for non-empty
	// emails, whatever the status of the kept row.
	if rsvp.Email != "" {
		for _, existing := range r.rsvps {
			if existing.EventID == rsvp.EventID && existing.Email == rsvp.Email {
				return fmt.Errorf(`duplicate key value violates unique constraint "idx_rsvps_event_email"`)
			}
		}
	}
	rsvp.ID = r.nextID
	r.nextID++
	now := time.Now()
	rsvp.CreatedAt = now
	rsvp.UpdatedAt = now
	r.rsvps = append(r.rsvps, *rsvp)
	return nil
}

func (r *fakeRSVPRepo) FindByID(_ context.Context, id uint) (*entities.RSVP, error) {
	for i := range r.rsvps {
		if r.rsvps[i].ID == id {
			rsvp := r.rsvps[i]
			return &rsvp, nil
		}
	}
	return nil, domain.ErrRSVPNotFound
}

func (r *fakeRSVPRepo) FindByEventID(_ context.Context, eventID string) ([]entities.RSVP, error) {
	var out []entities.RSVP
	for _, rsvp := range r.rsvps {
		if rsvp.EventID == eventID {
			out = append(out, rsvp)
		}
	}
	return out, nil
}

func (r *fakeRSVPRepo) FindByEventIDAndEmail(_ context.Context, eventID, email string) (*entities.RSVP, error) {
	for i := len(r.rsvps) - 1; i >= 0; i-- {
		if r.rsvps[i].EventID == eventID && r.rsvps[i].Email == email {
			rsvp := r.rsvps[i]
			return &rsvp, nil
		}
	}
	return nil, domain.ErrRSVPNotFound
}

func (r *fakeRSVPRepo) CountByEventIDAndStatus(_ context.Context, eventID, status string) (int64, error) {
	var count int64
	for _, rsvp := range r.rsvps {
		if rsvp.EventID == eventID && rsvp.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeRSVPRepo) UpdateStatus(_ context.Context, id uint, status string) error {
	for i := range r.rsvps {
		if r.rsvps[i].ID == id {
			r.rsvps[i].Status = status
			r.rsvps[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return errNoRows
}

// fakeInfluencerRepo mirrors the ON CONFLICT DO NOTHING semantics of the real
// upsert: the first provisioned profile wins.
type fakeInfluencerRepo struct {
	profiles map[string]entities.Influencer
	upserts  int
}

func newFakeInfluencerRepo() *fakeInfluencerRepo {
	return &fakeInfluencerRepo{profiles: make(map[string]entities.Influencer)}
}

func (r *fakeInfluencerRepo) FindByUserID(_ context.Context, userID string) (*entities.Influencer, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, errNoRows
	}
	return &profile, nil
}

func (r *fakeInfluencerRepo) Upsert(_ context.Context, influencer *entities.Influencer) error {
	r.upserts++
	if existing, ok := r.profiles[influencer.UserID]; ok {
		*influencer = existing
		return nil
	}
	influencer.ID = uint(len(r.profiles) + 1)
	now := time.Now()
	influencer.CreatedAt = now
	influencer.UpdatedAt = now
	r.profiles[influencer.UserID] = *influencer
	return nil
}

// fakeTranslator renders the key itself so tests assert on message identity,
// not on catalogue wording.
type fakeTranslator struct{}

func (fakeTranslator) T(_, key string, _ map[string]any) string {
	return key
}

type sentReminder struct {
	Kind    output.ReminderKind
	EventID string
}

type fakeNotifier struct {
	sent   []sentReminder
	failID string // Notify fails for this event id
}

func (n *fakeNotifier) Notify(_ context.Context, kind output.ReminderKind, event *entities.Event) error {
	if n.failID != "" && event.ID == n.failID {
		return fmt.Errorf("notify %s: indisponible", event.ID)
	}
	n.sent = append(n.sent, sentReminder{Kind: kind, EventID: event.ID})
	return nil
}
