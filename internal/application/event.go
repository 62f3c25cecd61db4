package application

import (
	"context"
	"fmt"
	"time"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
	"liveline/internal/wizard"
	"liveline/pkg/share"
)

// EventService is the persistence adapter of the wizard: it maps drafts to
// event records and back, and owns id/share-URL generation.
type EventService struct {
	eventRepo output.EventRepository
	baseURL   string
	loc       *time.Location
}

func NewEventService(eventRepo output.EventRepository, baseURL string, loc *time.Location) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		baseURL:   baseURL,
		loc:       loc,
	}
}

// CreateFromDraft publishes a new event from a finished draft. The validators
// are re-run as a whole before anything leaves the process; the identifier and
// the canonical share URL are generated client-side, before the insert.
func (s *EventService) CreateFromDraft(ctx context.Context, ownerID string, d entities.EventDraft) (*entities.Event, error) {
	if step, res := wizard.ValidateAll(d); !res.OK {
		return nil, &wizard.ValidationError{Step: step, Reason: res.Reason}
	}
	event := &entities.Event{
		ID:      share.NewEventID(),
		OwnerID: ownerID,
	}
	if err := applyDraft(event, d, s.loc); err != nil {
		return nil, err
	}
	event.ShareURL = share.CanonicalURL(s.baseURL, event.Title, event.ID)
	if err := s.eventRepo.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	return event, nil
}

// UpdateFromDraft republishes an existing event from an edited draft. The
// share URL and creation timestamp survive; reminder markers are re-armed
// when the schedule moved, so a postponed event gets its reminders again.
func (s *EventService) UpdateFromDraft(ctx context.Context, ownerID, eventID string, d entities.EventDraft) (*entities.Event, error) {
	if step, res := wizard.ValidateAll(d); !res.OK {
		return nil, &wizard.ValidationError{Step: step, Reason: res.Reason}
	}
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}
	previousSchedule := event.ScheduledAt
	if err := applyDraft(event, d, s.loc); err != nil {
		return nil, err
	}
	if !event.ScheduledAt.Equal(previousSchedule) {
		event.Reminder24hSentAt = time.Time{}
		event.Reminder1hSentAt = time.Time{}
		event.GoLiveSentAt = time.Time{}
	}
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// LoadForEdit hydrates a wizard draft from a stored event. A malformed stored
// record surfaces as a schema mismatch, never as a draft full of zero values.
func (s *EventService) LoadForEdit(ctx context.Context, ownerID, eventID string) (entities.EventDraft, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return entities.EventDraft{}, err
	}
	if event.OwnerID != ownerID {
		return entities.EventDraft{}, domain.ErrNotOwner
	}
	return eventToDraft(event, s.loc)
}

func (s *EventService) GetEvent(ctx context.Context, eventID string) (*entities.Event, error) {
	return s.eventRepo.FindByID(ctx, eventID)
}

func (s *EventService) ListByOwner(ctx context.Context, ownerID string) ([]entities.Event, error) {
	return s.eventRepo.FindByOwnerID(ctx, ownerID)
}

func (s *EventService) DeleteEvent(ctx context.Context, ownerID, eventID string) error {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.OwnerID != ownerID {
		return domain.ErrNotOwner
	}
	return s.eventRepo.Delete(ctx, eventID)
}
