package output

import (
	"context"
	"time"

	"liveline/internal/domain/entities"
)

// ReminderKind identifies one of the three reminder slots of an event.
type ReminderKind string

const (
	Reminder24h    ReminderKind = "24h"
	Reminder1h     ReminderKind = "1h"
	ReminderGoLive ReminderKind = "golive"
)

type EventRepository interface {
	Insert(ctx context.Context, event *entities.Event) error
	Update(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id string) (*entities.Event, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]entities.Event, error)
	FindDueReminders(ctx context.Context, kind ReminderKind, now time.Time) ([]entities.Event, error)
	MarkReminderSent(ctx context.Context, eventID string, kind ReminderKind, sentAt time.Time) error
	Delete(ctx context.Context, id string) error
}
