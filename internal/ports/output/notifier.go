package output

import (
	"context"

	"liveline/internal/domain/entities"
)

// Notifier dispatches one reminder for an event. Actual delivery (email,
// push) is owned by an external collaborator; implementations here only hand
// the reminder off.
type Notifier interface {
	Notify(ctx context.Context, kind ReminderKind, event *entities.Event) error
}
