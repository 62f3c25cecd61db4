package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

var _ output.Notifier = (*LogNotifier)(nil)

// LogNotifier records each reminder hand-off in the application log. Actual
// delivery belongs to the hosted transactional email collaborator; this is
// the seam where its client would plug in.
type LogNotifier struct {
	translator output.Translator
	locale     string
	log        *logrus.Entry
}

func NewLogNotifier(translator output.Translator, locale string, log *logrus.Entry) *LogNotifier {
	return &LogNotifier{
		translator: translator,
		locale:     locale,
		log:        log,
	}
}

func (n *LogNotifier) Notify(_ context.Context, kind output.ReminderKind, event *entities.Event) error {
	subject := n.translator.T(n.locale, "reminder.subject_"+subjectKey(kind),
		map[string]any{"Title": event.Title})
	n.log.WithFields(logrus.Fields{
		"event_id":     event.ID,
		"owner_id":     event.OwnerID,
		"kind":         kind,
		"scheduled_at": event.ScheduledAt,
	}).Info(subject)
	return nil
}

func subjectKey(kind output.ReminderKind) string {
	switch kind {
	case output.Reminder24h:
		return "24h"
	case output.Reminder1h:
		return "1h"
	default:
		return "golive"
	}
}
