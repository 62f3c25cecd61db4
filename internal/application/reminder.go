package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"liveline/internal/ports/output"
)

// ReminderService scans for events whose reminder slot came due and hands
// them to the notifier. Each slot (H-24, H-1, go-live) fires at most once;
// a sent marker on the event keeps replays out.
type ReminderService struct {
	eventRepo output.EventRepository
	notifier  output.Notifier
	log       *logrus.Entry
}

func NewReminderService(eventRepo output.EventRepository, notifier output.Notifier, log *logrus.Entry) *ReminderService {
	return &ReminderService{
		eventRepo: eventRepo,
		notifier:  notifier,
		log:       log,
	}
}

// Run dispatches due reminders every interval until ctx is cancelled.
func (s *ReminderService) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.DispatchDue(ctx, time.Now())
		}
	}
}

// DispatchDue processes every due reminder once and returns how many were
// sent. One failing event never blocks the rest of the batch.
func (s *ReminderService) DispatchDue(ctx context.Context, now time.Time) int {
	sent := 0
	for _, kind := range []output.ReminderKind{output.Reminder24h, output.Reminder1h, output.ReminderGoLive} {
		events, err := s.eventRepo.FindDueReminders(ctx, kind, now)
		if err != nil {
			s.log.WithError(err).WithField("kind", kind).Error("recherche des rappels dus")
			continue
		}
		for i := range events {
			event := &events[i]
			if err := s.notifier.Notify(ctx, kind, event); err != nil {
				s.log.WithError(err).WithFields(logrus.Fields{
					"event_id": event.ID,
					"kind":     kind,
				}).Error("envoi du rappel")
				continue
			}
			if err := s.eventRepo.MarkReminderSent(ctx, event.ID, kind, now); err != nil {
				s.log.WithError(err).WithField("event_id", event.ID).Error("marquage du rappel envoyé")
				continue
			}
			sent++
		}
	}
	return sent
}
