package application

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

func quietLog() *logrus.Entry {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return logrus.NewEntry(log)
}

func TestDispatchDue(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	eventRepo := newFakeEventRepo()
	eventRepo.events["ev-24h"] = entities.Event{
		ID:             "ev-24h",
		OwnerID:        "creator-1",
		Title:          "Demain",
		ScheduledAt:    now.Add(20 * time.Hour),
		ReminderPolicy: entities.ReminderPolicy{At24h: true},
	}
	eventRepo.events["ev-golive"] = entities.Event{
		ID:             "ev-golive",
		OwnerID:        "creator-1",
		Title:          "En direct",
		ScheduledAt:    now.Add(-10 * time.Minute),
		ReminderPolicy: entities.ReminderPolicy{AtGoLive: true},
	}
	// Reminders disabled: never dispatched even when the slot is due.
	eventRepo.events["ev-muet"] = entities.Event{
		ID:          "ev-muet",
		OwnerID:     "creator-1",
		ScheduledAt: now.Add(20 * time.Hour),
	}

	notifier := &fakeNotifier{}
	svc := NewReminderService(eventRepo, notifier, quietLog())

	sent := svc.DispatchDue(context.Background(), now)
	assert.Equal(t, 2, sent)
	assert.ElementsMatch(t, []sentReminder{
		{Kind: output.Reminder24h, EventID: "ev-24h"},
		{Kind: output.ReminderGoLive, EventID: "ev-golive"},
	}, notifier.sent)

	// Each slot fires at most once.
	assert.Equal(t, 0, svc.DispatchDue(context.Background(), now.Add(time.Minute)))
}

func TestDispatchDueRetriesAfterNotifyFailure(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	eventRepo := newFakeEventRepo()
	eventRepo.events["ev-1"] = entities.Event{
		ID:             "ev-1",
		OwnerID:        "creator-1",
		ScheduledAt:    now.Add(20 * time.Hour),
		ReminderPolicy: entities.ReminderPolicy{At24h: true},
	}

	notifier := &fakeNotifier{failID: "ev-1"}
	svc := NewReminderService(eventRepo, notifier, quietLog())

	require.Equal(t, 0, svc.DispatchDue(context.Background(), now))

	// The marker stays clear, so the next pass picks the event up again.
	notifier.failID = ""
	assert.Equal(t, 1, svc.DispatchDue(context.Background(), now.Add(time.Minute)))
}

func TestDispatchDueBothSlots(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	eventRepo := newFakeEventRepo()
	eventRepo.events["ev-1"] = entities.Event{
		ID:             "ev-1",
		OwnerID:        "creator-1",
		ScheduledAt:    now.Add(30 * time.Minute),
		ReminderPolicy: entities.ReminderPolicy{At24h: true, At1h: true},
	}

	notifier := &fakeNotifier{}
	svc := NewReminderService(eventRepo, notifier, quietLog())

	// Within the hour, both the H-24 and H-1 windows cover the event.
	assert.Equal(t, 2, svc.DispatchDue(context.Background(), now))
	assert.ElementsMatch(t, []sentReminder{
		{Kind: output.Reminder24h, EventID: "ev-1"},
		{Kind: output.Reminder1h, EventID: "ev-1"},
	}, notifier.sent)
}
