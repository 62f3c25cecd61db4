package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/wizard"
)

const testBaseURL = "https://liveline.app"

func makeDraft() entities.EventDraft {
	d := entities.NewEventDraft()
	d.Title = "Q&A"
	d.DatePart = "2025-08-15"
	d.TimePart = "14:00"
	d.Platforms = []entities.PlatformBinding{
		{PlatformID: domain.PlatformTwitch, ProfileURL: "https://twitch.tv/creator"},
	}
	return d
}

func TestCreateFromDraftRejectsInvalidDraft(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), testBaseURL, time.UTC)

	_, err := svc.CreateFromDraft(context.Background(), "creator-1", entities.NewEventDraft())
	var verr *wizard.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, wizard.StepDetails, verr.Step)
	assert.Equal(t, wizard.ReasonTitleRequired, verr.Reason)
}

func TestCreateFromDraft(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, testBaseURL, time.UTC)

	event, err := svc.CreateFromDraft(context.Background(), "creator-1", makeDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "creator-1", event.OwnerID)
	assert.True(t, event.ScheduledAt.Equal(time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)))
	assert.True(t, strings.HasPrefix(event.ShareURL, testBaseURL+"/e/"), event.ShareURL)
	assert.True(t, strings.HasSuffix(event.ShareURL, "-"+strings.SplitN(event.ID, "-", 2)[0]), event.ShareURL)
	assert.False(t, event.CreatedAt.IsZero())

	stored, err := repo.FindByID(context.Background(), event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q&A", stored.Title)
}

func TestCreateThenLoadForEditRoundTrip(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), testBaseURL, time.UTC)

	in := makeDraft()
	in.Description = "Session mensuelle"
	in.AttendanceLimit = entities.AttendanceLimit{Enabled: true, Max: 200}
	in.Monetization = entities.Monetization{IsPaid: true, Price: "9.50"}

	event, err := svc.CreateFromDraft(context.Background(), "creator-1", in)
	require.NoError(t, err)

	out, err := svc.LoadForEdit(context.Background(), "creator-1", event.ID)
	require.NoError(t, err)

	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Description, out.Description)
	assert.Equal(t, in.DatePart, out.DatePart)
	assert.Equal(t, in.TimePart, out.TimePart)
	assert.Equal(t, in.Platforms, out.Platforms)
	assert.Equal(t, in.AttendanceLimit, out.AttendanceLimit)
	assert.Equal(t, in.Monetization, out.Monetization)
}

func TestLoadForEditAccessControl(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), testBaseURL, time.UTC)

	event, err := svc.CreateFromDraft(context.Background(), "creator-1", makeDraft())
	require.NoError(t, err)

	_, err = svc.LoadForEdit(context.Background(), "creator-2", event.ID)
	assert.ErrorIs(t, err, domain.ErrNotOwner)

	_, err = svc.LoadForEdit(context.Background(), "creator-1", "absent")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestLoadForEditSchemaMismatch(t *testing.T) {
	repo := newFakeEventRepo()
	repo.events["ev-1"] = entities.Event{
		ID:         "ev-1",
		OwnerID:    "creator-1",
		Title:      "Ancien format",
		Visibility: "secrète",
	}
	svc := NewEventService(repo, testBaseURL, time.UTC)

	_, err := svc.LoadForEdit(context.Background(), "creator-1", "ev-1")
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
}

func TestUpdateFromDraftReArmsReminders(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, testBaseURL, time.UTC)
	ctx := context.Background()

	event, err := svc.CreateFromDraft(ctx, "creator-1", makeDraft())
	require.NoError(t, err)
	require.NoError(t, repo.MarkReminderSent(ctx, event.ID, "24h", time.Now()))

	// Same schedule: the sent marker survives the update.
	same := makeDraft()
	same.Description = "mise à jour"
	updated, err := svc.UpdateFromDraft(ctx, "creator-1", event.ID, same)
	require.NoError(t, err)
	assert.False(t, updated.Reminder24hSentAt.IsZero())

	// Postponed: the markers reset so the reminders fire again.
	moved := makeDraft()
	moved.TimePart = "18:00"
	updated, err = svc.UpdateFromDraft(ctx, "creator-1", event.ID, moved)
	require.NoError(t, err)
	assert.True(t, updated.Reminder24hSentAt.IsZero())
	assert.Equal(t, event.ShareURL, updated.ShareURL)
}

func TestUpdateFromDraftAccessControl(t *testing.T) {
	svc := NewEventService(newFakeEventRepo(), testBaseURL, time.UTC)
	ctx := context.Background()

	event, err := svc.CreateFromDraft(ctx, "creator-1", makeDraft())
	require.NoError(t, err)

	_, err = svc.UpdateFromDraft(ctx, "creator-2", event.ID, makeDraft())
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

// A store outage must surface as such, never as a missing event.
func TestGetEventStoreFailure(t *testing.T) {
	repo := newFakeEventRepo()
	repo.findErr = errors.New("connexion refusée")
	svc := NewEventService(repo, testBaseURL, time.UTC)

	_, err := svc.GetEvent(context.Background(), "ev-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEventNotFound)
}

func TestDeleteEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, testBaseURL, time.UTC)
	ctx := context.Background()

	event, err := svc.CreateFromDraft(ctx, "creator-1", makeDraft())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.DeleteEvent(ctx, "creator-2", event.ID), domain.ErrNotOwner)
	require.NoError(t, svc.DeleteEvent(ctx, "creator-1", event.ID))
	assert.ErrorIs(t, svc.DeleteEvent(ctx, "creator-1", event.ID), domain.ErrEventNotFound)
}
