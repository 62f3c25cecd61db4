package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

func TestRegistryOwnership(t *testing.T) {
	reg := NewRegistry(time.Hour)
	s := reg.Create("creator-1", entities.NewEventDraft(), "")

	got, err := reg.Get(s.ID, "creator-1")
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	// A foreign session looks exactly like a missing one.
	_, err = reg.Get(s.ID, "creator-2")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	_, err = reg.Get("inexistante", "creator-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRegistryExpiry(t *testing.T) {
	reg := NewRegistry(time.Nanosecond)
	s := reg.Create("creator-1", entities.NewEventDraft(), "")

	time.Sleep(time.Millisecond)
	_, err := reg.Get(s.ID, "creator-1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestRegistrySweep(t *testing.T) {
	reg := NewRegistry(30 * time.Minute)
	reg.Create("creator-1", entities.NewEventDraft(), "")
	reg.Create("creator-2", entities.NewEventDraft(), "")

	assert.Equal(t, 0, reg.Sweep(time.Now()))
	assert.Equal(t, 2, reg.Sweep(time.Now().Add(time.Hour)))
	assert.Equal(t, 0, reg.Sweep(time.Now().Add(time.Hour)))
}

func TestSessionPublishGuard(t *testing.T) {
	reg := NewRegistry(time.Hour)
	s := reg.Create("creator-1", filledDraft(), "")

	draft, err := s.BeginPublish()
	require.NoError(t, err)
	assert.Equal(t, "Q&A", draft.Title)

	_, err = s.BeginPublish()
	assert.ErrorIs(t, err, domain.ErrPublishInFlight)

	// A failed publish re-arms the session, draft intact.
	s.EndPublish()
	draft, err = s.BeginPublish()
	require.NoError(t, err)
	assert.Equal(t, "Q&A", draft.Title)
}

func TestSessionSetFieldKeepsStep(t *testing.T) {
	reg := NewRegistry(time.Hour)
	s := reg.Create("creator-1", entities.NewEventDraft(), "")

	_, err := s.SetField("title", "Atelier cuisine")
	require.NoError(t, err)
	assert.Equal(t, StepDetails, s.Step())
	assert.Equal(t, "Atelier cuisine", s.Draft().Title)

	// A refused update leaves the stored draft untouched.
	_, err = s.SetField("visibility", "secrète")
	require.Error(t, err)
	assert.Equal(t, domain.VisibilityPublic, s.Draft().Visibility)
}
