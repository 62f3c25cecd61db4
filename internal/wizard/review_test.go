package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

func TestProjectSectionsAndJumpTargets(t *testing.T) {
	d := filledDraft()
	sections := Project(d, time.UTC)
	require.Len(t, sections, 4)

	assert.Equal(t, "details", sections[0].Key)
	assert.Equal(t, StepDetails, sections[0].Step)
	assert.Equal(t, "platforms", sections[1].Key)
	assert.Equal(t, StepPlatforms, sections[1].Step)
	assert.Equal(t, "rsvp", sections[2].Key)
	assert.Equal(t, StepRSVP, sections[2].Step)
	assert.Equal(t, "monetization", sections[3].Key)
	assert.Equal(t, StepMonetization, sections[3].Step)
}

func TestProjectDetailsFormatting(t *testing.T) {
	d := filledDraft()
	d.Description = "Session questions-réponses"

	sections := Project(d, time.UTC)
	fields := sections[0].Fields
	require.Len(t, fields, 3)
	assert.Equal(t, "Q&A", fields[0].Value)
	assert.Equal(t, "Session questions-réponses", fields[1].Value)
	assert.Equal(t, "15/08/2025 à 14:00", fields[2].Value)
}

// The projection never validates: a partial draft still renders, with the raw
// date/time parts shown as-is when they do not compose.
func TestProjectPartialDraft(t *testing.T) {
	d := entities.NewEventDraft()
	d.Title = "Brouillon"
	d.DatePart = "2025-08-15"

	sections := Project(d, time.UTC)
	assert.Equal(t, "2025-08-15 ", sections[0].Fields[1].Value)
	assert.Empty(t, sections[1].Fields)
}

func TestProjectReflectsLatestDraft(t *testing.T) {
	d := filledDraft()
	first := Project(d, time.UTC)
	assert.Equal(t, "Q&A", first[0].Fields[0].Value)

	d, err := SetField(d, "title", "Titre corrigé")
	require.NoError(t, err)
	second := Project(d, time.UTC)
	assert.Equal(t, "Titre corrigé", second[0].Fields[0].Value)
}

func TestProjectRSVPAndMonetizationValues(t *testing.T) {
	d := filledDraft()
	d.AttendanceLimit = entities.AttendanceLimit{Enabled: true, Max: 100}
	d.ReminderPolicy = entities.ReminderPolicy{At24h: true, AtGoLive: true}
	d.RequireEmailToRSVP = true
	d.Monetization = entities.Monetization{
		IsPaid:      true,
		Price:       "15.00",
		AcceptsTips: true,
		TipMethod:   "paypal",
		TipHandle:   "@creator",
	}

	sections := Project(d, time.UTC)

	rsvp := sections[2].Fields
	assert.Equal(t, "100", rsvp[0].Value)
	assert.Equal(t, "H-24, live", rsvp[1].Value)
	assert.Equal(t, "review.calendar_"+domain.CalendarAsk, rsvp[2].ValueKey)
	assert.Equal(t, "review.yes", rsvp[3].ValueKey)

	monet := sections[3].Fields
	require.Len(t, monet, 4)
	assert.Equal(t, "review.yes", monet[0].ValueKey)
	assert.Equal(t, "15.00", monet[1].Value)
	assert.Equal(t, "paypal · @creator", monet[3].Value)
}
