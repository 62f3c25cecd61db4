package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

func TestSequencerNextBlockedByValidation(t *testing.T) {
	seq := NewSequencer()
	d := entities.NewEventDraft()

	res := seq.Next(d)
	assert.False(t, res.OK)
	assert.Equal(t, ReasonTitleRequired, res.Reason)
	assert.Equal(t, StepDetails, seq.Step())
}

func TestSequencerWalkToReview(t *testing.T) {
	seq := NewSequencer()
	d := filledDraft()

	for _, want := range []Step{StepPlatforms, StepRSVP, StepMonetization, StepReview} {
		res := seq.Next(d)
		require.True(t, res.OK)
		assert.Equal(t, want, seq.Step())
	}

	// Review is terminal: another Next passes but does not move.
	res := seq.Next(d)
	assert.True(t, res.OK)
	assert.Equal(t, StepReview, seq.Step())
}

func TestSequencerPreviousClampedAtDetails(t *testing.T) {
	seq := NewSequencer()
	seq.Previous()
	assert.Equal(t, StepDetails, seq.Step())

	require.True(t, seq.Next(filledDraft()).OK)
	seq.Previous()
	assert.Equal(t, StepDetails, seq.Step())
}

func TestSequencerJumpTo(t *testing.T) {
	seq := NewSequencer()

	// Jumps never validate, even over steps the empty draft would fail.
	require.NoError(t, seq.JumpTo(StepMonetization))
	assert.Equal(t, StepMonetization, seq.Step())

	require.NoError(t, seq.JumpTo(StepDetails))
	assert.Equal(t, StepDetails, seq.Step())

	err := seq.JumpTo(Step(7))
	assert.ErrorIs(t, err, domain.ErrStepOutOfRange)
	assert.Equal(t, StepDetails, seq.Step())

	err = seq.JumpTo(Step(-1))
	assert.ErrorIs(t, err, domain.ErrStepOutOfRange)
}
