package wizard

import (
	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

// Sequencer is the linear step machine of the wizard: Details → Platforms →
// RSVP → Monetization → Review. Forward motion is gated by the current step's
// validator; backward motion and direct jumps never validate.
type Sequencer struct {
	step Step
}

func NewSequencer() *Sequencer {
	return &Sequencer{step: StepDetails}
}

func (s *Sequencer) Step() Step {
	return s.step
}

// Next validates the current step against the draft. On success the sequencer
// advances (clamped at Review); on failure it stays put and the result carries
// the reason. Review is terminal: Next there is a no-op that still passes,
// publication being a separate action rather than a transition.
func (s *Sequencer) Next(d entities.EventDraft) Result {
	res := ValidateStep(s.step, d)
	if !res.OK {
		return res
	}
	if s.step < StepReview {
		s.step++
	}
	return res
}

// Previous steps back unconditionally, clamped at Details. No validation:
// going backward never loses data since the draft is shared across steps.
func (s *Sequencer) Previous() {
	if s.step > StepDetails {
		s.step--
	}
}

// JumpTo is the "edit this section" affordance of the review screen: a direct
// transition that bypasses validation, because the user is returning to fix
// something they already passed. Out-of-range targets are rejected.
func (s *Sequencer) JumpTo(step Step) error {
	if step < StepDetails || step > StepReview {
		return domain.ErrStepOutOfRange
	}
	s.step = step
	return nil
}
