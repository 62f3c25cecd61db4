package wizard

import (
	"fmt"
	"strings"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

// Step indexes the wizard's ordered steps.
type Step int

const (
	StepDetails Step = iota
	StepPlatforms
	StepRSVP
	StepMonetization
	StepReview
)

// StepCount includes the terminal review step.
const StepCount = 5

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepPlatforms:
		return "platforms"
	case StepRSVP:
		return "rsvp"
	case StepMonetization:
		return "monetization"
	case StepReview:
		return "review"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Reason identifies why a step refused to validate. It doubles as the suffix
// of the i18n key ("wizard.<reason>") rendering the user-facing message.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonTitleRequired     Reason = "title_required"
	ReasonDateTimeRequired  Reason = "datetime_required"
	ReasonPlatformRequired  Reason = "platform_required"
	ReasonPriceInvalid      Reason = "price_invalid"
	ReasonTipHandleRequired Reason = "tip_handle_required"
)

// Result is the outcome of a step validation.
type Result struct {
	OK     bool
	Reason Reason
}

func pass() Result         { return Result{OK: true} }
func fail(r Reason) Result { return Result{Reason: r} }

// ValidateStep runs the validator of the given step against the draft.
// Review has no validator and always passes.
func ValidateStep(step Step, d entities.EventDraft) Result {
	switch step {
	case StepDetails:
		return validateDetails(d)
	case StepPlatforms:
		return validatePlatforms(d)
	case StepRSVP:
		return validateRSVP(d)
	case StepMonetization:
		return validateMonetization(d)
	}
	return pass()
}

// ValidateAll re-runs every step validator before submission and returns the
// first failing step. Reaching Review normally guarantees they all pass; this
// keeps a bad draft out of the store regardless of how it got there.
func ValidateAll(d entities.EventDraft) (Step, Result) {
	for step := StepDetails; step < StepReview; step++ {
		if res := ValidateStep(step, d); !res.OK {
			return step, res
		}
	}
	return StepReview, pass()
}

func validateDetails(d entities.EventDraft) Result {
	if strings.TrimSpace(d.Title) == "" {
		return fail(ReasonTitleRequired)
	}
	if strings.TrimSpace(d.DatePart) == "" || strings.TrimSpace(d.TimePart) == "" {
		return fail(ReasonDateTimeRequired)
	}
	return pass()
}

func validatePlatforms(d entities.EventDraft) Result {
	if len(d.Platforms) == 0 {
		return fail(ReasonPlatformRequired)
	}
	return pass()
}

// Tous les champs RSVP/rappels sont optionnels.
func validateRSVP(entities.EventDraft) Result {
	return pass()
}

func validateMonetization(d entities.EventDraft) Result {
	m := d.Monetization
	if m.IsPaid {
		// Même parseur que le calcul de revenus: un prix validé ici
		// compte toujours dans le tableau de bord.
		cents, err := domain.ParsePriceCents(m.Price)
		if err != nil || cents <= 0 {
			return fail(ReasonPriceInvalid)
		}
	}
	if m.AcceptsTips && strings.TrimSpace(m.TipHandle) == "" {
		return fail(ReasonTipHandleRequired)
	}
	return pass()
}

// ValidationError carries a refused step and its reason across the publish
// boundary, so callers can render the localized message.
type ValidationError struct {
	Step   Step
	Reason Reason
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("étape %s invalide: %s", e.Step, e.Reason)
}
