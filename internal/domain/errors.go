package domain

import "errors"

// Domain errors.
var (
	ErrEventNotFound     = errors.New("événement non trouvé")
	ErrDraftNotFound     = errors.New("brouillon non trouvé ou expiré")
	ErrUnknownField      = errors.New("champ de brouillon inconnu")
	ErrStepOutOfRange    = errors.New("étape hors limites")
	ErrPublishInFlight   = errors.New("publication déjà en cours")
	ErrNotOwner          = errors.New("seul le créateur peut effectuer cette action")
	ErrRSVPNotFound      = errors.New("réservation non trouvée")
	ErrRSVPExists        = errors.New("réservation déjà enregistrée")
	ErrEventFull         = errors.New("l'événement est complet")
	ErrEmailRequired     = errors.New("une adresse e-mail est requise pour réserver")
	ErrSchemaMismatch    = errors.New("enregistrement distant mal formé")
	ErrDuplicatePlatform = errors.New("plateforme déjà sélectionnée")
	ErrInvalidToken      = errors.New("jeton d'authentification invalide")
)

// Code returns a stable message code for a domain error, used as the suffix
// of an i18n key ("errors.<code>"). Unknown errors yield "".
func Code(err error) string {
	switch {
	case errors.Is(err, ErrEventNotFound):
		return "event_not_found"
	case errors.Is(err, ErrDraftNotFound):
		return "draft_not_found"
	case errors.Is(err, ErrUnknownField):
		return "unknown_field"
	case errors.Is(err, ErrStepOutOfRange):
		return "step_out_of_range"
	case errors.Is(err, ErrPublishInFlight):
		return "publish_in_flight"
	case errors.Is(err, ErrNotOwner):
		return "not_owner"
	case errors.Is(err, ErrRSVPNotFound):
		return "rsvp_not_found"
	case errors.Is(err, ErrRSVPExists):
		return "rsvp_exists"
	case errors.Is(err, ErrEventFull):
		return "event_full"
	case errors.Is(err, ErrEmailRequired):
		return "email_required"
	case errors.Is(err, ErrSchemaMismatch):
		return "schema_mismatch"
	case errors.Is(err, ErrDuplicatePlatform):
		return "duplicate_platform"
	case errors.Is(err, ErrInvalidToken):
		return "invalid_token"
	}
	return ""
}
