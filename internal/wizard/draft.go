package wizard

import (
	"encoding/json"
	"fmt"
	"strings"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
)

// SetField remplace un attribut du brouillon et retourne la nouvelle valeur,
// sans toucher à l'original. Les noms de champs sont ceux du formulaire côté
// client. Un nom inconnu est une erreur (pas d'écriture silencieuse).
func SetField(d entities.EventDraft, field string, value any) (entities.EventDraft, error) {
	switch field {
	case "title":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.Title = strings.TrimSpace(s)
	case "description":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.Description = s
	case "datePart":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.DatePart = strings.TrimSpace(s)
	case "timePart":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.TimePart = strings.TrimSpace(s)
	case "durationMinutes":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.DurationMinutes = s
	case "coverImageUrl":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.CoverImageURL = s
	case "platforms":
		var list []entities.PlatformBinding
		if err := decodeInto(value, &list); err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		if err := checkPlatforms(list); err != nil {
			return d, err
		}
		d.Platforms = list
	case "attendanceLimit":
		var limit entities.AttendanceLimit
		if err := decodeInto(value, &limit); err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.AttendanceLimit = limit
	case "reminderPolicy":
		var policy entities.ReminderPolicy
		if err := decodeInto(value, &policy); err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.ReminderPolicy = policy
	case "calendarPolicy":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		if !domain.KnownCalendarPolicy(s) {
			return d, fmt.Errorf("set %s: politique inconnue %q", field, s)
		}
		d.CalendarPolicy = s
	case "requireEmailToRSVP":
		b, err := asBool(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.RequireEmailToRSVP = b
	case "visibility":
		s, err := asString(value)
		if err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		if !domain.KnownVisibility(s) {
			return d, fmt.Errorf("set %s: visibilité inconnue %q", field, s)
		}
		d.Visibility = s
	case "monetization":
		var m entities.Monetization
		if err := decodeInto(value, &m); err != nil {
			return d, fmt.Errorf("set %s: %w", field, err)
		}
		d.Monetization = m
	default:
		return d, domain.ErrUnknownField
	}
	return d, nil
}

// AddPlatform ajoute une cible de diffusion; l'identité est le platformId
// (au plus une par plateforme).
func AddPlatform(d entities.EventDraft, b entities.PlatformBinding) (entities.EventDraft, error) {
	if !domain.KnownPlatform(b.PlatformID) {
		return d, fmt.Errorf("plateforme inconnue %q", b.PlatformID)
	}
	if _, exists := d.PlatformByID(b.PlatformID); exists {
		return d, domain.ErrDuplicatePlatform
	}
	platforms := make([]entities.PlatformBinding, len(d.Platforms), len(d.Platforms)+1)
	copy(platforms, d.Platforms)
	d.Platforms = append(platforms, b)
	return d, nil
}

// RemovePlatform retire la cible correspondante si elle existe.
func RemovePlatform(d entities.EventDraft, platformID string) entities.EventDraft {
	platforms := make([]entities.PlatformBinding, 0, len(d.Platforms))
	for _, b := range d.Platforms {
		if b.PlatformID != platformID {
			platforms = append(platforms, b)
		}
	}
	d.Platforms = platforms
	return d
}

func checkPlatforms(list []entities.PlatformBinding) error {
	seen := map[string]bool{}
	for _, b := range list {
		if !domain.KnownPlatform(b.PlatformID) {
			return fmt.Errorf("plateforme inconnue %q", b.PlatformID)
		}
		if seen[b.PlatformID] {
			return domain.ErrDuplicatePlatform
		}
		seen[b.PlatformID] = true
	}
	return nil
}

func asString(value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("chaîne attendue, reçu %T", value)
	}
	return s, nil
}

func asBool(value any) (bool, error) {
	b, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("booléen attendu, reçu %T", value)
	}
	return b, nil
}

// decodeInto rejoue la valeur JSON décodée dans le type structuré cible.
func decodeInto(value any, target any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	return dec.Decode(target)
}
