package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

type RSVPService struct {
	rsvpRepo   output.RSVPRepository
	eventRepo  output.EventRepository
	translator output.Translator
}

func NewRSVPService(
	rsvpRepo output.RSVPRepository,
	eventRepo output.EventRepository,
	translator output.Translator,
) *RSVPService {
	return &RSVPService{
		rsvpRepo:   rsvpRepo,
		eventRepo:  eventRepo,
		translator: translator,
	}
}

// JoinEvent enregistre la réservation d'un fan sur un événement publié et
// retourne le message de confirmation localisé.
func (s *RSVPService) JoinEvent(ctx context.Context, locale, eventID, name, email string) (string, *entities.RSVP, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return "", nil, err
	}
	email = strings.TrimSpace(email)
	if event.RequireEmailToRSVP && email == "" {
		return "", nil, domain.ErrEmailRequired
	}
	var cancelled *entities.RSVP
	if email != "" {
		existing, _ := s.rsvpRepo.FindByEventIDAndEmail(ctx, eventID, email)
		if existing != nil {
			if existing.Status == domain.StatusConfirmed {
				return s.translator.T(locale, "rsvp.already_registered", nil), nil, domain.ErrRSVPExists
			}
			cancelled = existing
		}
	}
	if event.AttendanceLimit.Enabled && event.AttendanceLimit.Max > 0 {
		confirmed, err := s.rsvpRepo.CountByEventIDAndStatus(ctx, eventID, domain.StatusConfirmed)
		if err != nil {
			return "", nil, fmt.Errorf("count confirmed: %w", err)
		}
		if int(confirmed) >= event.AttendanceLimit.Max {
			return s.translator.T(locale, "rsvp.event_full", nil), nil, domain.ErrEventFull
		}
	}
	if cancelled != nil {
		// La ligne annulée se réactive: la contrainte d'unicité
		// (event_id, email) interdit une seconde insertion.
		if err := s.rsvpRepo.UpdateStatus(ctx, cancelled.ID, domain.StatusConfirmed); err != nil {
			return "", nil, fmt.Errorf("rejoin rsvp: %w", err)
		}
		cancelled.Status = domain.StatusConfirmed
		return s.translator.T(locale, "rsvp.confirmed", map[string]any{"Title": event.Title}), cancelled, nil
	}
	rsvp := &entities.RSVP{
		EventID:  eventID,
		Name:     strings.TrimSpace(name),
		Email:    email,
		Status:   domain.StatusConfirmed,
		JoinedAt: time.Now(),
	}
	if err := s.rsvpRepo.Create(ctx, rsvp); err != nil {
		return "", nil, fmt.Errorf("create rsvp: %w", err)
	}
	return s.translator.T(locale, "rsvp.confirmed", map[string]any{"Title": event.Title}), rsvp, nil
}

// CancelRSVP annule une réservation; la ligne est conservée avec le statut
// cancelled pour que le décompte historique reste lisible.
func (s *RSVPService) CancelRSVP(ctx context.Context, eventID string, rsvpID uint) error {
	rsvp, err := s.rsvpRepo.FindByID(ctx, rsvpID)
	if err != nil {
		return err
	}
	if rsvp.EventID != eventID {
		return domain.ErrRSVPNotFound
	}
	if err := s.rsvpRepo.UpdateStatus(ctx, rsvpID, domain.StatusCancelled); err != nil {
		return fmt.Errorf("cancel rsvp: %w", err)
	}
	return nil
}

// ListByEvent returns the reservations of one of the creator's own events.
func (s *RSVPService) ListByEvent(ctx context.Context, ownerID, eventID string) ([]entities.RSVP, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != ownerID {
		return nil, domain.ErrNotOwner
	}
	return s.rsvpRepo.FindByEventID(ctx, eventID)
}
