package input

import (
	"context"

	"liveline/internal/domain/entities"
)

type RSVPUseCase interface {
	JoinEvent(ctx context.Context, locale, eventID, name, email string) (string, *entities.RSVP, error)
	CancelRSVP(ctx context.Context, eventID string, rsvpID uint) error
	ListByEvent(ctx context.Context, ownerID, eventID string) ([]entities.RSVP, error)
}
