package output

import (
	"context"

	"liveline/internal/domain/entities"
)

type RSVPRepository interface {
	Create(ctx context.Context, rsvp *entities.RSVP) error
	FindByID(ctx context.Context, id uint) (*entities.RSVP, error)
	FindByEventID(ctx context.Context, eventID string) ([]entities.RSVP, error)
	FindByEventIDAndEmail(ctx context.Context, eventID, email string) (*entities.RSVP, error)
	CountByEventIDAndStatus(ctx context.Context, eventID, status string) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) error
}
