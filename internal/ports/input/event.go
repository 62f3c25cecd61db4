package input

import (
	"context"

	"liveline/internal/domain/entities"
)

type EventUseCase interface {
	CreateFromDraft(ctx context.Context, ownerID string, d entities.EventDraft) (*entities.Event, error)
	UpdateFromDraft(ctx context.Context, ownerID, eventID string, d entities.EventDraft) (*entities.Event, error)
	LoadForEdit(ctx context.Context, ownerID, eventID string) (entities.EventDraft, error)
	GetEvent(ctx context.Context, eventID string) (*entities.Event, error)
	ListByOwner(ctx context.Context, ownerID string) ([]entities.Event, error)
	DeleteEvent(ctx context.Context, ownerID, eventID string) error
}
