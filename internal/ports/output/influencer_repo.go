package output

import (
	"context"

	"liveline/internal/domain/entities"
)

type InfluencerRepository interface {
	FindByUserID(ctx context.Context, userID string) (*entities.Influencer, error)
	// Upsert inserts the profile when absent and returns the stored row either
	// way; it must be safe under concurrent session starts for the same user.
	Upsert(ctx context.Context, influencer *entities.Influencer) error
}
