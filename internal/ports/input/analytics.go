package input

import (
	"context"
	"time"

	"liveline/internal/domain/entities"
)

type AnalyticsUseCase interface {
	Summary(ctx context.Context, ownerID string, now time.Time) (*entities.AnalyticsSummary, error)
}
