package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

var _ output.InfluencerRepository = (*InfluencerRepository)(nil)

type InfluencerRepository struct {
	pool *pgxpool.Pool
}

func NewInfluencerRepository(pool *pgxpool.Pool) *InfluencerRepository {
	return &InfluencerRepository{pool: pool}
}

func (r *InfluencerRepository) FindByUserID(ctx context.Context, userID string) (*entities.Influencer, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, email, avatar_url, created_at, updated_at
		FROM influencers WHERE user_id = $1`, userID)
	var (
		inf                  entities.Influencer
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &inf.UserID, &inf.DisplayName, &inf.Email,
		&inf.AvatarURL, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("get influencer by user id: %w", err)
	}
	inf.ID = uint(id)
	inf.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	inf.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &inf, nil
}

// Upsert keeps the first provisioned profile: a replayed session start never
// overwrites what the creator may have edited since.
func (r *InfluencerRepository) Upsert(ctx context.Context, influencer *entities.Influencer) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO influencers (user_id, display_name, email, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = influencers.updated_at
		RETURNING id, display_name, email, avatar_url, created_at, updated_at`,
		influencer.UserID, influencer.DisplayName, influencer.Email, influencer.AvatarURL,
	)
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &influencer.DisplayName, &influencer.Email,
		&influencer.AvatarURL, &createdAt, &updatedAt)
	if err != nil {
		return fmt.Errorf("upsert influencer: %w", err)
	}
	influencer.ID = uint(id)
	influencer.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	influencer.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}
