package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

var _ output.RSVPRepository = (*RSVPRepository)(nil)

type RSVPRepository struct {
	pool *pgxpool.Pool
}

func NewRSVPRepository(pool *pgxpool.Pool) *RSVPRepository {
	return &RSVPRepository{pool: pool}
}

func (r *RSVPRepository) Create(ctx context.Context, rsvp *entities.RSVP) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO rsvps (event_id, name, email, status, joined_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`,
		rsvp.EventID, rsvp.Name, rsvp.Email, rsvp.Status,
		pgtype.Timestamptz{Time: rsvp.JoinedAt, Valid: true},
	)
	var (
		id                   int64
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &createdAt, &updatedAt); err != nil {
		return fmt.Errorf("create rsvp: %w", err)
	}
	rsvp.ID = uint(id)
	rsvp.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	rsvp.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *RSVPRepository) FindByID(ctx context.Context, id uint) (*entities.RSVP, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, event_id, name, email, status, joined_at, created_at, updated_at
		FROM rsvps WHERE id = $1`, int64(id))
	rsvp, err := scanRSVP(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("get rsvp by id: %w", err)
	}
	return rsvp, nil
}

func (r *RSVPRepository) FindByEventID(ctx context.Context, eventID string) ([]entities.RSVP, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, name, email, status, joined_at, created_at, updated_at
		FROM rsvps WHERE event_id = $1 ORDER BY joined_at`, eventID)
	if err != nil {
		return nil, fmt.Errorf("get rsvps by event id: %w", err)
	}
	defer rows.Close()
	out := []entities.RSVP{}
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rsvp: %w", err)
		}
		out = append(out, *rsvp)
	}
	return out, rows.Err()
}

func (r *RSVPRepository) FindByEventIDAndEmail(ctx context.Context, eventID, email string) (*entities.RSVP, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, event_id, name, email, status, joined_at, created_at, updated_at
		FROM rsvps WHERE event_id = $1 AND email = $2`, eventID, email)
	rsvp, err := scanRSVP(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRSVPNotFound
		}
		return nil, fmt.Errorf("get rsvp by event id and email: %w", err)
	}
	return rsvp, nil
}

func (r *RSVPRepository) CountByEventIDAndStatus(ctx context.Context, eventID, status string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM rsvps WHERE event_id = $1 AND status = $2`,
		eventID, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count rsvps: %w", err)
	}
	return count, nil
}

func (r *RSVPRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE rsvps SET status = $2, updated_at = now() WHERE id = $1`,
		int64(id), status)
	if err != nil {
		return fmt.Errorf("update rsvp status: %w", err)
	}
	return nil
}

func scanRSVP(row pgx.Row) (*entities.RSVP, error) {
	var (
		p                              entities.RSVP
		id                             int64
		joinedAt, createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&id, &p.EventID, &p.Name, &p.Email, &p.Status,
		&joinedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	p.ID = uint(id)
	p.JoinedAt = pgtypeTimestamptzToTime(joinedAt)
	p.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	p.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &p, nil
}
