package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"liveline/internal/domain"
	"liveline/internal/domain/entities"
	"liveline/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// eventColumns is the column list shared by every SELECT of this repository;
// scanEvent must stay in the same order.
const eventColumns = `
	id, owner_id, title, description, scheduled_at, duration_minutes,
	cover_image_url, platforms, attendance_enabled, attendance_max,
	remind_24h, remind_1h, remind_golive, calendar_policy,
	require_email_to_rsvp, visibility, is_paid, price, accepts_tips,
	tip_method, tip_handle, share_url, reminder_24h_sent_at,
	reminder_1h_sent_at, golive_sent_at, created_at, updated_at`

type EventRepository struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

func (r *EventRepository) Insert(ctx context.Context, event *entities.Event) error {
	platforms, err := platformsToJSON(event.Platforms)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO events (
			id, owner_id, title, description, scheduled_at, duration_minutes,
			cover_image_url, platforms, attendance_enabled, attendance_max,
			remind_24h, remind_1h, remind_golive, calendar_policy,
			require_email_to_rsvp, visibility, is_paid, price, accepts_tips,
			tip_method, tip_handle, share_url
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22
		)
		RETURNING created_at, updated_at`,
		event.ID, event.OwnerID, event.Title, event.Description,
		timeToPgtype(event.ScheduledAt), event.DurationMinutes,
		event.CoverImageURL, platforms,
		event.AttendanceLimit.Enabled, event.AttendanceLimit.Max,
		event.ReminderPolicy.At24h, event.ReminderPolicy.At1h, event.ReminderPolicy.AtGoLive,
		event.CalendarPolicy, event.RequireEmailToRSVP, event.Visibility,
		event.Monetization.IsPaid, event.Monetization.Price,
		event.Monetization.AcceptsTips, event.Monetization.TipMethod,
		event.Monetization.TipHandle, event.ShareURL,
	)
	var createdAt, updatedAt pgtype.Timestamptz
	if err := row.Scan(&createdAt, &updatedAt); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	event.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	platforms, err := platformsToJSON(event.Platforms)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE events SET
			title = $2, description = $3, scheduled_at = $4,
			duration_minutes = $5, cover_image_url = $6, platforms = $7,
			attendance_enabled = $8, attendance_max = $9,
			remind_24h = $10, remind_1h = $11, remind_golive = $12,
			calendar_policy = $13, require_email_to_rsvp = $14,
			visibility = $15, is_paid = $16, price = $17,
			accepts_tips = $18, tip_method = $19, tip_handle = $20,
			reminder_24h_sent_at = $21, reminder_1h_sent_at = $22,
			golive_sent_at = $23, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`,
		event.ID, event.Title, event.Description, timeToPgtype(event.ScheduledAt),
		event.DurationMinutes, event.CoverImageURL, platforms,
		event.AttendanceLimit.Enabled, event.AttendanceLimit.Max,
		event.ReminderPolicy.At24h, event.ReminderPolicy.At1h, event.ReminderPolicy.AtGoLive,
		event.CalendarPolicy, event.RequireEmailToRSVP, event.Visibility,
		event.Monetization.IsPaid, event.Monetization.Price,
		event.Monetization.AcceptsTips, event.Monetization.TipMethod,
		event.Monetization.TipHandle,
		timeToPgtype(event.Reminder24hSentAt), timeToPgtype(event.Reminder1hSentAt),
		timeToPgtype(event.GoLiveSentAt),
	)
	var updatedAt pgtype.Timestamptz
	if err := row.Scan(&updatedAt); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	event.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		// Une ligne absente et une base injoignable ne se confondent pas:
		// seule la première devient un 404.
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	if err := r.attachRSVPs(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *EventRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]entities.Event, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE owner_id = $1 ORDER BY scheduled_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("get events by owner id: %w", err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) FindDueReminders(ctx context.Context, kind output.ReminderKind, now time.Time) ([]entities.Event, error) {
	var where string
	switch kind {
	case output.Reminder24h:
		where = `remind_24h AND reminder_24h_sent_at IS NULL
			AND scheduled_at > $1 AND scheduled_at <= $1 + interval '24 hours'`
	case output.Reminder1h:
		where = `remind_1h AND reminder_1h_sent_at IS NULL
			AND scheduled_at > $1 AND scheduled_at <= $1 + interval '1 hour'`
	case output.ReminderGoLive:
		// Fenêtre d'une heure: un événement passé depuis longtemps ne
		// déclenche plus rien.
		where = `remind_golive AND golive_sent_at IS NULL
			AND scheduled_at <= $1 AND scheduled_at > $1 - interval '1 hour'`
	default:
		return nil, fmt.Errorf("unknown reminder kind %q", kind)
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+eventColumns+` FROM events WHERE `+where+` ORDER BY scheduled_at`,
		timeToPgtype(now))
	if err != nil {
		return nil, fmt.Errorf("find due reminders (%s): %w", kind, err)
	}
	defer rows.Close()
	return collectEvents(rows)
}

func (r *EventRepository) MarkReminderSent(ctx context.Context, eventID string, kind output.ReminderKind, sentAt time.Time) error {
	var column string
	switch kind {
	case output.Reminder24h:
		column = "reminder_24h_sent_at"
	case output.Reminder1h:
		column = "reminder_1h_sent_at"
	case output.ReminderGoLive:
		column = "golive_sent_at"
	default:
		return fmt.Errorf("unknown reminder kind %q", kind)
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE events SET `+column+` = $2 WHERE id = $1`,
		eventID, timeToPgtype(sentAt))
	if err != nil {
		return fmt.Errorf("mark reminder sent (%s): %w", kind, err)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (r *EventRepository) attachRSVPs(ctx context.Context, event *entities.Event) error {
	rows, err := r.pool.Query(ctx, `
		SELECT id, event_id, name, email, status, joined_at, created_at, updated_at
		FROM rsvps WHERE event_id = $1 ORDER BY joined_at`, event.ID)
	if err != nil {
		return fmt.Errorf("get rsvps: %w", err)
	}
	defer rows.Close()
	event.RSVPs = event.RSVPs[:0]
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return err
		}
		event.RSVPs = append(event.RSVPs, *rsvp)
	}
	return rows.Err()
}

func scanEvent(row pgx.Row) (*entities.Event, error) {
	var (
		e                              entities.Event
		scheduledAt                    pgtype.Timestamptz
		platforms                      []byte
		r24hSentAt, r1hSentAt, goLive  pgtype.Timestamptz
		createdAt, updatedAt           pgtype.Timestamptz
	)
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &e.Description, &scheduledAt,
		&e.DurationMinutes, &e.CoverImageURL, &platforms,
		&e.AttendanceLimit.Enabled, &e.AttendanceLimit.Max,
		&e.ReminderPolicy.At24h, &e.ReminderPolicy.At1h, &e.ReminderPolicy.AtGoLive,
		&e.CalendarPolicy, &e.RequireEmailToRSVP, &e.Visibility,
		&e.Monetization.IsPaid, &e.Monetization.Price,
		&e.Monetization.AcceptsTips, &e.Monetization.TipMethod,
		&e.Monetization.TipHandle, &e.ShareURL,
		&r24hSentAt, &r1hSentAt, &goLive, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.ScheduledAt = pgtypeTimestamptzToTime(scheduledAt)
	e.Platforms, err = platformsFromJSON(platforms)
	if err != nil {
		return nil, err
	}
	e.Reminder24hSentAt = pgtypeTimestamptzToTime(r24hSentAt)
	e.Reminder1hSentAt = pgtypeTimestamptzToTime(r1hSentAt)
	e.GoLiveSentAt = pgtypeTimestamptzToTime(goLive)
	e.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	e.UpdatedAt = pgtypeTimestamptzToTime(updatedAt)
	return &e, nil
}

func collectEvents(rows pgx.Rows) ([]entities.Event, error) {
	out := []entities.Event{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, *event)
	}
	return out, rows.Err()
}
