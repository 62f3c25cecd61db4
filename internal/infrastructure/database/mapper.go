package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"liveline/internal/domain/entities"
)

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

// timeToPgtype is the inverse: zero time maps to NULL.
func timeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// platformsToJSON encodes the ordered binding list for the jsonb column.
func platformsToJSON(platforms []entities.PlatformBinding) ([]byte, error) {
	if platforms == nil {
		platforms = []entities.PlatformBinding{}
	}
	raw, err := json.Marshal(platforms)
	if err != nil {
		return nil, fmt.Errorf("encode platforms: %w", err)
	}
	return raw, nil
}

func platformsFromJSON(raw []byte) ([]entities.PlatformBinding, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var platforms []entities.PlatformBinding
	if err := json.Unmarshal(raw, &platforms); err != nil {
		return nil, fmt.Errorf("decode platforms: %w", err)
	}
	return platforms, nil
}
