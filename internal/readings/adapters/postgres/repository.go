package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
	"sensor-telemetry-service/internal/readings/core/ports"
)

type ReadingRepository struct {
	db DB
}

func NewReadingRepository(db DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

var _ ports.ReadingRepositoryPort = (*ReadingRepository)(nil)

// SQL templates
const insertReadingSQL = `
INSERT INTO readings (light, sound, captured_at)
VALUES ($1, $2, COALESCE($3, now()))
RETURNING id, captured_at;
`

const listRecentSQL = `
SELECT id, light, sound, captured_at
FROM readings
ORDER BY captured_at DESC, id DESC
LIMIT $1;
`

const listPageSQL = `
SELECT id, light, sound, captured_at
FROM readings
ORDER BY captured_at DESC, id DESC
LIMIT $1 OFFSET $2;
`

const listRangeSQL = `
SELECT id, light, sound, captured_at
FROM readings
WHERE captured_at BETWEEN $1 AND $2
ORDER BY captured_at ASC, id ASC;
`

const latestSQL = `
SELECT id, light, sound, captured_at
FROM readings
ORDER BY captured_at DESC, id DESC
LIMIT 1;
`

func (r *ReadingRepository) InsertReading(ctx context.Context, light, sound float64, capturedAt *time.Time) (*domain.Reading, error) {
	var at any
	if capturedAt != nil {
		at = capturedAt.UTC()
	}

	reading := domain.Reading{Light: light, Sound: sound}

	row := r.db.QueryRowContext(ctx, insertReadingSQL, light, sound, at)
	if err := row.Scan(&reading.ID, &reading.CapturedAt); err != nil {
		return nil, err
	}
	reading.CapturedAt = reading.CapturedAt.UTC()

	return &reading, nil
}

func (r *ReadingRepository) ListRecent(ctx context.Context, limit int) ([]domain.Reading, error) {
	return r.list(ctx, listRecentSQL, limit)
}

func (r *ReadingRepository) ListPage(ctx context.Context, limit, offset int) ([]domain.Reading, error) {
	return r.list(ctx, listPageSQL, limit, offset)
}

func (r *ReadingRepository) ListRange(ctx context.Context, start, end time.Time) ([]domain.Reading, error) {
	return r.list(ctx, listRangeSQL, start.UTC(), end.UTC())
}

func (r *ReadingRepository) Latest(ctx context.Context) (*domain.Reading, error) {
	row := r.db.QueryRowContext(ctx, latestSQL)

	var reading domain.Reading
	if err := row.Scan(&reading.ID, &reading.Light, &reading.Sound, &reading.CapturedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// empty store, not a failure
			return nil, nil
		}
		return nil, err
	}
	reading.CapturedAt = reading.CapturedAt.UTC()

	return &reading, nil
}

func (r *ReadingRepository) list(ctx context.Context, query string, args ...any) ([]domain.Reading, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := []domain.Reading{}
	for rows.Next() {
		var reading domain.Reading
		if err := rows.Scan(&reading.ID, &reading.Light, &reading.Sound, &reading.CapturedAt); err != nil {
			return nil, err
		}
		reading.CapturedAt = reading.CapturedAt.UTC()
		readings = append(readings, reading)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return readings, nil
}
