package postgres

import (
	"context"
	"database/sql"
	"time"

	"sensor-telemetry-service/internal/stats/core/domain"
	"sensor-telemetry-service/internal/stats/core/ports"
)

type StatsRepository struct {
	db DB
}

func NewStatsRepository(db DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ ports.StatsReaderPort = (*StatsRepository)(nil)

// SQL templates
const summarySQL = `
SELECT
    COUNT(*)        AS total,
    AVG(light)      AS avg_light,
    MIN(light)      AS min_light,
    MAX(light)      AS max_light,
    AVG(sound)      AS avg_sound,
    MIN(sound)      AS min_sound,
    MAX(sound)      AS max_sound,
    MIN(captured_at) AS first_at,
    MAX(captured_at) AS last_at
FROM readings
`

const summaryWindowClause = `WHERE captured_at BETWEEN $1 AND $2`

const hourlySQL = `
SELECT
    date_trunc('hour', captured_at AT TIME ZONE 'UTC') AS hour_start,
    AVG(light)  AS avg_light,
    AVG(sound)  AS avg_sound,
    COUNT(*)    AS total
FROM readings
WHERE captured_at BETWEEN $1 AND $2
GROUP BY hour_start
ORDER BY hour_start ASC;
`

func (r *StatsRepository) QuerySummary(ctx context.Context, window *ports.TimeWindow) (*domain.SummaryStats, error) {
	query := summarySQL
	var args []any
	if window != nil {
		query += summaryWindowClause
		args = append(args, window.Start, window.End)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	var (
		total                        int64
		avgLight, minLight, maxLight sql.NullFloat64
		avgSound, minSound, maxSound sql.NullFloat64
		firstAt, lastAt              sql.NullTime
	)
	if err := rows.Scan(&total, &avgLight, &minLight, &maxLight,
		&avgSound, &minSound, &maxSound, &firstAt, &lastAt); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// COUNT over an empty set is 0 and every aggregate is NULL: report
	// absence instead of fabricating zeroes.
	if total == 0 {
		return nil, nil
	}

	return &domain.SummaryStats{
		Count:          total,
		AvgLight:       avgLight.Float64,
		MinLight:       minLight.Float64,
		MaxLight:       maxLight.Float64,
		AvgSound:       avgSound.Float64,
		MinSound:       minSound.Float64,
		MaxSound:       maxSound.Float64,
		FirstReadingAt: firstAt.Time.UTC(),
		LastReadingAt:  lastAt.Time.UTC(),
	}, nil
}

func (r *StatsRepository) QueryHourly(ctx context.Context, start, end time.Time) ([]domain.HourlyBucket, error) {
	rows, err := r.db.QueryContext(ctx, hourlySQL, start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := []domain.HourlyBucket{}
	for rows.Next() {
		var b domain.HourlyBucket
		if err := rows.Scan(&b.HourStart, &b.AvgLight, &b.AvgSound, &b.Count); err != nil {
			return nil, err
		}
		b.HourStart = b.HourStart.UTC()
		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
