package ports

import (
	"context"
	"time"

	"sensor-telemetry-service/internal/stats/core/domain"
)

// TimeWindow bounds an aggregation, inclusive on both ends.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

type StatsReaderPort interface {
	// QuerySummary aggregates over every reading, or over window when
	// non-nil. Returns nil (not an error) when no readings match.
	QuerySummary(ctx context.Context, window *TimeWindow) (*domain.SummaryStats, error)

	// QueryHourly returns per-hour buckets for readings captured in
	// [start, end], ascending by hour. Empty hours are omitted.
	QueryHourly(ctx context.Context, start, end time.Time) ([]domain.HourlyBucket, error)
}
