package ports

import (
	"context"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
)

type ReadingRepositoryPort interface {
	// InsertReading appends a reading and returns it with the store-assigned
	// id and captured_at. When capturedAt is nil the store stamps the row
	// with its own clock. Ids are strictly increasing across concurrent calls.
	InsertReading(ctx context.Context, light, sound float64, capturedAt *time.Time) (*domain.Reading, error)

	// ListRecent returns up to limit readings, most recent first.
	ListRecent(ctx context.Context, limit int) ([]domain.Reading, error)

	// ListPage returns readings most recent first, skipping offset rows.
	ListPage(ctx context.Context, limit, offset int) ([]domain.Reading, error)

	// ListRange returns readings with captured_at in [start, end] inclusive,
	// in ascending chronological order.
	ListRange(ctx context.Context, start, end time.Time) ([]domain.Reading, error)

	// Latest returns the most recent reading, or nil when the store is empty.
	Latest(ctx context.Context) (*domain.Reading, error)
}
