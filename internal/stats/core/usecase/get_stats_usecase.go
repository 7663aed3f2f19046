package usecase

import (
	"context"
	"errors"
	"time"

	"sensor-telemetry-service/internal/stats/core/domain"
	"sensor-telemetry-service/internal/stats/core/ports"
)

var (
	ErrInvalidWindow    = errors.New("window start must not be after end")
	ErrIncompleteWindow = errors.New("window requires both start and end")
)

const (
	defaultHoursBack = 24
	maxHoursBack     = 168 // one week of hourly buckets
)

type GetStatsUseCase struct {
	reader ports.StatsReaderPort
	now    func() time.Time
}

func NewGetStatsUseCase(reader ports.StatsReaderPort) *GetStatsUseCase {
	return &GetStatsUseCase{reader: reader, now: time.Now}
}

// NewGetStatsUseCaseWithClock injects the clock used to anchor the hourly
// window. Tests pin it; production uses time.Now.
func NewGetStatsUseCaseWithClock(reader ports.StatsReaderPort, now func() time.Time) *GetStatsUseCase {
	return &GetStatsUseCase{reader: reader, now: now}
}

type SummaryInput struct {
	Start *time.Time
	End   *time.Time
}

// Summary aggregates min/max/avg over all readings, or over the supplied
// window. A nil result with a nil error means no readings matched.
func (uc *GetStatsUseCase) Summary(ctx context.Context, in SummaryInput) (*domain.SummaryStats, error) {
	var window *ports.TimeWindow

	switch {
	case in.Start == nil && in.End == nil:
		// full store
	case in.Start == nil || in.End == nil:
		return nil, ErrIncompleteWindow
	default:
		if in.Start.After(*in.End) {
			return nil, ErrInvalidWindow
		}
		window = &ports.TimeWindow{Start: in.Start.UTC(), End: in.End.UTC()}
	}

	return uc.reader.QuerySummary(ctx, window)
}

// Hourly returns ascending hourly buckets covering [now - hoursBack, now]
// in UTC. Non-positive hoursBack falls back to the default; oversized
// values are clamped.
func (uc *GetStatsUseCase) Hourly(ctx context.Context, hoursBack int) ([]domain.HourlyBucket, error) {
	if hoursBack <= 0 {
		hoursBack = defaultHoursBack
	}
	if hoursBack > maxHoursBack {
		hoursBack = maxHoursBack
	}

	end := uc.now().UTC()
	start := end.Add(-time.Duration(hoursBack) * time.Hour)

	return uc.reader.QueryHourly(ctx, start, end)
}
