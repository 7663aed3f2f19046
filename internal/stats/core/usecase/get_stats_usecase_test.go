package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"sensor-telemetry-service/internal/stats/core/domain"
	"sensor-telemetry-service/internal/stats/core/ports"
	"sensor-telemetry-service/internal/stats/core/usecase"
)

// Fake reader implementing StatsReaderPort
type fakeStatsReader struct {
	SummaryFn  func(ctx context.Context, window *ports.TimeWindow) (*domain.SummaryStats, error)
	HourlyFn   func(ctx context.Context, start, end time.Time) ([]domain.HourlyBucket, error)
	lastWindow *ports.TimeWindow
	lastStart  time.Time
	lastEnd    time.Time
}

func (f *fakeStatsReader) QuerySummary(ctx context.Context, window *ports.TimeWindow) (*domain.SummaryStats, error) {
	f.lastWindow = window
	if f.SummaryFn != nil {
		return f.SummaryFn(ctx, window)
	}
	return nil, nil
}

func (f *fakeStatsReader) QueryHourly(ctx context.Context, start, end time.Time) ([]domain.HourlyBucket, error) {
	f.lastStart = start
	f.lastEnd = end
	if f.HourlyFn != nil {
		return f.HourlyFn(ctx, start, end)
	}
	return []domain.HourlyBucket{}, nil
}

func tptr(t time.Time) *time.Time { return &t }

func TestGetStats_SummaryFullStore(t *testing.T) {
	want := &domain.SummaryStats{
		Count:    2,
		AvgLight: 90, MinLight: 80, MaxLight: 100,
		AvgSound: 37.5, MinSound: 20, MaxSound: 55,
	}

	reader := &fakeStatsReader{
		SummaryFn: func(ctx context.Context, window *ports.TimeWindow) (*domain.SummaryStats, error) {
			return want, nil
		},
	}
	uc := usecase.NewGetStatsUseCase(reader)

	got, err := uc.Summary(context.Background(), usecase.SummaryInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("expected stats passed through unchanged")
	}
	if reader.lastWindow != nil {
		t.Fatalf("expected no window for a full-store summary, got %+v", reader.lastWindow)
	}
}

func TestGetStats_SummaryEmptyStoreIsAbsence(t *testing.T) {
	reader := &fakeStatsReader{}
	uc := usecase.NewGetStatsUseCase(reader)

	got, err := uc.Summary(context.Background(), usecase.SummaryInput{})
	if err != nil {
		t.Fatalf("no readings must not be an error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil stats for empty store, got %+v", got)
	}
}

func TestGetStats_SummaryWindowValidation(t *testing.T) {
	reader := &fakeStatsReader{}
	uc := usecase.NewGetStatsUseCase(reader)

	start := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Summary(context.Background(), usecase.SummaryInput{Start: tptr(start), End: tptr(end)})
	if !errors.Is(err, usecase.ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for inverted window, got %v", err)
	}

	_, err = uc.Summary(context.Background(), usecase.SummaryInput{Start: tptr(start)})
	if !errors.Is(err, usecase.ErrIncompleteWindow) {
		t.Fatalf("expected ErrIncompleteWindow for missing end, got %v", err)
	}

	_, err = uc.Summary(context.Background(), usecase.SummaryInput{End: tptr(end)})
	if !errors.Is(err, usecase.ErrIncompleteWindow) {
		t.Fatalf("expected ErrIncompleteWindow for missing start, got %v", err)
	}
}

func TestGetStats_SummaryWindowPassedThrough(t *testing.T) {
	reader := &fakeStatsReader{}
	uc := usecase.NewGetStatsUseCase(reader)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	if _, err := uc.Summary(context.Background(), usecase.SummaryInput{Start: tptr(start), End: tptr(end)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.lastWindow == nil {
		t.Fatalf("expected a window to reach the reader")
	}
	if !reader.lastWindow.Start.Equal(start) || !reader.lastWindow.End.Equal(end) {
		t.Fatalf("unexpected window: %+v", reader.lastWindow)
	}
}

func TestGetStats_HourlyWindowAnchoredAtNow(t *testing.T) {
	now := time.Date(2026, 2, 1, 15, 4, 5, 0, time.UTC)
	reader := &fakeStatsReader{}
	uc := usecase.NewGetStatsUseCaseWithClock(reader, func() time.Time { return now })

	if _, err := uc.Hourly(context.Background(), 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reader.lastEnd.Equal(now) {
		t.Errorf("expected window end %v, got %v", now, reader.lastEnd)
	}
	if !reader.lastStart.Equal(now.Add(-6 * time.Hour)) {
		t.Errorf("expected window start %v, got %v", now.Add(-6*time.Hour), reader.lastStart)
	}
}

func TestGetStats_HourlyDefaultsAndClamps(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		hours     int
		wantHours int
	}{
		{"zero falls back to default", 0, 24},
		{"negative falls back to default", -3, 24},
		{"in range passes through", 48, 48},
		{"oversized clamps to a week", 10000, 168},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reader := &fakeStatsReader{}
			uc := usecase.NewGetStatsUseCaseWithClock(reader, func() time.Time { return now })

			if _, err := uc.Hourly(context.Background(), tc.hours); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := now.Add(-time.Duration(tc.wantHours) * time.Hour)
			if !reader.lastStart.Equal(want) {
				t.Fatalf("expected window start %v, got %v", want, reader.lastStart)
			}
		})
	}
}

func TestGetStats_HourlyNeverFillsEmptyHours(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	// the reader reports two non-adjacent hours; the usecase must not
	// zero-fill the gap between them
	reader := &fakeStatsReader{
		HourlyFn: func(ctx context.Context, start, end time.Time) ([]domain.HourlyBucket, error) {
			return []domain.HourlyBucket{
				{HourStart: now.Add(-5 * time.Hour), AvgLight: 10, AvgSound: 1, Count: 3},
				{HourStart: now.Add(-1 * time.Hour), AvgLight: 20, AvgSound: 2, Count: 4},
			}, nil
		},
	}
	uc := usecase.NewGetStatsUseCaseWithClock(reader, func() time.Time { return now })

	buckets, err := uc.Hourly(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	for _, b := range buckets {
		if b.Count == 0 {
			t.Fatalf("bucket with zero count must never appear: %+v", b)
		}
	}
}
