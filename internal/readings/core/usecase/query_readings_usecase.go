package usecase

import (
	"context"
	"errors"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
	"sensor-telemetry-service/internal/readings/core/ports"
)

var (
	ErrMissingRange = errors.New("start and end dates are required")
	ErrInvalidRange = errors.New("start date must not be after end date")
)

const (
	defaultRecentLimit = 50
	defaultPageLimit   = 100
	maxListLimit       = 1000
)

type QueryReadingsUseCase struct {
	repo ports.ReadingRepositoryPort
}

func NewQueryReadingsUseCase(repo ports.ReadingRepositoryPort) *QueryReadingsUseCase {
	return &QueryReadingsUseCase{repo: repo}
}

// Recent returns the newest readings, most recent first. A non-positive
// limit falls back to the default; oversized limits are clamped.
func (uc *QueryReadingsUseCase) Recent(ctx context.Context, limit int) ([]domain.Reading, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return uc.repo.ListRecent(ctx, limit)
}

type Pagination struct {
	Page   int
	Limit  int
	Offset int
}

type PageResult struct {
	Readings   []domain.Reading
	Pagination Pagination
}

// Page lists readings most recent first with the offset derived from the
// 1-based page number. The applied pagination is echoed back to the caller.
func (uc *QueryReadingsUseCase) Page(ctx context.Context, limit, page int) (*PageResult, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * limit

	readings, err := uc.repo.ListPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Readings:   readings,
		Pagination: Pagination{Page: page, Limit: limit, Offset: offset},
	}, nil
}

// Range returns readings captured in [start, end] inclusive, ascending.
func (uc *QueryReadingsUseCase) Range(ctx context.Context, start, end time.Time) ([]domain.Reading, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrMissingRange
	}
	if start.After(end) {
		return nil, ErrInvalidRange
	}
	return uc.repo.ListRange(ctx, start, end)
}

// Latest returns the newest reading. A nil reading with a nil error means
// the store is empty, which is a successful outcome, not a failure.
func (uc *QueryReadingsUseCase) Latest(ctx context.Context) (*domain.Reading, error) {
	return uc.repo.Latest(ctx)
}
