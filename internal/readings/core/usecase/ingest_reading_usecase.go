package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
	"sensor-telemetry-service/internal/readings/core/ports"
)

var (
	ErrMissingValues = errors.New("light and sound values are required")
	ErrInvalidValues = errors.New("light and sound must be finite numbers")
	ErrStorage       = errors.New("reading store failure")
)

type IngestReadingUseCase struct {
	repo        ports.ReadingRepositoryPort
	broadcaster ports.BroadcasterPort
}

func NewIngestReadingUseCase(repo ports.ReadingRepositoryPort, broadcaster ports.BroadcasterPort) *IngestReadingUseCase {
	return &IngestReadingUseCase{repo: repo, broadcaster: broadcaster}
}

type IngestReadingInput struct {
	Light *float64
	Sound *float64

	// CapturedAt overrides the store clock when supplied (replayed device
	// batches). Nil means "stamp at write time".
	CapturedAt *time.Time
}

// Execute validates the input, appends the reading, then broadcasts it.
// The append commits before the broadcast starts, so a subscriber reacting
// to the event can immediately query the store and find the reading.
// Broadcast failures belong to the registry, not to ingestion.
func (uc *IngestReadingUseCase) Execute(ctx context.Context, in IngestReadingInput) (*domain.Reading, error) {
	if in.Light == nil || in.Sound == nil {
		return nil, ErrMissingValues
	}
	if !isFinite(*in.Light) || !isFinite(*in.Sound) {
		return nil, ErrInvalidValues
	}

	reading, err := uc.repo.InsertReading(ctx, *in.Light, *in.Sound, in.CapturedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	uc.broadcaster.Broadcast(*reading)

	return reading, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
