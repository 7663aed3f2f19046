package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sensor-telemetry-service/internal/stats/core/domain"
	"sensor-telemetry-service/internal/stats/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type GetStatsUseCase interface {
	Summary(ctx context.Context, in usecase.SummaryInput) (*domain.SummaryStats, error)
	Hourly(ctx context.Context, hoursBack int) ([]domain.HourlyBucket, error)
}

type StatsHandler struct {
	uc GetStatsUseCase
}

func NewStatsHandler(uc GetStatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// GetStats godoc
// @Summary Summary statistics
// @Description Min/max/avg for light and sound over all readings, or over an optional window
// @Tags Stats
// @Produce json
// @Param startDate query string false "Window start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string false "Window end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} StatsResponse
// @Success 200 {object} NoDataResponse "No readings yet"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	var in usecase.SummaryInput

	if s := c.Query("startDate", ""); s != "" {
		t, ok := parseDate(s)
		if !ok {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_window",
				Message: "invalid 'startDate' parameter",
			})
		}
		in.Start = &t
	}
	if s := c.Query("endDate", ""); s != "" {
		t, ok := parseDate(s)
		if !ok {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_window",
				Message: "invalid 'endDate' parameter",
			})
		}
		in.End = &t
	}

	stats, err := h.uc.Summary(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidWindow),
			errors.Is(err, usecase.ErrIncompleteWindow):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_window",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if stats == nil {
		return c.Status(http.StatusOK).JSON(NoDataResponse{Status: "no_data"})
	}

	return c.Status(http.StatusOK).JSON(StatsResponse{
		Count:          stats.Count,
		AvgLight:       stats.AvgLight,
		MinLight:       stats.MinLight,
		MaxLight:       stats.MaxLight,
		AvgSound:       stats.AvgSound,
		MinSound:       stats.MinSound,
		MaxSound:       stats.MaxSound,
		FirstReadingAt: stats.FirstReadingAt,
		LastReadingAt:  stats.LastReadingAt,
	})
}

// GetHourly godoc
// @Summary Hourly rollups
// @Description Ascending hourly averages over the last H hours; empty hours are omitted
// @Tags Stats
// @Produce json
// @Param hours query int false "Hours back from now (default 24)"
// @Success 200 {object} HourlyResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors/hourly [get]
func (h *StatsHandler) GetHourly(c *fiber.Ctx) error {
	hours := c.QueryInt("hours", 0)

	buckets, err := h.uc.Hourly(c.UserContext(), hours)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	resp := HourlyResponse{Data: make([]HourlyBucketResponse, 0, len(buckets))}
	for _, b := range buckets {
		resp.Data = append(resp.Data, HourlyBucketResponse{
			HourStart: b.HourStart,
			AvgLight:  b.AvgLight,
			AvgSound:  b.AvgSound,
			Count:     b.Count,
		})
	}

	return c.Status(http.StatusOK).JSON(resp)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
