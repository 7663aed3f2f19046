package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
	"sensor-telemetry-service/internal/readings/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type IngestReadingUseCase interface {
	Execute(ctx context.Context, in usecase.IngestReadingInput) (*domain.Reading, error)
}

type QueryReadingsUseCase interface {
	Recent(ctx context.Context, limit int) ([]domain.Reading, error)
	Page(ctx context.Context, limit, page int) (*usecase.PageResult, error)
	Range(ctx context.Context, start, end time.Time) ([]domain.Reading, error)
	Latest(ctx context.Context) (*domain.Reading, error)
}

type ReadingHandler struct {
	ingestUC IngestReadingUseCase
	queryUC  QueryReadingsUseCase
}

func NewReadingHandler(ingestUC IngestReadingUseCase, queryUC QueryReadingsUseCase) *ReadingHandler {
	return &ReadingHandler{ingestUC: ingestUC, queryUC: queryUC}
}

// Accepted layouts for range bounds, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CreateReading godoc
// @Summary Ingest a sensor reading
// @Description Persists a light/sound reading and broadcasts it to live dashboard subscribers
// @Tags Sensors
// @Accept json
// @Produce json
// @Param request body CreateReadingRequest true "Reading payload"
// @Success 201 {object} CreateReadingResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors [post]
func (h *ReadingHandler) CreateReading(c *fiber.Ctx) error {
	var req CreateReadingRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid_json",
		})
	}

	input := usecase.IngestReadingInput{
		Light:      req.Light,
		Sound:      req.Sound,
		CapturedAt: req.CapturedAt,
	}

	reading, err := h.ingestUC.Execute(c.UserContext(), input)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingValues),
			errors.Is(err, usecase.ErrInvalidValues):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_reading",
				Message: err.Error(),
			})
		case errors.Is(err, usecase.ErrStorage):
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "storage_error",
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(CreateReadingResponse{
		Status: "created",
		Data:   toReadingResponse(*reading),
	})
}

// GetRecent godoc
// @Summary Recent readings
// @Description Returns the newest readings, most recent first
// @Tags Sensors
// @Produce json
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {object} ReadingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors/recent [get]
func (h *ReadingHandler) GetRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)

	readings, err := h.queryUC.Recent(c.UserContext(), limit)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(ReadingsResponse{
		Data: toReadingResponses(readings),
	})
}

// GetAll godoc
// @Summary Paginated readings
// @Description Returns readings most recent first with pagination metadata
// @Tags Sensors
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param page query int false "1-based page number"
// @Success 200 {object} PagedReadingsResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors/all [get]
func (h *ReadingHandler) GetAll(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)

	res, err := h.queryUC.Page(c.UserContext(), limit, page)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(PagedReadingsResponse{
		Data: toReadingResponses(res.Readings),
		Pagination: PaginationResponse{
			Page:   res.Pagination.Page,
			Limit:  res.Pagination.Limit,
			Offset: res.Pagination.Offset,
		},
	})
}

// GetRange godoc
// @Summary Readings in a date range
// @Description Returns readings captured in [startDate, endDate] inclusive, ascending
// @Tags Sensors
// @Produce json
// @Param startDate query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param endDate query string true "Range end (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} ReadingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors/range [get]
func (h *ReadingHandler) GetRange(c *fiber.Ctx) error {
	start, ok := parseDate(c.Query("startDate", ""))
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_range",
			Message: "invalid 'startDate' parameter",
		})
	}
	end, ok := parseDate(c.Query("endDate", ""))
	if !ok {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_range",
			Message: "invalid 'endDate' parameter",
		})
	}

	readings, err := h.queryUC.Range(c.UserContext(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMissingRange),
			errors.Is(err, usecase.ErrInvalidRange):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_range",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	return c.Status(http.StatusOK).JSON(ReadingsResponse{
		Data: toReadingResponses(readings),
	})
}

// GetLatest godoc
// @Summary Latest reading
// @Description Returns the most recent reading, or no_data when the store is empty
// @Tags Sensors
// @Produce json
// @Success 200 {object} ReadingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /sensors/latest [get]
func (h *ReadingHandler) GetLatest(c *fiber.Ctx) error {
	reading, err := h.queryUC.Latest(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	if reading == nil {
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "no_data",
			Message: "no readings recorded yet",
		})
	}

	return c.Status(http.StatusOK).JSON(toReadingResponse(*reading))
}

// parseDate returns the zero time for an empty parameter so the usecase can
// apply its missing-bound rule; an unparseable value is rejected here.
func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func toReadingResponse(r domain.Reading) ReadingResponse {
	return ReadingResponse{
		ID:         r.ID,
		Light:      r.Light,
		Sound:      r.Sound,
		CapturedAt: r.CapturedAt,
	}
}

func toReadingResponses(readings []domain.Reading) []ReadingResponse {
	out := make([]ReadingResponse, 0, len(readings))
	for _, r := range readings {
		out = append(out, toReadingResponse(r))
	}
	return out
}
