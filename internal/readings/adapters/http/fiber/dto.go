package fiber

import "time"

// CreateReadingRequest represents an ingestion payload from a device.
// Pointer fields distinguish "absent" from a literal zero value.
// @Description Sensor reading creation DTO
type CreateReadingRequest struct {
	Light      *float64   `json:"light"`
	Sound      *float64   `json:"sound"`
	CapturedAt *time.Time `json:"captured_at,omitempty"`
}

type ReadingResponse struct {
	ID         int64     `json:"id"`
	Light      float64   `json:"light"`
	Sound      float64   `json:"sound"`
	CapturedAt time.Time `json:"captured_at"`
}

type CreateReadingResponse struct {
	Status string          `json:"status"`
	Data   ReadingResponse `json:"data"`
}

type ReadingsResponse struct {
	Data []ReadingResponse `json:"data"`
}

type PaginationResponse struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

type PagedReadingsResponse struct {
	Data       []ReadingResponse  `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_reading"`
	Message string `json:"message" example:"light and sound values are required"`
}
