package fiber

import "time"

type StatsResponse struct {
	Count          int64     `json:"count"`
	AvgLight       float64   `json:"avg_light"`
	MinLight       float64   `json:"min_light"`
	MaxLight       float64   `json:"max_light"`
	AvgSound       float64   `json:"avg_sound"`
	MinSound       float64   `json:"min_sound"`
	MaxSound       float64   `json:"max_sound"`
	FirstReadingAt time.Time `json:"first_reading_at"`
	LastReadingAt  time.Time `json:"last_reading_at"`
}

type NoDataResponse struct {
	Status string `json:"status" example:"no_data"`
}

type HourlyBucketResponse struct {
	HourStart time.Time `json:"hour_start"`
	AvgLight  float64   `json:"avg_light"`
	AvgSound  float64   `json:"avg_sound"`
	Count     int64     `json:"count"`
}

type HourlyResponse struct {
	Data []HourlyBucketResponse `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_window"`
	Message string `json:"message" example:"window start must not be after end"`
}
