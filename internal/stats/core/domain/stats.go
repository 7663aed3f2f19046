package domain

import "time"

// SummaryStats is a derived view over a set of readings. It is only ever
// produced for a non-empty set; "no readings" is modelled as absence by the
// callers, never as a zeroed struct.
type SummaryStats struct {
	Count          int64
	AvgLight       float64
	MinLight       float64
	MaxLight       float64
	AvgSound       float64
	MinSound       float64
	MaxSound       float64
	FirstReadingAt time.Time
	LastReadingAt  time.Time
}

// HourlyBucket aggregates the readings captured within one UTC hour.
// Hours without readings produce no bucket.
type HourlyBucket struct {
	HourStart time.Time
	AvgLight  float64
	AvgSound  float64
	Count     int64
}
