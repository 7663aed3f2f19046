package domain

import "time"

// Reading is one immutable ambient-sensor observation. The id and, when the
// device does not supply one, the capture timestamp are assigned by the store.
type Reading struct {
	ID         int64
	Light      float64
	Sound      float64
	CapturedAt time.Time
}
