package ports

import "sensor-telemetry-service/internal/readings/core/domain"

// BroadcasterPort is the notify-only side channel ingestion pushes accepted
// readings into. Delivery is best-effort; failures never reach the caller.
type BroadcasterPort interface {
	Broadcast(r domain.Reading)
}
