package ws

import (
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"
	"sensor-telemetry-service/internal/realtime/hub"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// Event names on the push channel. Readings go out as "nuevo_dato" to stay
// wire-compatible with existing dashboard clients.
const (
	EventWelcome    = "welcome"
	EventNewReading = "nuevo_dato"
)

type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type welcomePayload struct {
	Message string `json:"message"`
}

type readingPayload struct {
	ID         int64     `json:"id"`
	Light      float64   `json:"light"`
	Sound      float64   `json:"sound"`
	CapturedAt time.Time `json:"captured_at"`
}

type Registry interface {
	Register(connectionID string, sink hub.Sink) hub.Subscriber
	Unregister(connectionID string)
	Touch(connectionID string)
}

type Handler struct {
	registry     Registry
	writeTimeout time.Duration
}

func NewHandler(registry Registry, writeTimeout time.Duration) *Handler {
	return &Handler{registry: registry, writeTimeout: writeTimeout}
}

// Upgrade gates the route: non-websocket requests get 426 before the
// connection handler runs.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve runs one subscriber connection: welcome event, registration, then
// a read loop that only refreshes liveness. All reading deliveries go
// through the registered sink; the hub serializes them, so this connection
// never sees interleaved writes.
func (h *Handler) Serve(c *websocket.Conn) {
	defer c.Close()

	id := uuid.NewString()

	sink := &connSink{conn: c, timeout: h.writeTimeout}
	if err := sink.write(Event{
		Event: EventWelcome,
		Data:  welcomePayload{Message: "connected to sensor stream"},
	}); err != nil {
		return
	}

	h.registry.Register(id, sink)
	defer h.registry.Unregister(id)

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
		h.registry.Touch(id)
	}
}

// connSink adapts one websocket connection to the hub's Sink. The write
// deadline bounds how long a slow consumer can stall a broadcast pass.
type connSink struct {
	conn    *websocket.Conn
	timeout time.Duration
}

var _ hub.Sink = (*connSink)(nil)

func (s *connSink) Deliver(r domain.Reading) error {
	return s.write(Event{
		Event: EventNewReading,
		Data: readingPayload{
			ID:         r.ID,
			Light:      r.Light,
			Sound:      r.Sound,
			CapturedAt: r.CapturedAt,
		},
	})
}

func (s *connSink) write(ev Event) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.timeout)); err != nil {
		return err
	}
	return s.conn.WriteJSON(ev)
}
