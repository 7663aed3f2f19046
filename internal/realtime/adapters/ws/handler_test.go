package ws

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sensor-telemetry-service/internal/readings/core/domain"

	"github.com/gofiber/fiber/v2"
)

func TestUpgrade_RejectsPlainHTTP(t *testing.T) {
	app := fiber.New()
	app.Use("/ws", Upgrade)
	app.Get("/ws", func(c *fiber.Ctx) error { return c.SendString("never reached") })

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test error: %v", err)
	}

	if resp.StatusCode != http.StatusUpgradeRequired {
		t.Fatalf("expected status %d, got %d", http.StatusUpgradeRequired, resp.StatusCode)
	}
}

func TestEvent_ReadingEnvelope(t *testing.T) {
	at := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	r := domain.Reading{ID: 7, Light: 100, Sound: 20, CapturedAt: at}

	ev := Event{
		Event: EventNewReading,
		Data: readingPayload{
			ID:         r.ID,
			Light:      r.Light,
			Sound:      r.Sound,
			CapturedAt: r.CapturedAt,
		},
	}

	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}

	if decoded["event"] != "nuevo_dato" {
		t.Errorf("expected event name nuevo_dato, got %v", decoded["event"])
	}

	data, ok := decoded["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", decoded["data"])
	}
	if data["id"] != float64(7) || data["light"] != float64(100) || data["sound"] != float64(20) {
		t.Errorf("unexpected payload: %v", data)
	}
}

func TestEvent_WelcomeEnvelope(t *testing.T) {
	ev := Event{
		Event: EventWelcome,
		Data:  welcomePayload{Message: "connected to sensor stream"},
	}

	b, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("failed to marshal event: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded["event"] != "welcome" {
		t.Errorf("expected event name welcome, got %v", decoded["event"])
	}
}
