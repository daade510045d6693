package handlers

import (
	"sync/atomic"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Health Check Handlers
// ============================================================

// Health serves the probes. Readiness flips off during shutdown.
type Health struct {
	ready atomic.Bool
}

func NewHealth() *Health {
	h := &Health{}
	h.ready.Store(true)
	return h
}

// SetReady changes the readiness reported by ReadinessProbe.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// LivenessProbe reports that the process is serving requests.
func (h *Health) LivenessProbe(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "alive",
	})
}

// ReadinessProbe reports whether new conversions should be routed here.
func (h *Health) ReadinessProbe(c fiber.Ctx) error {
	if !h.ready.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "shutting_down",
		})
	}
	return c.JSON(fiber.Map{
		"status": "ready",
	})
}
